package services

import (
	"bytes"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ImportedRow is one material row read from an import workbook.
type ImportedRow struct {
	Name  string
	Type  string
	Price float64
}

// ParseMaterialSheet reads material rows from the first sheet of an already
// validated workbook. Returns nil if the workbook cannot be read; callers
// validate before parsing, so a nil result means the file changed underneath.
func ParseMaterialSheet(data []byte) []ImportedRow {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil
	}

	parsed := make([]ImportedRow, 0, len(rows))
	for _, row := range rows {
		if len(row) != 3 {
			return nil
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return nil
		}
		parsed = append(parsed, ImportedRow{
			Name:  row[0],
			Type:  row[1],
			Price: RoundAmount(price),
		})
	}
	return parsed
}

// ParsePriceListSheet reads legacy 2-column rows (name, price) from the first
// sheet of an already validated workbook. Returns nil if the workbook cannot
// be read.
func ParsePriceListSheet(data []byte) []ImportedRow {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil
	}

	parsed := make([]ImportedRow, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return nil
		}
		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return nil
		}
		parsed = append(parsed, ImportedRow{
			Name:  row[0],
			Price: RoundAmount(price),
		})
	}
	return parsed
}
