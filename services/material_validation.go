package services

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/xuri/excelize/v2"
)

const badCellErrFmt = "Bad cell at cell row '%d'"

// ValidateMaterialProperties checks user-entered material data: the name must
// be non-blank and the price a positive number. Returns nil when both pass.
func ValidateMaterialProperties(name string, pricePerSqM float64) error {
	if err := validation.Validate(strings.TrimSpace(name),
		validation.Required.Error("Invalid value for name")); err != nil {
		return fmt.Errorf("Invalid value for name")
	}
	if math.IsNaN(pricePerSqM) || pricePerSqM <= 0 {
		return fmt.Errorf("Value '%s' invalid for price of item '%s'",
			formatFloat(pricePerSqM), name)
	}
	return nil
}

// ValidateMaterialImportFile checks an uploaded material catalog workbook
// against the 3-column schema (name, type, price). File-level checks run
// first, then every row of the first sheet is checked cell by cell; the
// first failure aborts validation of the whole file.
func ValidateMaterialImportFile(fileName string, data []byte) error {
	f, err := openImportFile(fileName, data)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("Unsupported file type for '%s'", fileName)
	}

	for i, row := range rows {
		rowNum := i + 1
		if len(row) != 3 {
			return fmt.Errorf("Problem with file '%s' in row number '%d'", fileName, rowNum)
		}
		if err := validateMaterialRow(f, sheet, rowNum, row); err != nil {
			return err
		}
	}
	return nil
}

// openImportFile runs the file-level checks shared by both import schemas:
// empty file, then filename, then extension, then readability. The failures
// are mutually exclusive and checked in exactly this order.
func openImportFile(fileName string, data []byte) (*excelize.File, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("Empty file")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("Error in import file")
	}
	if !strings.HasSuffix(fileName, ".xls") && !strings.HasSuffix(fileName, ".xlsx") {
		return nil, fmt.Errorf("Incorrect file format for file '%s'", fileName)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Unsupported file type for '%s'", fileName)
	}
	return f, nil
}

func validateMaterialRow(f *excelize.File, sheet string, rowNum int, row []string) error {
	nameCell := cellRef(1, rowNum)
	typeCell := cellRef(2, rowNum)
	priceCell := cellRef(3, rowNum)

	if !isStringCell(f, sheet, nameCell) || strings.TrimSpace(row[0]) == "" {
		return fmt.Errorf(badCellErrFmt, rowNum)
	}
	if !isStringCell(f, sheet, typeCell) || strings.TrimSpace(row[1]) == "" {
		return fmt.Errorf(badCellErrFmt, rowNum)
	}
	if !isNumericCell(f, sheet, priceCell, row[2]) {
		return fmt.Errorf(badCellErrFmt, rowNum)
	}

	if _, ok := ParseMaterialType(row[1]); !ok {
		return fmt.Errorf(
			"Value '%s' at row '%d' is an invalid Material type. Types can be FLOOR, WALL and CEILING",
			row[1], rowNum)
	}

	price, _ := strconv.ParseFloat(row[2], 64)
	if RoundAmount(price) < 0 {
		return fmt.Errorf("Value '%s' invalid for price of item '%s' at row '%d'",
			row[2], row[0], rowNum)
	}
	return nil
}

func cellRef(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

// isStringCell reports whether the cell holds a genuine string value.
// xlsx stores strings as shared or inline strings; anything else is not text.
func isStringCell(f *excelize.File, sheet, cell string) bool {
	t, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	return t == excelize.CellTypeSharedString || t == excelize.CellTypeInlineString
}

// isNumericCell reports whether the cell holds a finite numeric value.
// Numeric xlsx cells carry no explicit type attribute, so an unset type with
// a parseable value also counts. "NaN" and "Inf" texts parse as floats but
// are not valid cell values.
func isNumericCell(f *excelize.File, sheet, cell, raw string) bool {
	t, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	switch t {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if raw == "" {
			return false
		}
		v, err := strconv.ParseFloat(raw, 64)
		return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
