package services

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const exportDateLayout = "2006-01-02 15:04:05"

// ExportMaterials creates an Excel workbook listing the given materials, one
// material per row (name, type, price). The layout mirrors the import
// template so an export can be re-imported as-is.
func ExportMaterials(materials []Material) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Materials"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for i, m := range materials {
		row := i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sanitizeExcelCell(m.Name))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(m.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.PricePerSqM)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateCalculationExcel creates an Excel workbook for a priced
// calculation: a summary block up top, a blank spacer row, then one row per
// room with all surface areas and prices.
func GenerateCalculationExcel(calc *Calculation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet name follows the calculation name. Excel caps sheet names at 31
	// characters, so truncate on a rune boundary.
	sheetName := calc.Name
	if utf8.RuneCountInString(sheetName) > 31 {
		runes := []rune(sheetName)
		sheetName = string(runes[:31])
	}
	if sheetName == "" {
		sheetName = "Calculation"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

	widths := []float64{16, 16, 16, 16, 12, 12, 12, 12, 12, 12, 12, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	// ── Summary block (rows 1-2) ────────────────────────────────────────

	summaryHeaders := []string{"Name", "Room count", "Total area", "Total price", "Date of calculation"}
	for i, h := range summaryHeaders {
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(calc.Name))
	f.SetCellValue(sheetName, "B2", calc.RoomCount)
	f.SetCellValue(sheetName, "C2", calc.TotalArea)
	f.SetCellValue(sheetName, "D2", calc.TotalPrice)
	f.SetCellValue(sheetName, "E2", calc.CalculatedAt.Format(exportDateLayout))
	f.SetCellStyle(sheetName, "A2", "E2", valueStyle)

	// ── Room table (row 4 header, rooms from row 5) ─────────────────────

	roomHeaders := []string{
		"Room", "Floor material", "Wall material", "Ceiling material",
		"Floor area", "Wall area", "Ceiling area",
		"Floor price", "Wall price", "Ceiling price",
		"Total area", "Total price",
	}
	for i, h := range roomHeaders {
		f.SetCellValue(sheetName, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A4", "L4", headerStyle)

	row := 5
	for _, r := range calc.Rooms {
		values := []any{
			sanitizeExcelCell(r.Number),
			sanitizeExcelCell(r.FloorMaterial),
			sanitizeExcelCell(r.WallMaterial),
			sanitizeExcelCell(r.CeilingMaterial),
			r.FloorArea, r.WallArea, r.CeilingArea,
			r.FloorPrice, r.WallPrice, r.CeilingPrice,
			r.TotalArea, r.TotalPrice,
		}
		for i, v := range values {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], row), v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("L%d", row), valueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
