package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateMaterials are the example rows shipped in the import template.
var templateMaterials = []Material{
	{Name: "Blue Paint", Type: MaterialWall, PricePerSqM: 0.40},
	{Name: "Red Paint", Type: MaterialWall, PricePerSqM: 0.42},
	{Name: "Ceramic Tiles", Type: MaterialFloor, PricePerSqM: 6.50},
	{Name: "Wooden Tiles", Type: MaterialFloor, PricePerSqM: 9.69},
	{Name: "Wallpaper", Type: MaterialWall, PricePerSqM: 8.20},
	{Name: "Drywall", Type: MaterialWall, PricePerSqM: 4.20},
	{Name: "Ceiling Tile", Type: MaterialCeiling, PricePerSqM: 6.60},
	{Name: "Hanged Ceiling", Type: MaterialCeiling, PricePerSqM: 7.17},
}

// GenerateImportTemplate creates the downloadable import template workbook:
// a set of example materials in the exact 3-column layout the importer
// expects, with no header row.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Template for importing"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for i, m := range templateMaterials {
		row := i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), m.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(m.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.PricePerSqM)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
