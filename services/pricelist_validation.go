package services

import (
	"fmt"
	"strconv"
)

// ValidatePriceListImportFile checks an uploaded price list workbook against
// the 2-column schema (name, price). Used for legacy price list files that
// carry no material type column.
func ValidatePriceListImportFile(fileName string, data []byte) error {
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
		if len(row) != 2 {
			return fmt.Errorf("Problem with file '%s' in row number '%d'", fileName, rowNum)
		}
		nameCell := cellRef(1, rowNum)
		priceCell := cellRef(2, rowNum)
		if !isStringCell(f, sheet, nameCell) {
			return fmt.Errorf(badCellErrFmt, rowNum)
		}
		if !isNumericCell(f, sheet, priceCell, row[1]) {
			return fmt.Errorf(badCellErrFmt, rowNum)
		}
		price, _ := strconv.ParseFloat(row[1], 64)
		if RoundAmount(price) < 0 {
			return fmt.Errorf("Value '%s' invalid for price of item '%s' at row '%d'",
				row[1], row[0], rowNum)
		}
	}
	return nil
}
