package formatter

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Sheet pairs a worksheet name with the table it should contain.
type Sheet struct {
	Name  string
	Frame dataframe.DataFrame
}

// WriteWorkbook writes the sheets into a single XLSX workbook at path.
// Missing numeric cells are left empty.
func WriteWorkbook(path string, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	df := sheet.Frame
	names := df.Names()
	types := df.Types()

	for col, name := range names {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.Name, cell, name); err != nil {
			return err
		}
	}

	for col, name := range names {
		isFloat := types[col] == series.Float
		var floats []float64
		var records []string
		if isFloat {
			floats = df.Col(name).Float()
		} else {
			records = df.Col(name).Records()
		}
		for row := 0; row < df.Nrow(); row++ {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if isFloat {
				if math.IsNaN(floats[row]) {
					continue
				}
				if err := f.SetCellValue(sheet.Name, cell, floats[row]); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(sheet.Name, cell, records[row]); err != nil {
				return err
			}
		}
	}
	return nil
}
