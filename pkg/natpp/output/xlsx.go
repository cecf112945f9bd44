package output

import (
	"strconv"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet the tidy table is written to.
const DefaultSheetName = "Dataset"

// WriteXLSX writes t to a new workbook at path. Values in the named
// numeric columns are stored as numbers when they parse as such.
func WriteXLSX(path string, t *models.Table, numericColumns ...string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DefaultSheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(DefaultSheetName)
	if err != nil {
		return err
	}

	numeric := make(map[int]bool)
	header := make([]interface{}, len(t.Columns))
	for i, name := range t.ColumnNames() {
		header[i] = name
		for _, n := range numericColumns {
			if n == name {
				numeric[i] = true
			}
		}
	}

	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := sw.SetRow(cell, header); err != nil {
		return err
	}

	for r := 0; r < t.NumRows(); r++ {
		row := t.Row(r)
		values := make([]interface{}, len(row))
		for i, v := range row {
			if numeric[i] {
				values[i] = parseValue(v)
			} else {
				values[i] = v
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
