package parser

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// Table reconstruction errors.
var (
	ErrCellCountMismatch = errors.New("cell count is not a multiple of the row stride")
	ErrWorksheetNotFound = errors.New("worksheet not found")
	ErrDuplicateColumn   = errors.New("duplicate column header")
)

// Reconstruct rebuilds the table behind a named range from the flat cell
// stream of the worksheet of the same name.
func Reconstruct(wb *models.WorkbookData, desc models.RangeDescriptor) (*models.Table, error) {
	name := desc.Name.String()

	sheet, ok := wb.Worksheet(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWorksheetNotFound, name)
	}

	table, err := BuildTable(sheet.Cells(), desc.RowCount)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", name, err)
	}

	log.WithFields(log.Fields{
		"range":   name,
		"columns": len(table.Columns),
		"rows":    table.NumRows(),
	}).Debug("Reconstructed table")

	return table, nil
}

// BuildTable de-flattens a cell stream. The first rowCount cells are the
// column headers; every later cell at position p belongs to column
// p mod rowCount. len(cells) must be a positive multiple of rowCount.
func BuildTable(cells []string, rowCount int) (*models.Table, error) {
	if rowCount < 1 {
		return nil, fmt.Errorf("%w: stride %d", ErrCellCountMismatch, rowCount)
	}
	if len(cells) == 0 || len(cells)%rowCount != 0 {
		return nil, fmt.Errorf("%w: %d cells, stride %d", ErrCellCountMismatch, len(cells), rowCount)
	}

	dataRows := len(cells)/rowCount - 1
	table := &models.Table{Columns: make([]models.Column, rowCount)}
	seen := make(map[string]bool, rowCount)

	for i := 0; i < rowCount; i++ {
		header := cells[i]
		if seen[header] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, header)
		}
		seen[header] = true
		table.Columns[i] = models.Column{
			Name:   header,
			Values: make([]string, 0, dataRows),
		}
	}

	for pos := rowCount; pos < len(cells); pos++ {
		col := &table.Columns[pos%rowCount]
		col.Values = append(col.Values, cells[pos])
	}

	return table, nil
}
