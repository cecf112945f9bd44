package models

// SheetData represents a single worksheet.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows contains the worksheet rows in document order.
	Rows []CellRow `json:"rows,omitempty"`
}

// Cells returns every cell text of the worksheet in document order,
// with no row structure.
func (s *SheetData) Cells() []string {
	var cells []string
	for _, row := range s.Rows {
		for _, c := range row.Cells {
			cells = append(cells, c.Text)
		}
	}
	return cells
}
