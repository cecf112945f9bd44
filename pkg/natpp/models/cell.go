package models

// CellRow represents a single worksheet row.
type CellRow struct {
	// Text is all character data inside the row, concatenated.
	Text string `json:"text"`
	// Cells lists the row's cells in document order.
	Cells []Cell `json:"cells"`
	// Data lists the text of each Data element in the row, in order.
	// Cells without a Data element contribute nothing.
	Data []string `json:"data,omitempty"`
}

// Cell is a single worksheet cell.
type Cell struct {
	// Text is the trimmed character data of the cell.
	Text string `json:"text"`
}
