package models

// WorkbookData is a parsed spreadsheet-XML document.
type WorkbookData struct {
	// Worksheets lists worksheets in document order.
	Worksheets []*SheetData `json:"worksheets"`
	// Names lists every named-range declaration, workbook and worksheet level,
	// in document order.
	Names []NamedRange `json:"names,omitempty"`
}

// NamedRange is a named-range declaration.
type NamedRange struct {
	// Name is the declared name, untrimmed.
	Name string `json:"name"`
	// RefersTo is the reference string, e.g. "=Births!R1C1:R27C44".
	RefersTo string `json:"refers_to"`
}

// Worksheet returns the first worksheet whose name equals name.
func (wb *WorkbookData) Worksheet(name string) (*SheetData, bool) {
	for _, ws := range wb.Worksheets {
		if ws.Name == name {
			return ws, true
		}
	}
	return nil, false
}

