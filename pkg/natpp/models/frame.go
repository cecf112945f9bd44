package models

// Metadata holds the release-level values read from the Contents worksheet.
type Metadata struct {
	// ProjectionType is the projection scenario label, e.g. "Principal projection".
	ProjectionType string `json:"projection_type"`
	// Coverage is the geographic coverage text as found in the workbook.
	Coverage string `json:"coverage"`
	// GeographyCode is the area code Coverage resolved to.
	GeographyCode string `json:"geography_code"`
}

// Frame is one reconstructed named range tagged with release metadata.
type Frame struct {
	Table      *Table
	Tab        string
	Projection string
	// Coverage holds the resolved geography code, not the raw coverage text.
	Coverage   string
}
