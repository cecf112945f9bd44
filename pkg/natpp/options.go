// Package natpp converts national population projection releases into a
// single tidy table.
package natpp

// DefaultOutputPath is the file name the tidy CSV is written to.
const DefaultOutputPath = "Experimental-National Population Projections.csv"

// Options configures a conversion run.
type Options struct {
	// OutputPath is where the tidy CSV is written.
	OutputPath string
	// XLSXPath, when set, is where a workbook copy of the table is written.
	XLSXPath string
	// Strict requires every workbook to declare exactly the expected set of
	// named ranges. When false, missing ranges are only reported.
	Strict bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
	}
}

// ShouldWriteXLSX returns whether a workbook copy is requested.
func (o Options) ShouldWriteXLSX() bool {
	return o.XLSXPath != ""
}
