package natpp

import (
	"errors"
	"fmt"

	"github.com/ukaji3/natpp-go/pkg/natpp/parser"
	"github.com/ukaji3/natpp-go/pkg/natpp/tidy"
)

// ErrNoEligibleFiles indicates no archive member produced tidy rows.
var ErrNoEligibleFiles = errors.New("no eligible projection files")

// ErrRangeSetMismatch indicates, in strict mode, that a workbook did not
// declare exactly the expected named ranges.
var ErrRangeSetMismatch = errors.New("unexpected set of named ranges")

// Error kinds raised by the stages of a conversion.
var (
	ErrParse                   = parser.ErrParse
	ErrRequiredFieldMissing    = parser.ErrRequiredFieldMissing
	ErrUnsupportedGeography    = parser.ErrUnsupportedGeography
	ErrMalformedRangeReference = parser.ErrMalformedRangeReference
	ErrCellCountMismatch       = parser.ErrCellCountMismatch
	ErrWorksheetNotFound       = parser.ErrWorksheetNotFound
	ErrDuplicateColumn         = parser.ErrDuplicateColumn
	ErrMissingColumn           = tidy.ErrMissingColumn
)

// FileError represents a failure while converting one archive member.
type FileError struct {
	File  string
	Stage string // "read", "parse", "metadata", "catalog", "reconstruct", "reshape"
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(file, stage string, err error) *FileError {
	return &FileError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
