package parser

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// Metadata errors.
var (
	ErrRequiredFieldMissing = errors.New("required contents field not found")
	ErrUnsupportedGeography = errors.New("unsupported geographic coverage")
)

// ContentsSheet is the worksheet holding release-level metadata.
const ContentsSheet = "Contents"

// MetadataField is a value scraped from free text in the Contents sheet.
// Resolution is two-stage: find the first row whose text contains Label,
// then let Extract pull the value out of that row. Both stages depend on
// the vendor keeping the sheet layout stable.
type MetadataField struct {
	Label   string
	Extract func(row models.CellRow) (string, bool)
}

var (
	// ProjectionTypeField is the projection scenario label.
	ProjectionTypeField = MetadataField{Label: "Projection type:", Extract: SecondDataCell}
	// CoverageField is the geographic coverage text.
	CoverageField = MetadataField{Label: "Coverage", Extract: SecondDataCell}
)

// SecondDataCell returns the text of the second Data element of a row.
func SecondDataCell(row models.CellRow) (string, bool) {
	if len(row.Data) < 2 {
		return "", false
	}
	return row.Data[1], true
}

// Resolve looks the field up in the named worksheet. Absence of the
// worksheet, of a matching row, or of the value in that row all report
// false.
func (f MetadataField) Resolve(wb *models.WorkbookData, sheetName string) (string, bool) {
	sheet, ok := wb.Worksheet(sheetName)
	if !ok {
		return "", false
	}

	for _, row := range sheet.Rows {
		if strings.Contains(row.Text, f.Label) {
			return f.Extract(row)
		}
	}

	return "", false
}

// ResolveField returns the second data cell of the first row in sheetName
// whose text contains label.
func ResolveField(wb *models.WorkbookData, sheetName, label string) (string, bool) {
	return MetadataField{Label: label, Extract: SecondDataCell}.Resolve(wb, sheetName)
}

// ResolveMetadata reads the projection type and coverage from the Contents
// sheet and resolves the coverage to an area code.
func ResolveMetadata(wb *models.WorkbookData) (models.Metadata, error) {
	projection, err := requireField(wb, ProjectionTypeField)
	if err != nil {
		return models.Metadata{}, err
	}

	coverage, err := requireField(wb, CoverageField)
	if err != nil {
		return models.Metadata{}, err
	}

	geo, ok := models.LookupCoverage(coverage)
	if !ok {
		return models.Metadata{}, fmt.Errorf("%w: expecting %q in the %s sheet, got %q",
			ErrUnsupportedGeography, models.UnitedKingdom.Coverage, ContentsSheet, coverage)
	}

	return models.Metadata{
		ProjectionType: projection,
		Coverage:       coverage,
		GeographyCode:  geo.Code,
	}, nil
}

func requireField(wb *models.WorkbookData, f MetadataField) (string, error) {
	value, ok := f.Resolve(wb, ContentsSheet)
	if !ok {
		return "", fmt.Errorf("%w: %q in sheet %q", ErrRequiredFieldMissing, f.Label, ContentsSheet)
	}
	value = strings.TrimSpace(value)
	log.Infof("Setting '%s' as: '%s'", f.Label, value)
	return value, nil
}
