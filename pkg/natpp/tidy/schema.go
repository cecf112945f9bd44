// Package tidy pivots reconstructed projection tables into long form, one
// observation per row with a coded and a labelled column per dimension.
package tidy

import (
	"errors"
	"fmt"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// ErrMissingColumn indicates a column required by the tidy schema is absent.
var ErrMissingColumn = errors.New("missing mandatory column")

// Column names of the tidy table.
const (
	ColValue                     = "value"
	ColTime                      = "time"
	ColTimeCodelist              = "time_codelist"
	ColGeography                 = "geography"
	ColGeographyCodelist         = "geography_codelist"
	ColSex                       = "sex"
	ColSexCodelist               = "sex_codelist"
	ColAge                       = "age"
	ColAgeCodelist               = "age_codelist"
	ColProjectionType            = "projectiontype"
	ColProjectionTypeCodelist    = "projectiontype_codelist"
	ColPopulationMeasure         = "populationmeasure"
	ColPopulationMeasureCodelist = "populationmeasure_codelist"
)

// TimeCodelist is the codelist every time value belongs to.
const TimeCodelist = "Year"

// Schema is the column order of the emitted table.
var Schema = []string{
	ColValue,
	ColTime,
	ColTimeCodelist,
	ColGeography,
	ColGeographyCodelist,
	ColSex,
	ColSexCodelist,
	ColAge,
	ColAgeCodelist,
	ColProjectionType,
	ColProjectionTypeCodelist,
	ColPopulationMeasure,
	ColPopulationMeasureCodelist,
}

// Conform returns a copy of t holding exactly the Schema columns in Schema
// order. It fails on the first Schema column t lacks.
func Conform(t *models.Table) (*models.Table, error) {
	out := &models.Table{Columns: make([]models.Column, 0, len(Schema))}
	for _, name := range Schema {
		values, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		out.Columns = append(out.Columns, models.Column{Name: name, Values: values})
	}
	return out, nil
}

// newTable returns an empty table with the Schema columns.
func newTable() *models.Table {
	t := &models.Table{Columns: make([]models.Column, len(Schema))}
	for i, name := range Schema {
		t.Columns[i] = models.Column{Name: name, Values: []string{}}
	}
	return t
}
