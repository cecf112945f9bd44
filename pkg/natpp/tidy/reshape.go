package tidy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// Source column names. They identify rows rather than hold observations.
const (
	sourceSex  = "Sex"
	sourceAge  = "Age"
	sourceFlow = "Flow"
)

// Sex labels for the numeric codes used in the source tables.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Reshape pivots each frame's year columns into long form and stacks the
// results, frames and columns in order, before post-processing.
func Reshape(frames []models.Frame) (*models.Table, error) {
	var pieces []*models.Table

	for _, f := range frames {
		for _, col := range f.Table.Columns {
			if isIdentifierColumn(col.Name) {
				continue
			}
			piece, err := reshapeColumn(f, col)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, piece)
		}
	}

	if len(pieces) == 0 {
		return newTable(), nil
	}

	return PostProcess(models.Concat(pieces...))
}

func isIdentifierColumn(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sex", "age", "flow":
		return true
	}
	return false
}

// reshapeColumn turns one year column into a slice of the tidy table.
// Codelist columns are left blank for PostProcess.
func reshapeColumn(f models.Frame, col models.Column) (*models.Table, error) {
	n := len(col.Values)

	sex, err := sourceColumn(f, sourceSex)
	if err != nil {
		return nil, err
	}
	age, err := sourceColumn(f, sourceAge)
	if err != nil {
		return nil, err
	}

	measure := repeat(f.Tab, n)
	if models.IsMigrationTab(f.Tab) && n > 1 {
		flow, err := sourceColumn(f, sourceFlow)
		if err != nil {
			return nil, err
		}
		for i := range measure {
			measure[i] = f.Tab + "(" + flow[i] + ")"
		}
	}

	sexLabels := make([]string, n)
	for i, v := range sex {
		sexLabels[i] = SexLabel(v)
	}

	t := newTable()
	t.SetColumn(ColValue, append([]string(nil), col.Values...))
	t.SetColumn(ColTime, repeat(col.Name, n))
	t.SetColumn(ColTimeCodelist, repeat(TimeCodelist, n))
	t.SetColumn(ColGeography, make([]string, n))
	t.SetColumn(ColGeographyCodelist, repeat(f.Coverage, n))
	t.SetColumn(ColSex, sexLabels)
	t.SetColumn(ColSexCodelist, make([]string, n))
	t.SetColumn(ColAge, append([]string(nil), age...))
	t.SetColumn(ColAgeCodelist, make([]string, n))
	t.SetColumn(ColProjectionType, repeat(f.Projection, n))
	t.SetColumn(ColProjectionTypeCodelist, make([]string, n))
	t.SetColumn(ColPopulationMeasure, measure)
	t.SetColumn(ColPopulationMeasureCodelist, make([]string, n))

	return t, nil
}

func sourceColumn(f models.Frame, name string) ([]string, error) {
	values, ok := f.Table.ColumnFold(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s in range %q", ErrMissingColumn, name, f.Tab)
	}
	return values, nil
}

// SexLabel maps the numeric sex codes 1 and 2 to Male and Female.
// Anything else is returned unchanged.
func SexLabel(v string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return v
	}
	switch f {
	case 1:
		return SexMale
	case 2:
		return SexFemale
	}
	return v
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
