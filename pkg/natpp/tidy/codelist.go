package tidy

import (
	"fmt"
	"strings"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// CodeListify derives a codelist code from a label: lowercased, with each
// space replaced by a hyphen.
func CodeListify(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

// codelistPairs maps each derived codelist column to its label column.
var codelistPairs = []struct {
	code  string
	label string
}{
	{ColSexCodelist, ColSex},
	{ColAgeCodelist, ColAge},
	{ColProjectionTypeCodelist, ColProjectionType},
	{ColPopulationMeasureCodelist, ColPopulationMeasure},
}

// postProcessColumns must exist before codelists are derived.
var postProcessColumns = []string{
	ColAgeCodelist,
	ColSexCodelist,
	ColProjectionTypeCodelist,
	ColPopulationMeasureCodelist,
	ColGeography,
}

// PostProcess fills the derived codelist columns from their labels and
// expands geography codes to display names. geography_codelist itself is
// left untouched.
func PostProcess(t *models.Table) (*models.Table, error) {
	for _, name := range postProcessColumns {
		if _, ok := t.Column(name); !ok {
			return nil, fmt.Errorf("%w: could not find %s during post processing", ErrMissingColumn, name)
		}
	}

	for _, pair := range codelistPairs {
		labels, ok := t.Column(pair.label)
		if !ok {
			return nil, fmt.Errorf("%w: could not find %s during post processing", ErrMissingColumn, pair.label)
		}
		codes := make([]string, len(labels))
		for i, label := range labels {
			codes[i] = CodeListify(label)
		}
		t.SetColumn(pair.code, codes)
	}

	areaCodes, ok := t.Column(ColGeographyCodelist)
	if !ok {
		return nil, fmt.Errorf("%w: could not find %s during post processing", ErrMissingColumn, ColGeographyCodelist)
	}
	geography, _ := t.Column(ColGeography)
	for i, code := range areaCodes {
		if geo, ok := models.LookupAreaCode(code); ok {
			geography[i] = geo.Name
		}
	}

	return t, nil
}
