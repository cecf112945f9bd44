package models

import "strings"

// Geography ties a coverage text found in a workbook to an area code and
// the display name published alongside it.
type Geography struct {
	Coverage string
	Code     string
	Name     string
}

// UnitedKingdom is the only geography projections are published for.
var UnitedKingdom = Geography{
	Coverage: "United Kingdom (uk)",
	Code:     "K02000001",
	Name:     "United Kingdom",
}

var geographies = []Geography{UnitedKingdom}

// LookupCoverage finds the geography for a coverage text.
func LookupCoverage(coverage string) (Geography, bool) {
	coverage = strings.TrimSpace(coverage)
	for _, g := range geographies {
		if g.Coverage == coverage {
			return g, true
		}
	}
	return Geography{}, false
}

// LookupAreaCode finds the geography for an area code.
func LookupAreaCode(code string) (Geography, bool) {
	for _, g := range geographies {
		if g.Code == code {
			return g, true
		}
	}
	return Geography{}, false
}
