package models

import "strings"

// RangeName identifies one of the named ranges a projection workbook is
// expected to declare.
type RangeName int

const (
	Births RangeName = iota
	CrossBorderMigration
	CrossBorderRates
	Deaths
	FertilityAssumptions
	InternationalMigration
	MortalityAssumptions
	Population
	TotalMigration
)

// rangeNames maps each RangeName to the name used in the workbook.
var rangeNames = [...]string{
	Births:                 "Births",
	CrossBorderMigration:   "Cross_border_migration",
	CrossBorderRates:       "Cross_border_rates",
	Deaths:                 "Deaths",
	FertilityAssumptions:   "Fertility_assumptions",
	InternationalMigration: "International_migration",
	MortalityAssumptions:   "Mortality_assumptions",
	Population:             "Population",
	TotalMigration:         "Total_migration",
}

// RangeNames returns every expected range in declaration order.
func RangeNames() []RangeName {
	names := make([]RangeName, len(rangeNames))
	for i := range rangeNames {
		names[i] = RangeName(i)
	}
	return names
}

// LookupRangeName returns the RangeName for a workbook range name.
// Matching is exact; callers trim the name first.
func LookupRangeName(s string) (RangeName, bool) {
	for i, name := range rangeNames {
		if name == s {
			return RangeName(i), true
		}
	}
	return 0, false
}

// String returns the workbook name of the range.
func (r RangeName) String() string {
	if r < 0 || int(r) >= len(rangeNames) {
		return "RangeName(unknown)"
	}
	return rangeNames[r]
}

// IsMigration reports whether the range holds migration flows, whose
// measures are qualified by the flow direction.
func (r RangeName) IsMigration() bool {
	return IsMigrationTab(r.String())
}

// IsMigrationTab reports whether a tab name denotes a migration table.
func IsMigrationTab(tab string) bool {
	return strings.Contains(strings.ToLower(tab), "migration")
}

// RangeDescriptor describes a named range and its row stride.
type RangeDescriptor struct {
	// Name is the range (and worksheet) name.
	Name RangeName `json:"name"`
	// RowCount is the number of cells per row of the range, header included.
	RowCount int `json:"row_count"`
	// RefersTo is the raw reference string the stride was taken from.
	RefersTo string `json:"refers_to"`
}
