// Package models defines data structures for population projection extraction.
package models

import "strings"

// Column is a named, ordered sequence of string values.
type Column struct {
	// Name is the column header text.
	Name string `json:"name"`
	// Values holds one entry per table row.
	Values []string `json:"values"`
}

// Table is a column-oriented table whose columns all have the same length.
type Table struct {
	// Columns holds the columns in header order.
	Columns []Column `json:"columns"`
}

// NumRows returns the number of rows, taken from the first column.
func (t *Table) NumRows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnNames returns the column headers in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// ColumnFold is like Column but compares names case-insensitively,
// ignoring surrounding whitespace.
func (t *Table) ColumnFold(name string) ([]string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c.Values, true
		}
	}
	return nil, false
}

// SetColumn replaces the values of the named column, appending a new
// column when none exists.
func (t *Table) SetColumn(name string, values []string) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			t.Columns[i].Values = values
			return
		}
	}
	t.Columns = append(t.Columns, Column{Name: name, Values: values})
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Concat stacks tables vertically. Columns are matched by name; the result
// has the union of all column names in first-seen order and cells missing
// from a table are left empty.
func Concat(tables ...*Table) *Table {
	out := &Table{}
	index := make(map[string]int)
	total := 0

	for _, t := range tables {
		if t == nil {
			continue
		}
		n := t.NumRows()
		for _, c := range t.Columns {
			if _, ok := index[c.Name]; !ok {
				index[c.Name] = len(out.Columns)
				out.Columns = append(out.Columns, Column{
					Name:   c.Name,
					Values: make([]string, total, total+n),
				})
			}
		}
		for i := range out.Columns {
			col := &out.Columns[i]
			if src, ok := t.Column(col.Name); ok {
				col.Values = append(col.Values, src...)
			} else {
				col.Values = append(col.Values, make([]string, n)...)
			}
		}
		total += n
	}

	return out
}
