// Package models defines the data structures for the finance fixture.
package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidTable indicates a table whose rows do not line up with its headers.
var ErrInvalidTable = errors.New("invalid table")

// Row is one labeled category with one amount per period.
type Row struct {
	// Label is the category name written into the first column.
	Label string `json:"label"`
	// Values holds the currency amounts, one per period, in period order.
	Values []decimal.Decimal `json:"values"`
}

// Table is a worksheet table: a title, a header row and labeled amount rows.
type Table struct {
	// Title is the sheet name.
	Title string `json:"title"`
	// Headers is the label column header followed by one label per period.
	Headers []string `json:"headers"`
	// Rows are the data rows in sheet order, starting right below the header.
	Rows []Row `json:"rows"`
}

// Periods returns the period labels (every header but the first).
func (t *Table) Periods() []string {
	if len(t.Headers) == 0 {
		return nil
	}
	return t.Headers[1:]
}

// Validate checks that every row has exactly one value per period.
func (t *Table) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidTable)
	}
	periods := len(t.Periods())
	if periods == 0 {
		return fmt.Errorf("%w: no period headers", ErrInvalidTable)
	}
	for i, row := range t.Rows {
		if len(row.Values) != periods {
			return fmt.Errorf("%w: row %d (%q) has %d values, want %d",
				ErrInvalidTable, i+1, row.Label, len(row.Values), periods)
		}
	}
	return nil
}

// Equal reports whether both tables carry the same title, headers, labels and amounts.
// Amounts compare numerically, so 1000 equals 1000.0.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Diff(other) == ""
}

// Diff describes the first difference between t and other, or "" when they are equal.
func (t *Table) Diff(other *Table) string {
	if t.Title != other.Title {
		return fmt.Sprintf("title %q != %q", t.Title, other.Title)
	}
	if len(t.Headers) != len(other.Headers) {
		return fmt.Sprintf("%d headers != %d", len(t.Headers), len(other.Headers))
	}
	for i := range t.Headers {
		if t.Headers[i] != other.Headers[i] {
			return fmt.Sprintf("header %d: %q != %q", i+1, t.Headers[i], other.Headers[i])
		}
	}
	if len(t.Rows) != len(other.Rows) {
		return fmt.Sprintf("%d rows != %d", len(t.Rows), len(other.Rows))
	}
	for i, row := range t.Rows {
		o := other.Rows[i]
		if row.Label != o.Label {
			return fmt.Sprintf("row %d label: %q != %q", i+1, row.Label, o.Label)
		}
		if len(row.Values) != len(o.Values) {
			return fmt.Sprintf("row %d (%s): %d values != %d", i+1, row.Label, len(row.Values), len(o.Values))
		}
		for j := range row.Values {
			if !row.Values[j].Equal(o.Values[j]) {
				return fmt.Sprintf("row %d (%s) %s: %s != %s",
					i+1, row.Label, t.Headers[j+1], row.Values[j], o.Values[j])
			}
		}
	}
	return ""
}

// Bounds returns the used range the table occupies when written from A1.
func (t *Table) Bounds() Bounds {
	return Bounds{R1: 1, C1: 1, R2: 1 + len(t.Rows), C2: len(t.Headers)}
}
