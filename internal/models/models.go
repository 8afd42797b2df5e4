package models

import (
	"fmt"

	"github.com/avaloro/clienti-export/internal/schema"
)

// Record is one decoded Cliente line. Values maps field name to the decoded
// value (int64, string, bool or time.Time); a nil value marks a null field.
// Records are never mutated after the decoder returns them.
type Record struct {
	LineNumber int
	Values     map[string]any
	// Warnings lists field-level coercion anomalies (non-numeric integer,
	// unparsable date, unknown boolean code). The offending fields decode to
	// null; the warnings exist only so callers can log them.
	Warnings []string
}

// Value returns the decoded value for a field, or nil when the field is null
// or unknown.
func (r *Record) Value(name string) any {
	return r.Values[name]
}

// IsNull reports whether a field decoded to null.
func (r *Record) IsNull(name string) bool {
	return r.Values[name] == nil
}

// DecodeError associates a 1-based input line number with the reason that
// line could not be decoded. Decode errors are collected, not thrown: a bad
// line never stops the read.
type DecodeError struct {
	Line    int
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s - %v", e.Line, e.Message, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Table is the rectangular projection of a record set: columns in schema
// order, rows in input order. Every row has exactly one cell per column; a
// nil cell is the explicit empty marker.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Cell returns the value at a row for a named column. The second return is
// false when the row index or column name is out of range.
func (t *Table) Cell(row int, column string) (any, bool) {
	if row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	for i, name := range t.Columns {
		if name == column {
			return t.Rows[row][i], true
		}
	}
	return nil, false
}

// FieldStats holds the per-field usage figures shown on the summary sheet.
// Type and Length are passed through from the schema for display.
type FieldStats struct {
	Name         string
	Type         schema.FieldType
	Length       int
	NonEmpty     int
	UsagePercent float64
}

// Summary aggregates a whole table: overall counts plus one FieldStats per
// column, in schema order.
type Summary struct {
	TotalRecords int
	TotalFields  int
	RecordLength int
	Fields       []FieldStats
}
