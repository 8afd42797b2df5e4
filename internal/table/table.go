// Package table projects decoded records into a rectangular column/row table
// consumable by any output sink.
package table

import (
	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/schema"
)

// Project builds a Table from a record set. Columns always follow schema
// order regardless of which fields any record populates; rows keep input
// order. Null fields become explicit nil cells, so every row is exactly one
// cell per column.
func Project(s *schema.Schema, records []*models.Record) *models.Table {
	columns := s.FieldNames()
	rows := make([][]any, 0, len(records))

	for _, record := range records {
		row := make([]any, len(columns))
		for i, name := range columns {
			row[i] = record.Values[name]
		}
		rows = append(rows, row)
	}

	return &models.Table{Columns: columns, Rows: rows}
}
