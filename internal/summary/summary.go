// Package summary computes per-field usage statistics over a projected table.
package summary

import (
	"math"

	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/schema"
)

// Summarize counts, for every schema field, the rows in which the field holds
// a non-empty value, and derives its usage percentage rounded to one decimal.
// An empty table is a defined case: every percentage is 0.0.
func Summarize(s *schema.Schema, t *models.Table) *models.Summary {
	total := len(t.Rows)

	fields := make([]models.FieldStats, 0, len(s.Fields))
	for i, field := range s.Fields {
		nonEmpty := 0
		for _, row := range t.Rows {
			if row[i] != nil {
				nonEmpty++
			}
		}

		usage := 0.0
		if total > 0 {
			usage = round1(float64(nonEmpty) / float64(total) * 100)
		}

		fields = append(fields, models.FieldStats{
			Name:         field.Name,
			Type:         field.Type,
			Length:       field.Length,
			NonEmpty:     nonEmpty,
			UsagePercent: usage,
		})
	}

	return &models.Summary{
		TotalRecords: total,
		TotalFields:  len(s.Fields),
		RecordLength: s.RecordLength,
		Fields:       fields,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
