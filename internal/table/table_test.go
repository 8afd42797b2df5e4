package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaloro/clienti-export/internal/decoder"
	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/schema"
)

func decodeLine(t *testing.T, overrides map[string]string) *models.Record {
	t.Helper()
	s := schema.Clienti()

	runes := []rune(strings.Repeat(" ", s.RecordLength))
	for name, raw := range overrides {
		for _, field := range s.Fields {
			if field.Name == name {
				require.LessOrEqual(t, len(raw), field.Length)
				copy(runes[field.Start:], []rune(raw))
			}
		}
	}

	record, err := decoder.Decode(s, string(runes), 1)
	require.NoError(t, err)
	return record
}

func TestProject_ColumnOrder(t *testing.T) {
	s := schema.Clienti()
	tbl := Project(s, nil)

	assert.Equal(t, s.FieldNames(), tbl.Columns)
	assert.Len(t, tbl.Columns, 44)
	assert.Empty(t, tbl.Rows)
}

func TestProject_RoundTrip(t *testing.T) {
	record := decodeLine(t, map[string]string{
		"progressivo":    "00000001",
		"codice":         "CLI001",
		"citta":          "Milano",
		"libero":         "S",
		"scadenza_bonus": "20251231",
	})

	tbl := Project(schema.Clienti(), []*models.Record{record})
	require.Len(t, tbl.Rows, 1)

	for _, name := range tbl.Columns {
		cell, ok := tbl.Cell(0, name)
		require.True(t, ok, "column %s", name)
		assert.Equal(t, record.Value(name), cell, "column %s", name)
	}
}

func TestProject_ExplicitEmptyCells(t *testing.T) {
	record := decodeLine(t, map[string]string{"codice": "CLI001"})

	tbl := Project(schema.Clienti(), []*models.Record{record})
	require.Len(t, tbl.Rows, 1)

	// Every row carries one cell per column even when most fields are null.
	assert.Len(t, tbl.Rows[0], len(tbl.Columns))

	citta, ok := tbl.Cell(0, "citta")
	require.True(t, ok)
	assert.Nil(t, citta)
}

func TestProject_RowOrder(t *testing.T) {
	records := []*models.Record{
		decodeLine(t, map[string]string{"progressivo": "00000003"}),
		decodeLine(t, map[string]string{"progressivo": "00000001"}),
		decodeLine(t, map[string]string{"progressivo": "00000002"}),
	}

	tbl := Project(schema.Clienti(), records)
	require.Len(t, tbl.Rows, 3)

	want := []int64{3, 1, 2}
	for i, expected := range want {
		cell, ok := tbl.Cell(i, "progressivo")
		require.True(t, ok)
		assert.Equal(t, expected, cell)
	}
}

func TestTable_CellOutOfRange(t *testing.T) {
	tbl := Project(schema.Clienti(), nil)

	_, ok := tbl.Cell(0, "codice")
	assert.False(t, ok)

	tbl = Project(schema.Clienti(), []*models.Record{decodeLine(t, nil)})
	_, ok = tbl.Cell(0, "no_such_column")
	assert.False(t, ok)
	_, ok = tbl.Cell(-1, "codice")
	assert.False(t, ok)
}
