// Package decoder turns one fixed-width Cliente line into a typed record.
package decoder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/schema"
)

// dateLayout is the digit order used by Cliente date fields (YYYYMMDD).
const dateLayout = "20060102"

// Decode slices line into the schema's fields and coerces each slice to its
// declared type. Lines shorter than the record length are padded with spaces
// (legacy producers truncate trailing blank fields); characters past the
// record length are ignored. A field that fails coercion becomes null and a
// warning on the record — it never fails the line. The returned error is
// non-nil only for a structural problem, i.e. a missing schema.
func Decode(s *schema.Schema, line string, lineNumber int) (*models.Record, error) {
	if s == nil || len(s.Fields) == 0 {
		return nil, fmt.Errorf("no schema configured")
	}

	runes := []rune(line)
	if len(runes) < s.RecordLength {
		padded := make([]rune, s.RecordLength)
		copy(padded, runes)
		for i := len(runes); i < s.RecordLength; i++ {
			padded[i] = ' '
		}
		runes = padded
	}

	record := &models.Record{
		LineNumber: lineNumber,
		Values:     make(map[string]any, len(s.Fields)),
	}

	for _, field := range s.Fields {
		raw := string(runes[field.Start : field.Start+field.Length])
		value, warning := coerce(raw, field, s.BoolCodes)
		record.Values[field.Name] = value
		if warning != "" {
			record.Warnings = append(record.Warnings, warning)
		}
	}

	return record, nil
}

// coerce trims a raw field slice and converts it per the field's type. A
// blank slice is always null. Content that does not fit the type is resolved
// to null with a warning instead of an error.
func coerce(raw string, field schema.FieldDescriptor, codes schema.BoolCodes) (any, string) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ""
	}

	switch field.Type {
	case schema.Integer:
		n, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			return nil, fmt.Sprintf("non-numeric value in integer field %s: %q", field.Name, clean)
		}
		return n, ""

	case schema.Boolean:
		value, ok := codes[strings.ToUpper(clean)]
		if !ok {
			return nil, fmt.Sprintf("unknown boolean code in field %s: %q", field.Name, clean)
		}
		return value, ""

	case schema.Date:
		t, err := time.Parse(dateLayout, clean)
		if err != nil {
			return nil, fmt.Sprintf("unparsable date in field %s: %q", field.Name, clean)
		}
		return t, ""

	default:
		return clean, ""
	}
}
