// Package reader walks an input source line by line and collects decoded
// records together with per-line decode errors, in source order.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avaloro/clienti-export/internal/decoder"
	"github.com/avaloro/clienti-export/internal/models"
	"github.com/avaloro/clienti-export/internal/schema"
)

// maxLineSize bounds a single input line. Records are 1,698 characters; this
// leaves generous headroom for trailing garbage from legacy producers.
const maxLineSize = 1024 * 1024

// ReadAll consumes the source exactly once, assigning physical 1-based line
// numbers. Fully blank lines are skipped and never counted as errors. Every
// non-blank line ends up either in records or in errs, in source order; a
// decode error never aborts the read. The returned error is non-nil only
// when the source itself fails mid-read.
func ReadAll(s *schema.Schema, src io.Reader) (records []*models.Record, errs []models.DecodeError, err error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, decodeErr := decoder.Decode(s, line, lineNumber)
		if decodeErr != nil {
			errs = append(errs, models.DecodeError{
				Line:    lineNumber,
				Message: "failed to decode record",
				Err:     decodeErr,
			})
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return records, errs, fmt.Errorf("failed to read input: %w", err)
	}

	return records, errs, nil
}

// ReadFile opens a record file and reads it with ReadAll. An unopenable file
// is the one fatal case: it fails before any records are produced, so the
// caller can tell "input unreadable" apart from "zero records found".
func ReadFile(s *schema.Schema, path string) ([]*models.Record, []models.DecodeError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return ReadAll(s, file)
}
