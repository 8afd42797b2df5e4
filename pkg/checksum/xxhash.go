package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// File fingerprints a source file so an exported workbook can be traced back
// to the exact input that produced it.
func File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Line fingerprints a single record line.
func Line(line string) string {
	digest := xxhash.New()
	digest.WriteString(line)
	return hex.EncodeToString(digest.Sum(nil))
}
