// Package csvmap reads CSV documents whose first row is a header, yielding
// one column-name-to-value map per record.
package csvmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Read parses r as a header-first CSV document. Header names are trimmed and
// lowercased; empty cells stay in the map as empty strings. A document with
// only a header yields an empty slice.
func Read(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv document is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	for i, name := range header {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}

	records := []map[string]string{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}

	return records, nil
}
