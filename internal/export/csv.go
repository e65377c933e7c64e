package export

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Record is one parsed CSV data row keyed by header name.
type Record map[string]string

// ParseCSV parses exported CSV text into records. A leading UTF-8 BOM is
// stripped, the delimiter is auto-detected from the header line (";" wins
// when it outnumbers ","), duplicate headers get a "__2", "__3" suffix and
// fully empty rows are skipped.
func ParseCSV(text string) ([]Record, error) {
	text = strings.TrimPrefix(text, "\uFEFF")
	if strings.TrimSpace(text) == "" {
		return []Record{}, nil
	}

	firstLine, _, _ := strings.Cut(text, "\n")
	delimiter := ','
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		delimiter = ';'
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	headers := dedupeHeaders(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(headers))
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			record[header] = value
		}
		if empty {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func dedupeHeaders(raw []string) []string {
	seen := make(map[string]int, len(raw))
	headers := make([]string, 0, len(raw))
	for _, name := range raw {
		base := strings.TrimSpace(name)
		if base == "" {
			base = fmt.Sprintf("__col_%d", len(headers)+1)
		}
		seen[base]++
		if n := seen[base]; n > 1 {
			base = fmt.Sprintf("%s__%d", base, n)
		}
		headers = append(headers, base)
	}
	return headers
}
