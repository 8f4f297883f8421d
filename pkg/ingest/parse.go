// Package ingest turns user-supplied tabular data (delimited text, Excel
// workbooks, JSON arrays, HTML tables) into case inputs: it detects which
// column holds which field and normalizes every value on the way in.
package ingest

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

var (
	ErrNoHeader          = errors.New("input has no header row")
	ErrMissingDateColumn = errors.New("no onset date column found: the header row needs a date column such as onset_date, date or onset")
	ErrNoValidRows       = errors.New("no rows with a valid onset date")
	ErrNoTable           = errors.New("no table found in document")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Row is one data row keyed by the lowercased, trimmed header.
type Row map[string]string

// Table is parsed tabular input before field mapping.
type Table struct {
	// Headers as they appear in the source, in column order.
	Headers []string
	Rows    []Row
}

// Get returns the value of header in row, empty if absent.
func (r Row) Get(header string) string {
	return r[rowKey(header)]
}

func rowKey(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Parse reads comma- or tab-delimited text with a header row. Blank lines are
// skipped. When no header is recognizable as the onset date, Parse returns
// the headers it found together with ErrMissingDateColumn and no rows.
func Parse(raw string) (*Table, error) {
	var records [][]string
	for _, line := range lineBreak.Split(raw, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, SplitRow(line))
	}
	return newTable(records)
}

// SplitRow splits one line into trimmed fields. Commas and tabs both
// delimit, double quotes group, and "" inside quotes is a literal quote.
func SplitRow(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if quoted && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				quoted = !quoted
			}
		case (c == ',' || c == '\t') && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// newTable builds a table from raw records: the first record with any
// non-blank cell is the header row, every later non-blank record a data row.
func newTable(records [][]string) (*Table, error) {
	start := -1
	for i, rec := range records {
		if !blank(rec) {
			start = i
			break
		}
	}
	if start < 0 {
		return &Table{}, ErrNoHeader
	}

	headers := make([]string, len(records[start]))
	for i, h := range records[start] {
		headers[i] = strings.TrimSpace(h)
	}
	t := &Table{Headers: headers}
	if !DetectColumns(headers).Has(cases.FieldOnsetDate) {
		return t, ErrMissingDateColumn
	}

	for _, rec := range records[start+1:] {
		if blank(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[rowKey(h)] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
