package cases

import (
	"bufio"
	"io"
	"strings"
)

// ExportHeader is the column layout of exported line lists.
var ExportHeader = []string{
	"id", "onset_date", "onset_time", "classification",
	"age", "age_group", "sex", "outcome", "custom",
}

const template = `id,onset_date,onset_time,classification,age,age_group,sex,outcome,custom
CASE-0001,2024-01-15,14:30,confirmed,45,45-64,male,alive,Ward A
CASE-0002,2024-01-15,16:00,probable,32,25-44,female,alive,Ward B
CASE-0003,2024-01-16,,suspected,67,65+,male,unknown,Ward A`

// Template returns a three-row example line list showing the expected columns.
func Template() string {
	return template
}

// Row returns the export columns of a record.
func (r Record) Row() []string {
	row := make([]string, len(Fields))
	for i, f := range Fields {
		row[i] = r.Value(f)
	}
	return row
}

// WriteCSV writes records in export format: a header row and one row per
// record, every field double-quoted with embedded quotes doubled. Rows are
// separated by "\n" with no trailing newline.
func WriteCSV(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(ExportHeader, ",")); err != nil {
		return err
	}
	for _, rec := range records {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		for i, v := range rec.Row() {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(quote(v)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// WriteCSV writes the repository's cases in export format.
func (r *Repository) WriteCSV(w io.Writer) error {
	return WriteCSV(w, r.cases)
}

// ExportCSV returns the repository's cases in export format, or an empty
// string when the repository is empty.
func (r *Repository) ExportCSV() string {
	if len(r.cases) == 0 {
		return ""
	}
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = r.WriteCSV(&sb)
	return sb.String()
}
