package ingest

import (
	"github.com/sw33tLie/epicurve/pkg/cases"
)

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Report describes the outcome of one import.
type Report struct {
	Headers  []string
	Mapping  Mapping
	Rows     int // data rows read from the source
	Imported int // rows added to the repository
	Dropped  int // rows discarded for an unparseable onset date
	Records  []cases.Record
}

// Ingestor feeds parsed tables into a repository.
type Ingestor struct {
	log Logger
}

// New returns an Ingestor. A nil log discards messages.
func New(log Logger) *Ingestor {
	if log == nil {
		log = nopLogger{}
	}
	return &Ingestor{log: log}
}

// Import converts t with mapping and adds the result to repo. A nil mapping
// is detected from the headers. The repository is left untouched when the
// mapping has no onset date column (ErrMissingDateColumn) or when no row
// survives conversion (ErrNoValidRows).
func (in *Ingestor) Import(t *Table, mapping Mapping, repo *cases.Repository) (*Report, error) {
	if mapping == nil {
		mapping = DetectColumns(t.Headers)
	}
	rep := &Report{Headers: t.Headers, Mapping: mapping, Rows: len(t.Rows)}

	for _, h := range t.Headers {
		if f, ok := mapping[h]; ok {
			in.log.Debugf("Column %q -> %s", h, f)
		} else {
			in.log.Debugf("Column %q is not mapped", h)
		}
	}

	if !mapping.Has(cases.FieldOnsetDate) {
		return rep, ErrMissingDateColumn
	}

	inputs := Convert(t.Rows, mapping)
	rep.Dropped = rep.Rows - len(inputs)
	if rep.Dropped > 0 {
		in.log.Warnf("Dropped %d of %d rows with an unparseable onset date", rep.Dropped, rep.Rows)
	}
	if len(inputs) == 0 {
		return rep, ErrNoValidRows
	}

	rep.Records = repo.AddMany(inputs)
	rep.Imported = len(rep.Records)
	in.log.Infof("Imported %d cases", rep.Imported)
	return rep, nil
}

// ImportText parses delimited text and imports it with detected columns.
func (in *Ingestor) ImportText(raw string, repo *cases.Repository) (*Report, error) {
	t, err := Parse(raw)
	if err != nil {
		return &Report{Headers: t.Headers}, err
	}
	return in.Import(t, nil, repo)
}
