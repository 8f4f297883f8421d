package ingest

import (
	"strings"

	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/onset"
)

// Convert applies mapping to rows and normalizes each mapped value. Rows whose
// onset date does not normalize are dropped. When several headers map to the
// same field, the first non-empty value in header order wins.
func Convert(rows []Row, mapping Mapping) []cases.Input {
	headers := mapping.sortedHeaders()
	out := make([]cases.Input, 0, len(rows))
	for _, row := range rows {
		in := convertRow(row, headers, mapping)
		if in.OnsetDate == "" {
			continue
		}
		out = append(out, in)
	}
	return out
}

func convertRow(row Row, headers []string, mapping Mapping) cases.Input {
	var in cases.Input
	set := make(map[cases.Field]bool, len(headers))

	for _, h := range headers {
		f := mapping[h]
		if set[f] {
			continue
		}
		raw := row.Get(h)
		if applyField(&in, f, raw) {
			set[f] = true
		}
	}

	if !set[cases.FieldClassification] && mapping.Has(cases.FieldClassification) {
		in.Classification = cases.Confirmed
	}
	return in
}

// applyField stores the normalized raw value into in and reports whether
// anything was stored.
func applyField(in *cases.Input, f cases.Field, raw string) bool {
	raw = strings.TrimSpace(raw)
	switch f {
	case cases.FieldID:
		in.ID = raw
		return raw != ""
	case cases.FieldOnsetDate:
		d, ok := onset.NormalizeDate(raw)
		in.OnsetDate = d
		return ok
	case cases.FieldOnsetTime:
		t, ok := onset.NormalizeTime(raw)
		in.OnsetTime = t
		return ok
	case cases.FieldClassification:
		c, ok := cases.MatchClassification(raw)
		in.Classification = c
		return ok
	case cases.FieldAge:
		a, ok := cases.ParseAge(raw)
		in.Age = a
		return ok
	case cases.FieldAgeGroup:
		g, ok := cases.MatchAgeGroup(raw)
		in.AgeGroup = g
		return ok
	case cases.FieldSex:
		s, ok := cases.MatchSex(raw)
		in.Sex = s
		return ok
	case cases.FieldOutcome:
		o, ok := cases.MatchOutcome(raw)
		in.Outcome = o
		return ok
	case cases.FieldCustom:
		in.Custom = raw
		return raw != ""
	}
	return false
}
