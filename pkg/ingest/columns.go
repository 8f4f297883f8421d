package ingest

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

// synonym maps a normalized header pattern to the field it names.
type synonym struct {
	pattern string
	field   cases.Field
}

// synonyms is the source of truth for column detection. A header matches a
// pattern when it equals it or contains it, and the first match wins, so
// specific patterns must come before the generic ones they contain
// (onset_time before onset, age_group before age, status_outcome before
// status).
var synonyms = []synonym{
	{"onset_time", cases.FieldOnsetTime},
	{"onsettime", cases.FieldOnsetTime},
	{"time_onset", cases.FieldOnsetTime},
	{"symptom_time", cases.FieldOnsetTime},
	{"time", cases.FieldOnsetTime},

	{"age_group", cases.FieldAgeGroup},
	{"agegroup", cases.FieldAgeGroup},
	{"age_category", cases.FieldAgeGroup},
	{"age_band", cases.FieldAgeGroup},

	{"status_outcome", cases.FieldOutcome},
	{"vital_status", cases.FieldOutcome},
	{"outcome", cases.FieldOutcome},

	{"onset_date", cases.FieldOnsetDate},
	{"onsetdate", cases.FieldOnsetDate},
	{"date_onset", cases.FieldOnsetDate},
	{"symptom_onset", cases.FieldOnsetDate},
	{"onset", cases.FieldOnsetDate},
	{"date", cases.FieldOnsetDate},

	{"case_id", cases.FieldID},
	{"caseid", cases.FieldID},
	{"case_no", cases.FieldID},
	{"id", cases.FieldID},

	{"case_classification", cases.FieldClassification},
	{"classification", cases.FieldClassification},
	{"status", cases.FieldClassification},

	{"age_years", cases.FieldAge},
	{"age", cases.FieldAge},

	{"sex", cases.FieldSex},
	{"gender", cases.FieldSex},

	{"custom", cases.FieldCustom},
	{"category", cases.FieldCustom},
	{"group", cases.FieldCustom},
	{"notes", cases.FieldCustom},
	{"ward", cases.FieldCustom},
	{"cohort", cases.FieldCustom},
}

var nonHeaderChars = regexp.MustCompile(`[^a-z_]`)

// NormalizeHeader lowercases a header and drops everything but letters and
// underscores, so "Onset Date" and "onset-date" both become "onsetdate".
func NormalizeHeader(h string) string {
	return nonHeaderChars.ReplaceAllString(strings.ToLower(h), "")
}

// Mapping assigns source headers to case fields. Headers absent from the
// mapping are ignored on conversion.
type Mapping map[string]cases.Field

// Has reports whether any header maps to f.
func (m Mapping) Has(f cases.Field) bool {
	for _, v := range m {
		if v == f {
			return true
		}
	}
	return false
}

// Headers returns the headers mapped to f, sorted.
func (m Mapping) Headers(f cases.Field) []string {
	var out []string
	for h, v := range m {
		if v == f {
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

// sortedHeaders returns every mapped header in a fixed order.
func (m Mapping) sortedHeaders() []string {
	out := make([]string, 0, len(m))
	for h := range m {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// DetectColumns guesses the field of each header from the synonym table.
// Headers that match nothing are left out of the mapping.
func DetectColumns(headers []string) Mapping {
	m := make(Mapping)
	for _, h := range headers {
		if f, ok := detect(h); ok {
			m[h] = f
		}
	}
	return m
}

func detect(header string) (cases.Field, bool) {
	n := NormalizeHeader(header)
	if n == "" {
		return "", false
	}
	for _, s := range synonyms {
		if n == s.pattern || strings.Contains(n, s.pattern) {
			return s.field, true
		}
	}
	return "", false
}

// IdentityMapping maps the export header names to their fields.
func IdentityMapping() Mapping {
	m := make(Mapping, len(cases.Fields))
	for i, f := range cases.Fields {
		m[cases.ExportHeader[i]] = f
	}
	return m
}
