package cases

import (
	"sort"
	"time"
)

// UniqueValues returns the distinct non-empty values of f, sorted.
func (r *Repository) UniqueValues(f Field) []string {
	return UniqueValues(r.cases, f)
}

// UniqueValues returns the distinct non-empty values of f across records,
// sorted ascending.
func UniqueValues(records []Record, f Field) []string {
	seen := make(map[string]struct{})
	for _, c := range records {
		if v := c.Value(f); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DateRange returns the earliest and latest onset instants. ok is false when
// no case has a usable onset.
func (r *Repository) DateRange() (first, last time.Time, ok bool) {
	for _, c := range r.cases {
		if !c.HasOnset() {
			continue
		}
		if !ok || c.Onset.Before(first) {
			first = c.Onset
		}
		if !ok || c.Onset.After(last) {
			last = c.Onset
		}
		ok = true
	}
	return first, last, ok
}

// FirstCase returns the case with the earliest onset.
func (r *Repository) FirstCase() (Record, bool) {
	// Dated cases sort first, so the head is the earliest if it is dated.
	if len(r.cases) == 0 || !r.cases[0].HasOnset() {
		return Record{}, false
	}
	return r.cases[0], true
}

// HasTimeData reports whether any case carries an onset time.
func (r *Repository) HasTimeData() bool {
	for _, c := range r.cases {
		if c.OnsetTime != "" {
			return true
		}
	}
	return false
}

// Summary aggregates the counts shown alongside a curve.
type Summary struct {
	Total            int
	WithOnset        int
	WithoutOnset     int
	Deaths           int
	First            time.Time
	Last             time.Time
	ByClassification map[Classification]int
	BySex            map[Sex]int
	ByOutcome        map[Outcome]int
	ByAgeGroup       map[AgeGroup]int
}

// Summary computes aggregate counts over the stored cases.
func (r *Repository) Summary() Summary {
	s := Summary{
		Total:            len(r.cases),
		ByClassification: make(map[Classification]int),
		BySex:            make(map[Sex]int),
		ByOutcome:        make(map[Outcome]int),
		ByAgeGroup:       make(map[AgeGroup]int),
	}
	for _, c := range r.cases {
		if c.HasOnset() {
			s.WithOnset++
		} else {
			s.WithoutOnset++
		}
		s.ByClassification[c.Classification]++
		if c.Sex != "" {
			s.BySex[c.Sex]++
		}
		if c.Outcome != "" {
			s.ByOutcome[c.Outcome]++
		}
		if c.AgeGroup != "" {
			s.ByAgeGroup[c.AgeGroup]++
		}
		if c.Outcome == Deceased {
			s.Deaths++
		}
	}
	s.First, s.Last, _ = r.DateRange()
	return s
}
