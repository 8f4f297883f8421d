// Package curve groups case onsets into calendar-aligned intervals and
// assembles everything a renderer needs to draw the epidemic curve.
package curve

import (
	"sort"
	"time"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

const (
	// All is the single stack of an unstratified bin.
	All = "all"
	// Unspecified collects cases with an empty stratification value.
	Unspecified = "unspecified"
)

// Bin is one half-open interval [Start, End) of the curve.
type Bin struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Total  int       `json:"total"`
	Stacks []Stack   `json:"stacks"`
}

// Stack is the count of one category within a bin.
type Stack struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Bins partitions the dated records into contiguous intervals of cfg's bin
// size. The sequence starts one empty interval before the first case and
// ends one empty interval after the interval of the last case. Records
// without an onset are ignored; no dated records means no bins.
func Bins(records []cases.Record, cfg Config) []Bin {
	cfg = cfg.Normalized()
	dated := datedRecords(records)
	if len(dated) == 0 {
		return nil
	}

	first, last := dated[0].Onset, dated[0].Onset
	for _, r := range dated[1:] {
		if r.Onset.Before(first) {
			first = r.Onset
		}
		if r.Onset.After(last) {
			last = r.Onset
		}
	}

	size := cfg.BinSize
	start := size.Add(size.Floor(first), -1)
	end := size.Add(size.Floor(last), 2)

	var bins []Bin
	for s := start; s.Before(end); s = size.Add(s, 1) {
		bins = append(bins, Bin{Start: s, End: size.Add(s, 1)})
	}

	categories := categories(dated, cfg.StratifyBy)
	counts := make([]map[string]int, len(bins))
	for _, r := range dated {
		i := sort.Search(len(bins), func(i int) bool { return bins[i].End.After(r.Onset) })
		bins[i].Total++
		if counts[i] == nil {
			counts[i] = make(map[string]int)
		}
		counts[i][stackKey(r, cfg.StratifyBy)]++
	}

	for i := range bins {
		if bins[i].Total == 0 {
			continue
		}
		for _, c := range categories {
			if n := counts[i][c]; n > 0 {
				bins[i].Stacks = append(bins[i].Stacks, Stack{Category: c, Count: n})
			}
		}
	}
	return bins
}

// Categories is the stacking order shared by every bin: the sorted non-empty
// values of the stratification field across all dated records, followed by
// Unspecified when some record has no value. Unstratified configs have the
// single category All.
func Categories(records []cases.Record, cfg Config) []string {
	return categories(datedRecords(records), cfg.Normalized().StratifyBy)
}

func categories(dated []cases.Record, field cases.Field) []string {
	if field == "" {
		return []string{All}
	}
	var (
		out         []string
		seen        = make(map[string]bool)
		unspecified bool
	)
	for _, r := range dated {
		v := r.Value(field)
		switch {
		case v == "":
			unspecified = true
		case !seen[v]:
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	if unspecified && !seen[Unspecified] {
		out = append(out, Unspecified)
	}
	return out
}

func stackKey(r cases.Record, field cases.Field) string {
	if field == "" {
		return All
	}
	if v := r.Value(field); v != "" {
		return v
	}
	return Unspecified
}

func datedRecords(records []cases.Record) []cases.Record {
	out := make([]cases.Record, 0, len(records))
	for _, r := range records {
		if r.HasOnset() {
			out = append(out, r)
		}
	}
	return out
}
