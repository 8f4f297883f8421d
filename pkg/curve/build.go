package curve

import (
	"fmt"
	"time"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

// MarkerKind tells a renderer how to draw a vertical annotation.
type MarkerKind string

const (
	FirstCaseMarker    MarkerKind = "first-case"
	ExposureMarker     MarkerKind = "exposure"
	InterventionMarker MarkerKind = "intervention"
)

// Marker is a vertical annotation line.
type Marker struct {
	Kind  MarkerKind `json:"kind"`
	Label string     `json:"label"`
	At    time.Time  `json:"at"`
}

// Window is a shaded time range.
type Window struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LegendEntry pairs a category with its colour.
type LegendEntry struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Curve is the renderer contract: ordered gap-free bins, the shared category
// order with colours, per-bin axis labels and the annotations that fall
// inside the binned range.
type Curve struct {
	Config     Config        `json:"config"`
	Bins       []Bin         `json:"bins"`
	Labels     []string      `json:"labels"`
	Legend     []LegendEntry `json:"legend"`
	MaxTotal   int           `json:"maxTotal"`
	Markers    []Marker      `json:"markers,omitempty"`
	Incubation *Window       `json:"incubation,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (c Curve) Empty() bool {
	return len(c.Bins) == 0
}

// Color returns the colour of a stack by its category and position in the
// legend. Field palettes fall back to the colorblind palette for categories
// they do not know.
func Color(cfg Config, category string, index int) string {
	cfg = cfg.Normalized()
	switch cfg.ColorScheme {
	case ColorblindScheme:
		return colorblindPalette[index%len(colorblindPalette)]
	case GrayscaleScheme:
		return grayscalePalette[index%len(grayscalePalette)]
	}
	if cfg.StratifyBy == "" {
		return defaultColor
	}
	if c, ok := fieldPalettes[cfg.StratifyBy][category]; ok {
		return c
	}
	return colorblindPalette[index%len(colorblindPalette)]
}

// Build bins records and resolves colours, labels and annotations.
func Build(records []cases.Record, cfg Config) Curve {
	cfg = cfg.Normalized()
	if cfg.XAxisLabel == "" {
		cfg.XAxisLabel = DefaultXAxisLabel
	}
	if cfg.YAxisLabel == "" {
		cfg.YAxisLabel = DefaultYAxisLabel
	}

	c := Curve{
		Config: cfg,
		Bins:   Bins(records, cfg),
	}
	for i, cat := range Categories(records, cfg) {
		c.Legend = append(c.Legend, LegendEntry{Category: cat, Color: Color(cfg, cat, i)})
	}
	for _, b := range c.Bins {
		c.Labels = append(c.Labels, Label(cfg.BinSize, b.Start))
		if b.Total > c.MaxTotal {
			c.MaxTotal = b.Total
		}
	}
	if c.Empty() {
		return c
	}

	lo, hi := c.Bins[0].Start, c.Bins[len(c.Bins)-1].End
	inside := func(t time.Time) bool { return !t.Before(lo) && !t.After(hi) }

	if cfg.ShowFirstCase {
		if first, ok := earliest(records); ok && inside(first) {
			c.Markers = append(c.Markers, Marker{Kind: FirstCaseMarker, Label: "First case", At: first})
		}
	}

	var exposure time.Time
	if cfg.Exposure != nil {
		if at, ok := cfg.Exposure.Instant(); ok {
			exposure = at
			if inside(at) {
				c.Markers = append(c.Markers, Marker{Kind: ExposureMarker, Label: labelOr(cfg.Exposure.Label, "Exposure"), At: at})
			}
		}
	}
	for i, ev := range cfg.Interventions {
		at, ok := ev.Instant()
		if !ok || !inside(at) {
			continue
		}
		c.Markers = append(c.Markers, Marker{
			Kind:  InterventionMarker,
			Label: labelOr(ev.Label, fmt.Sprintf("Intervention %d", i+1)),
			At:    at,
		})
	}

	if cfg.Incubation != nil && !exposure.IsZero() {
		start := exposure.Add(hours(cfg.Incubation.MinHours))
		end := exposure.Add(hours(cfg.Incubation.MaxHours))
		if start.Before(lo) {
			start = lo
		}
		if end.After(hi) {
			end = hi
		}
		if start.Before(end) {
			c.Incubation = &Window{Label: "Expected incubation period", Start: start, End: end}
		}
	}
	return c
}

func earliest(records []cases.Record) (time.Time, bool) {
	var first time.Time
	for _, r := range records {
		if r.HasOnset() && (first.IsZero() || r.Onset.Before(first)) {
			first = r.Onset
		}
	}
	return first, !first.IsZero()
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
