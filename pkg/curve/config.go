package curve

import (
	"strings"
	"time"

	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/onset"
)

// ColorScheme selects the stack palette.
type ColorScheme string

const (
	// DefaultScheme uses a fixed colour per known category of the
	// stratification field.
	DefaultScheme    ColorScheme = "default"
	ColorblindScheme ColorScheme = "colorblind"
	GrayscaleScheme  ColorScheme = "grayscale"
)

// Axis labels used when a config leaves them empty.
const (
	DefaultXAxisLabel = "Date of Symptom Onset"
	DefaultYAxisLabel = "Number of Cases"
)

// NoStratification leaves every bin as a single stack.
const NoStratification = "none"

// Config drives binning and annotation. The zero value bins by day with no
// stratification.
type Config struct {
	BinSize     BinSize     `yaml:"bin_size" json:"binSize"`
	StratifyBy  cases.Field `yaml:"stratify_by" json:"stratifyBy"`
	ColorScheme ColorScheme `yaml:"color_scheme" json:"colorScheme"`

	Title      string `yaml:"title" json:"title"`
	XAxisLabel string `yaml:"x_axis_label" json:"xAxisLabel"`
	YAxisLabel string `yaml:"y_axis_label" json:"yAxisLabel"`

	ShowFirstCase bool        `yaml:"show_first_case" json:"showFirstCase"`
	Exposure      *Event      `yaml:"exposure,omitempty" json:"exposure,omitempty"`
	Interventions []Event     `yaml:"interventions,omitempty" json:"interventions,omitempty"`
	Incubation    *Incubation `yaml:"incubation,omitempty" json:"incubation,omitempty"`
}

// Event is a dated annotation such as an exposure or a control measure.
type Event struct {
	Date  string `yaml:"date" json:"date"`
	Time  string `yaml:"time,omitempty" json:"time,omitempty"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// Instant is the wall-clock moment of the event. A missing or unparseable
// time means midnight.
func (e Event) Instant() (time.Time, bool) {
	d, ok := onset.NormalizeDate(e.Date)
	if !ok {
		return time.Time{}, false
	}
	t, ok := onset.NormalizeTime(e.Time)
	if !ok {
		t = "00:00"
	}
	return onset.Combine(d, t)
}

// Incubation bounds in hours after exposure.
type Incubation struct {
	MinHours float64 `yaml:"min_hours" json:"minHours"`
	MaxHours float64 `yaml:"max_hours" json:"maxHours"`
}

// IncubationSource looks up a pathogen's incubation bounds and suggested bin
// size by key.
type IncubationSource interface {
	Incubation(key string) (Incubation, BinSize, bool)
}

// WithPathogen returns a copy of c with the incubation window and bin size of
// the pathogen named key. Unknown keys leave c unchanged.
func (c Config) WithPathogen(src IncubationSource, key string) Config {
	if src == nil {
		return c
	}
	inc, bin, ok := src.Incubation(key)
	if !ok {
		return c
	}
	c.Incubation = &inc
	if bin.Valid() {
		c.BinSize = bin
	} else {
		c.BinSize = SuggestBinSize(inc.MinHours)
	}
	return c
}

// Normalized substitutes defaults for malformed values: an unknown bin size
// becomes Day, an unknown or non-categorical stratification field becomes
// none and an unknown colour scheme becomes DefaultScheme.
func (c Config) Normalized() Config {
	c.BinSize, _ = ParseBinSize(string(c.BinSize))
	c.StratifyBy = normalizeStratify(c.StratifyBy)
	switch ColorScheme(strings.ToLower(string(c.ColorScheme))) {
	case ColorblindScheme:
		c.ColorScheme = ColorblindScheme
	case GrayscaleScheme:
		c.ColorScheme = GrayscaleScheme
	default:
		c.ColorScheme = DefaultScheme
	}
	return c
}

func normalizeStratify(f cases.Field) cases.Field {
	s := strings.TrimSpace(string(f))
	for _, field := range cases.Fields {
		if strings.EqualFold(s, string(field)) && field.Stratifiable() {
			return field
		}
	}
	// accept the export spelling too
	if strings.EqualFold(s, "age_group") {
		return cases.FieldAgeGroup
	}
	return ""
}

// Stratified reports whether bins are split into categories.
func (c Config) Stratified() bool {
	return c.Normalized().StratifyBy != ""
}

// ExampleConfig is the chart configuration of the bundled example outbreak.
func ExampleConfig() Config {
	return Config{
		Title:         "Example: Wedding Reception Outbreak (Salmonella)",
		BinSize:       SixHour,
		StratifyBy:    cases.FieldClassification,
		ColorScheme:   DefaultScheme,
		XAxisLabel:    DefaultXAxisLabel,
		YAxisLabel:    DefaultYAxisLabel,
		ShowFirstCase: true,
		Exposure: &Event{
			Date:  "2024-01-14",
			Time:  "19:00",
			Label: "Wedding reception dinner",
		},
		Incubation: &Incubation{MinHours: 6, MaxHours: 72},
	}
}
