// Package pathogens is a read-only reference table of incubation periods for
// common outbreak pathogens. A Library is immutable once loaded and is passed
// to whatever needs it; curve.Config.WithPathogen accepts one as its
// incubation source.
package pathogens

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sw33tLie/epicurve/pkg/curve"
)

//go:embed pathogens.yaml
var builtin []byte

var ErrUnknown = errors.New("unknown pathogen")

// Pathogen is one reference entry. Incubation bounds are in hours.
type Pathogen struct {
	Key          string        `yaml:"key" json:"key"`
	Name         string        `yaml:"name" json:"name"`
	Category     string        `yaml:"category" json:"category"`
	MinHours     float64       `yaml:"incubation_min_hours" json:"incubationMinHours"`
	MaxHours     float64       `yaml:"incubation_max_hours" json:"incubationMaxHours"`
	Typical      string        `yaml:"typical" json:"typical"`
	Display      string        `yaml:"display" json:"display"`
	SuggestedBin curve.BinSize `yaml:"suggested_bin" json:"suggestedBin"`
}

type document struct {
	Pathogens []Pathogen `yaml:"pathogens"`
}

// Library is an immutable pathogen table.
type Library struct {
	list  []Pathogen
	byKey map[string]int
}

// Load parses a YAML document of the form {pathogens: [...]}. Entries without
// a valid suggested bin get one from curve.SuggestBinSize.
func Load(data []byte) (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pathogen table: %w", err)
	}

	lib := &Library{byKey: make(map[string]int, len(doc.Pathogens))}
	for _, p := range doc.Pathogens {
		k := strings.ToLower(p.Key)
		if k == "" {
			return nil, fmt.Errorf("pathogen %q has no key", p.Name)
		}
		if _, dup := lib.byKey[k]; dup {
			return nil, fmt.Errorf("duplicate pathogen key %q", p.Key)
		}
		if p.MinHours < 0 || p.MaxHours < p.MinHours {
			return nil, fmt.Errorf("pathogen %q: bad incubation range %v-%v", p.Key, p.MinHours, p.MaxHours)
		}
		if !p.SuggestedBin.Valid() {
			p.SuggestedBin = curve.SuggestBinSize(p.MinHours)
		}
		lib.byKey[k] = len(lib.list)
		lib.list = append(lib.list, p)
	}
	return lib, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the built-in table.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := Load(builtin)
		if err != nil {
			panic(err)
		}
		defaultLib = lib
	})
	return defaultLib
}

// Get looks a pathogen up by key, ignoring case.
func (l *Library) Get(key string) (Pathogen, error) {
	i, ok := l.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Pathogen{}, fmt.Errorf("%q: %w", key, ErrUnknown)
	}
	return l.list[i], nil
}

// Incubation implements curve.IncubationSource.
func (l *Library) Incubation(key string) (curve.Incubation, curve.BinSize, bool) {
	p, err := l.Get(key)
	if err != nil {
		return curve.Incubation{}, "", false
	}
	return curve.Incubation{MinHours: p.MinHours, MaxHours: p.MaxHours}, p.SuggestedBin, true
}

// All returns every pathogen in table order.
func (l *Library) All() []Pathogen {
	return append([]Pathogen(nil), l.list...)
}

// Len is the number of pathogens.
func (l *Library) Len() int {
	return len(l.list)
}

// Keys returns every key, sorted.
func (l *Library) Keys() []string {
	keys := make([]string, len(l.list))
	for i, p := range l.list {
		keys[i] = p.Key
	}
	sort.Strings(keys)
	return keys
}

// Categories returns the distinct categories, sorted.
func (l *Library) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range l.list {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory groups pathogens by category, each group in table order.
func (l *Library) ByCategory() map[string][]Pathogen {
	out := make(map[string][]Pathogen)
	for _, p := range l.list {
		out[p.Category] = append(out[p.Category], p)
	}
	return out
}

// Search returns the pathogens whose name or category contains query,
// ignoring case.
func (l *Library) Search(query string) []Pathogen {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Pathogen
	for _, p := range l.list {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}
