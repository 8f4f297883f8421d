package pathogens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/epicurve/pkg/curve"
)

func TestDefault(t *testing.T) {
	lib := Default()
	assert.Equal(t, 39, lib.Len())
	assert.Same(t, lib, Default())
	assert.Equal(t, []string{"Bacterial", "Parasitic", "Toxin", "Viral"}, lib.Categories())

	groups := lib.ByCategory()
	assert.Len(t, groups["Bacterial"], 11)
	assert.Len(t, groups["Viral"], 16)
	assert.Equal(t, "salmonella", groups["Bacterial"][0].Key)

	for _, p := range lib.All() {
		assert.True(t, p.SuggestedBin.Valid(), p.Key)
		assert.LessOrEqual(t, p.MinHours, p.MaxHours, p.Key)
	}
}

func TestGet(t *testing.T) {
	lib := Default()

	p, err := lib.Get("Norovirus")
	require.NoError(t, err)
	assert.Equal(t, 12.0, p.MinHours)
	assert.Equal(t, 48.0, p.MaxHours)
	assert.Equal(t, curve.Hour, p.SuggestedBin)

	p, err = lib.Get("hepatitisa")
	require.NoError(t, err)
	assert.Equal(t, "hepatitisA", p.Key)

	_, err = lib.Get("kryptonite")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestSearch(t *testing.T) {
	lib := Default()

	var names []string
	for _, p := range lib.Search("salmonella") {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Salmonella", "Salmonella Typhi (Typhoid)"}, names)

	assert.Len(t, lib.Search("TOXIN"), 6)
	assert.Empty(t, lib.Search("zzz"))
}

func TestKeysSorted(t *testing.T) {
	keys := Default().Keys()
	require.Len(t, keys, 39)
	assert.IsIncreasing(t, keys)
}

func TestIncubationSource(t *testing.T) {
	cfg := curve.Config{}.WithPathogen(Default(), "rabies")
	require.NotNil(t, cfg.Incubation)
	assert.Equal(t, curve.Incubation{MinHours: 504, MaxHours: 2160}, *cfg.Incubation)
	assert.Equal(t, curve.WeekCDC, cfg.BinSize)

	_, _, ok := Default().Incubation("nothing")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	lib, err := Load([]byte(`
pathogens:
  - key: test
    name: Test agent
    category: Bacterial
    incubation_min_hours: 20
    incubation_max_hours: 60
`))
	require.NoError(t, err)
	p, err := lib.Get("test")
	require.NoError(t, err)
	assert.Equal(t, curve.SixHour, p.SuggestedBin, "missing bin is derived from the minimum incubation")

	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "pathogens: [unclosed"},
		{"no key", "pathogens:\n  - name: x\n"},
		{"duplicate", "pathogens:\n  - key: a\n  - key: A\n"},
		{"inverted range", "pathogens:\n  - key: a\n    incubation_min_hours: 10\n    incubation_max_hours: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
