package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchClassification(t *testing.T) {
	tests := []struct {
		input string
		want  Classification
		ok    bool
	}{
		{"confirmed", Confirmed, true},
		{"Lab-Confirmed", Confirmed, true},
		{"PROBABLE", Probable, true},
		{"prob.", Probable, true},
		{"suspected", Suspected, true},
		{"possible", Suspected, true},
		{"", "", false},
		{"case", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchClassification(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	assert.Equal(t, Confirmed, NormalizeClassification(""))
	assert.Equal(t, Confirmed, NormalizeClassification("index"))
	assert.Equal(t, Suspected, NormalizeClassification(" Suspect "))
}

func TestMatchSex(t *testing.T) {
	tests := []struct {
		input string
		want  Sex
		ok    bool
	}{
		{"M", Male, true},
		{"male", Male, true},
		{"Male ", Male, true},
		{"F", Female, true},
		{"female", Female, true},
		{"FEMALE", Female, true},
		{"non-binary", OtherSex, true},
		{"other", OtherSex, true},
		{"u", UnknownSex, true},
		{"Unknown", UnknownSex, true},
		{"x", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchSex(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestMatchOutcome(t *testing.T) {
	tests := []struct {
		input string
		want  Outcome
		ok    bool
	}{
		{"alive", Alive, true},
		{"Recovered", Alive, true},
		{"survived", Alive, true},
		{"dead", Deceased, true},
		{"Deceased", Deceased, true},
		{"died in hospital", Deceased, true},
		{"fatal", Deceased, true},
		{"U", UnknownOutcome, true},
		{"unknown", UnknownOutcome, true},
		{"hospitalised", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchOutcome(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestAgeGroupFor(t *testing.T) {
	age := func(v float64) *float64 { return &v }

	assert.Equal(t, AgeGroup(""), AgeGroupFor(nil))
	assert.Equal(t, AgeGroup(""), AgeGroupFor(age(-1)))
	assert.Equal(t, Age0to4, AgeGroupFor(age(0)))
	assert.Equal(t, Age0to4, AgeGroupFor(age(4.9)))
	assert.Equal(t, Age5to14, AgeGroupFor(age(5)))
	assert.Equal(t, Age15to24, AgeGroupFor(age(24)))
	assert.Equal(t, Age25to44, AgeGroupFor(age(25)))
	assert.Equal(t, Age45to64, AgeGroupFor(age(64)))
	assert.Equal(t, Age65Plus, AgeGroupFor(age(65)))
	assert.Equal(t, Age65Plus, AgeGroupFor(age(101)))
}

func TestParseAndFormatAge(t *testing.T) {
	a, ok := ParseAge(" 45 ")
	assert.True(t, ok)
	assert.Equal(t, "45", FormatAge(a))

	a, ok = ParseAge("0.5")
	assert.True(t, ok)
	assert.Equal(t, "0.5", FormatAge(a))

	_, ok = ParseAge("-3")
	assert.False(t, ok)
	_, ok = ParseAge("forty")
	assert.False(t, ok)
	_, ok = ParseAge("NaN")
	assert.False(t, ok)

	assert.Equal(t, "", FormatAge(nil))
}

func TestMatchAgeGroup(t *testing.T) {
	g, ok := MatchAgeGroup("25 - 44")
	assert.True(t, ok)
	assert.Equal(t, Age25to44, g)

	g, ok = MatchAgeGroup("65+")
	assert.True(t, ok)
	assert.Equal(t, Age65Plus, g)

	_, ok = MatchAgeGroup("adult")
	assert.False(t, ok)
}
