package cases

import (
	"math"
	"strconv"
	"strings"
)

// keywordRule maps free text onto a canonical value. A value matches when it
// equals one of exact, or contains one of contains and none of excludes.
type keywordRule struct {
	value    string
	exact    []string
	contains []string
	excludes []string
}

func (r keywordRule) match(s string) bool {
	for _, e := range r.exact {
		if s == e {
			return true
		}
	}
	for _, x := range r.excludes {
		if strings.Contains(s, x) {
			return false
		}
	}
	for _, c := range r.contains {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

// Rule tables are ordered: the first matching rule wins.
var (
	classificationRules = []keywordRule{
		{value: string(Confirmed), contains: []string{"confirm"}},
		{value: string(Probable), contains: []string{"prob"}},
		{value: string(Suspected), contains: []string{"suspect", "poss"}},
	}

	sexRules = []keywordRule{
		{value: string(Male), exact: []string{"m"}, contains: []string{"male"}, excludes: []string{"female"}},
		{value: string(Female), exact: []string{"f"}, contains: []string{"female"}},
		{value: string(OtherSex), contains: []string{"other", "non"}},
		{value: string(UnknownSex), exact: []string{"u"}, contains: []string{"unknown"}},
	}

	outcomeRules = []keywordRule{
		{value: string(Alive), contains: []string{"alive", "recovered", "survived"}},
		{value: string(Deceased), contains: []string{"dead", "deceased", "died", "fatal"}},
		{value: string(UnknownOutcome), exact: []string{"u"}, contains: []string{"unknown"}},
	}
)

func matchRules(rules []keywordRule, text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	for _, r := range rules {
		if r.match(s) {
			return r.value, true
		}
	}
	return "", false
}

// MatchClassification maps free text such as "Lab-confirmed" or "possible"
// to a classification. Unrecognized text reports false.
func MatchClassification(text string) (Classification, bool) {
	v, ok := matchRules(classificationRules, text)
	return Classification(v), ok
}

// NormalizeClassification is MatchClassification with the Confirmed default
// applied to empty or unrecognized text.
func NormalizeClassification(text string) Classification {
	if c, ok := MatchClassification(text); ok {
		return c
	}
	return Confirmed
}

// MatchSex maps free text such as "M", "Female" or "non-binary" to a sex.
func MatchSex(text string) (Sex, bool) {
	v, ok := matchRules(sexRules, text)
	return Sex(v), ok
}

// MatchOutcome maps free text such as "recovered" or "died" to an outcome.
func MatchOutcome(text string) (Outcome, bool) {
	v, ok := matchRules(outcomeRules, text)
	return Outcome(v), ok
}

// MatchAgeGroup accepts one of the fixed band labels, ignoring spaces.
func MatchAgeGroup(text string) (AgeGroup, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(text), " ", "")
	for _, g := range AgeGroups {
		if s == string(g) {
			return g, true
		}
	}
	return "", false
}

// ParseAge reads a non-negative age in years.
func ParseAge(text string) (*float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

// FormatAge renders an age without trailing zeros; nil renders empty.
func FormatAge(age *float64) string {
	if age == nil {
		return ""
	}
	return strconv.FormatFloat(*age, 'f', -1, 64)
}

// AgeGroupFor derives the band for an age in whole years.
func AgeGroupFor(age *float64) AgeGroup {
	if age == nil || *age < 0 {
		return ""
	}
	years := int(math.Floor(*age))
	switch {
	case years < 5:
		return Age0to4
	case years < 15:
		return Age5to14
	case years < 25:
		return Age15to24
	case years < 45:
		return Age25to44
	case years < 65:
		return Age45to64
	}
	return Age65Plus
}
