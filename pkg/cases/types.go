// Package cases holds the canonical line-list model: case records, their
// categorical fields, the matchers that map free text onto those fields and
// the in-memory repository a session works against.
package cases

import "time"

// Classification is the case definition a record satisfies.
type Classification string

const (
	Confirmed Classification = "confirmed"
	Probable  Classification = "probable"
	Suspected Classification = "suspected"
)

// Sex of the case.
type Sex string

const (
	Male       Sex = "male"
	Female     Sex = "female"
	OtherSex   Sex = "other"
	UnknownSex Sex = "unknown"
)

// Outcome of the case at the time of reporting.
type Outcome string

const (
	Alive          Outcome = "alive"
	Deceased       Outcome = "deceased"
	UnknownOutcome Outcome = "unknown"
)

// AgeGroup is one of the fixed age bands used for stratification.
type AgeGroup string

const (
	Age0to4   AgeGroup = "0-4"
	Age5to14  AgeGroup = "5-14"
	Age15to24 AgeGroup = "15-24"
	Age25to44 AgeGroup = "25-44"
	Age45to64 AgeGroup = "45-64"
	Age65Plus AgeGroup = "65+"
)

// AgeGroups lists the bands youngest first.
var AgeGroups = []AgeGroup{Age0to4, Age5to14, Age15to24, Age25to44, Age45to64, Age65Plus}

// Field names a column of a case record.
type Field string

const (
	FieldID             Field = "id"
	FieldOnsetDate      Field = "onsetDate"
	FieldOnsetTime      Field = "onsetTime"
	FieldClassification Field = "classification"
	FieldAge            Field = "age"
	FieldAgeGroup       Field = "ageGroup"
	FieldSex            Field = "sex"
	FieldOutcome        Field = "outcome"
	FieldCustom         Field = "custom"
)

// Fields lists every record field in export column order.
var Fields = []Field{
	FieldID, FieldOnsetDate, FieldOnsetTime, FieldClassification,
	FieldAge, FieldAgeGroup, FieldSex, FieldOutcome, FieldCustom,
}

// Stratifiable reports whether f can subdivide an epidemic curve.
func (f Field) Stratifiable() bool {
	switch f {
	case FieldClassification, FieldSex, FieldAgeGroup, FieldOutcome, FieldCustom:
		return true
	}
	return false
}

// Input is a case as entered by a user or produced by an importer. Only
// OnsetDate is required; everything else may be left zero.
type Input struct {
	ID             string
	OnsetDate      string
	OnsetTime      string
	Classification Classification
	Age            *float64
	AgeGroup       AgeGroup
	Sex            Sex
	Outcome        Outcome
	Custom         string
}

// Record is a case stored in a Repository. Records are never edited in place;
// callers remove and re-add instead.
type Record struct {
	ID string
	// OnsetDate is the normalized YYYY-MM-DD date, or the text as supplied
	// when it could not be normalized.
	OnsetDate string
	// OnsetTime is HH:MM, empty when absent or unparseable.
	OnsetTime string
	// Onset is the wall-clock instant derived from OnsetDate and OnsetTime
	// when the record was added. Zero when the date did not parse.
	Onset          time.Time
	Classification Classification
	Age            *float64
	AgeGroup       AgeGroup
	Sex            Sex
	Outcome        Outcome
	Custom         string
}

// HasOnset reports whether the record has a usable onset instant. Records
// without one are listed but never binned or counted in date statistics.
func (r Record) HasOnset() bool {
	return !r.Onset.IsZero()
}

// Value returns the string form of a record field, empty when unset.
func (r Record) Value(f Field) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldOnsetDate:
		return r.OnsetDate
	case FieldOnsetTime:
		return r.OnsetTime
	case FieldClassification:
		return string(r.Classification)
	case FieldAge:
		return FormatAge(r.Age)
	case FieldAgeGroup:
		return string(r.AgeGroup)
	case FieldSex:
		return string(r.Sex)
	case FieldOutcome:
		return string(r.Outcome)
	case FieldCustom:
		return r.Custom
	}
	return ""
}
