package cases

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestAddAssignsIDsAndDerivedFields(t *testing.T) {
	repo := NewRepository()
	age := 34.0

	rec := repo.Add(Input{OnsetDate: "1/15/2024", OnsetTime: "2:30 pm", Age: &age, Sex: "F"})

	assert.Equal(t, "CASE-0001", rec.ID)
	assert.Equal(t, "2024-01-15", rec.OnsetDate)
	assert.Equal(t, "14:30", rec.OnsetTime)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), rec.Onset)
	assert.Equal(t, Confirmed, rec.Classification)
	assert.Equal(t, Age25to44, rec.AgeGroup)
	assert.Equal(t, Female, rec.Sex)
	assert.Equal(t, Outcome(""), rec.Outcome)

	age = 99
	assert.Equal(t, 34.0, *rec.Age, "record keeps its own copy of the age")

	rec = repo.Add(Input{OnsetDate: "2024-01-16"})
	assert.Equal(t, "CASE-0002", rec.ID)
	assert.Equal(t, 12, rec.Onset.Hour(), "missing time defaults to noon")
	assert.Equal(t, "", rec.OnsetTime)
}

func TestAddKeepsSuppliedAgeGroup(t *testing.T) {
	repo := NewRepository()
	age := 70.0
	rec := repo.Add(Input{OnsetDate: "2024-01-15", Age: &age, AgeGroup: Age45to64})
	assert.Equal(t, Age45to64, rec.AgeGroup)
}

func TestRepositoryOrdering(t *testing.T) {
	repo := NewRepository()
	repo.Add(Input{ID: "late", OnsetDate: "2024-01-20"})
	repo.Add(Input{ID: "bad-1", OnsetDate: "not a date"})
	repo.Add(Input{ID: "early", OnsetDate: "2024-01-10"})
	repo.Add(Input{ID: "bad-2", OnsetDate: ""})
	repo.Add(Input{ID: "tie-a", OnsetDate: "2024-01-15", OnsetTime: "08:00"})
	repo.Add(Input{ID: "tie-b", OnsetDate: "2024-01-15", OnsetTime: "08:00"})

	assert.Equal(t, []string{"early", "tie-a", "tie-b", "late", "bad-1", "bad-2"}, ids(repo.All()))

	undated := repo.All()[4]
	assert.False(t, undated.HasOnset())
	assert.Equal(t, "not a date", undated.OnsetDate, "unparseable date is retained as supplied")
}

func TestDuplicateIDsAreAccepted(t *testing.T) {
	repo := NewRepository()
	repo.Add(Input{ID: "CASE-0001", OnsetDate: "2024-01-15"})
	repo.Add(Input{ID: "CASE-0001", OnsetDate: "2024-01-16"})
	assert.Equal(t, 2, repo.Len())

	// Generated IDs skip values already in use.
	rec := repo.Add(Input{OnsetDate: "2024-01-17"})
	assert.Equal(t, "CASE-0002", rec.ID)

	assert.Equal(t, 2, repo.Remove("CASE-0001"))
	assert.Equal(t, []string{"CASE-0002"}, ids(repo.All()))
}

func TestClearResetsIDs(t *testing.T) {
	repo := NewRepository()
	repo.AddMany([]Input{{OnsetDate: "2024-01-15"}, {OnsetDate: "2024-01-16"}})
	repo.Clear()
	assert.Equal(t, 0, repo.Len())

	rec := repo.Add(Input{OnsetDate: "2024-01-15"})
	assert.Equal(t, "CASE-0001", rec.ID)
}

func TestObserverNotifications(t *testing.T) {
	repo := NewRepository()

	var calls []int
	unsubscribe := repo.Subscribe(ObserverFunc(func(cs []Record) {
		calls = append(calls, len(cs))
	}))

	var order []string
	repo.Subscribe(ObserverFunc(func([]Record) { order = append(order, "second") }))

	repo.Add(Input{OnsetDate: "2024-01-15"})
	repo.AddMany([]Input{{OnsetDate: "2024-01-16"}, {OnsetDate: "2024-01-17"}})
	repo.Remove("missing")
	repo.Remove("CASE-0001")
	repo.Clear()

	assert.Equal(t, []int{1, 3, 3, 2, 0}, calls, "one notification per mutating call, AddMany batched")
	assert.Len(t, order, 5)

	unsubscribe()
	repo.Add(Input{OnsetDate: "2024-01-15"})
	assert.Len(t, calls, 5, "unsubscribed observer is not called")
	assert.Len(t, order, 6)

	repo.AddMany(nil)
	assert.Len(t, order, 6, "empty batch does not notify")
}

func TestObserverReceivesSnapshot(t *testing.T) {
	repo := NewRepository()
	var got []Record
	repo.Subscribe(ObserverFunc(func(cs []Record) { got = cs }))
	repo.Add(Input{ID: "a", OnsetDate: "2024-01-15"})

	got[0].ID = "mutated"
	assert.Equal(t, "a", repo.All()[0].ID)
}

func TestSummaryQueries(t *testing.T) {
	repo := NewRepository()
	repo.AddMany(ExampleInputs())
	repo.Add(Input{ID: "undated", OnsetDate: "??", Sex: "m"})

	first, last, ok := repo.DateRange()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 1, 18, 18, 0, 0, 0, time.UTC), last)

	fc, ok := repo.FirstCase()
	require.True(t, ok)
	assert.Equal(t, first, fc.Onset)

	assert.True(t, repo.HasTimeData())
	assert.Equal(t, []string{"Bride family", "Groom family", "Guest"}, repo.UniqueValues(FieldCustom))
	assert.Equal(t, []string{"confirmed", "probable", "suspected"}, repo.UniqueValues(FieldClassification))

	s := repo.Summary()
	assert.Equal(t, 29, s.Total)
	assert.Equal(t, 28, s.WithOnset)
	assert.Equal(t, 1, s.WithoutOnset)
	assert.Equal(t, 1, s.Deaths)
	assert.Equal(t, 4, s.ByClassification[Probable])
	assert.Equal(t, 3, s.ByClassification[Suspected])
	assert.Equal(t, 15, s.BySex[Male])
}

func TestEmptyRepositoryQueries(t *testing.T) {
	repo := NewRepository()
	_, _, ok := repo.DateRange()
	assert.False(t, ok)
	_, ok = repo.FirstCase()
	assert.False(t, ok)
	assert.False(t, repo.HasTimeData())
	assert.Equal(t, "", repo.ExportCSV())

	repo.Add(Input{OnsetDate: "garbage"})
	_, ok = repo.FirstCase()
	assert.False(t, ok)
}

func TestExportCSV(t *testing.T) {
	repo := NewRepository()
	age := 45.0
	repo.Add(Input{OnsetDate: "2024-01-15", OnsetTime: "14:30", Age: &age, Sex: "male", Outcome: "alive", Custom: `Ward "A", north`})
	repo.Add(Input{OnsetDate: "2024-01-16", Classification: "probable"})

	want := strings.Join([]string{
		"id,onset_date,onset_time,classification,age,age_group,sex,outcome,custom",
		`"CASE-0001","2024-01-15","14:30","confirmed","45","45-64","male","alive","Ward ""A"", north"`,
		`"CASE-0002","2024-01-16","","probable","","","","",""`,
	}, "\n")
	assert.Equal(t, want, repo.ExportCSV())
}

func TestTemplateHeaderMatchesExport(t *testing.T) {
	first := strings.SplitN(Template(), "\n", 2)[0]
	assert.Equal(t, strings.Join(ExportHeader, ","), first)
	assert.Len(t, strings.Split(Template(), "\n"), 4)
}
