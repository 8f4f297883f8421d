package cases

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sw33tLie/epicurve/pkg/onset"
)

// Observer is notified after every mutating repository call.
//
// Notifications are delivered synchronously, in subscription order, on the
// goroutine that mutated the repository. An observer must not mutate the
// repository from inside CasesChanged; the resulting state and notification
// order are undefined.
type Observer interface {
	CasesChanged(cases []Record)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(cases []Record)

// CasesChanged calls f(cases).
func (f ObserverFunc) CasesChanged(cases []Record) { f(cases) }

type subscription struct {
	id       int
	observer Observer
}

// Repository is the in-memory case store for one session. It is not safe
// for concurrent use: the owning session serializes all calls.
type Repository struct {
	cases     []Record
	nextID    int
	observers []subscription
	nextSub   int
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Subscribe registers o and returns a function that removes it again.
func (r *Repository) Subscribe(o Observer) (unsubscribe func()) {
	r.nextSub++
	id := r.nextSub
	r.observers = append(r.observers, subscription{id: id, observer: o})
	return func() {
		for i, s := range r.observers {
			if s.id == id {
				r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

func (r *Repository) notify() {
	if len(r.observers) == 0 {
		return
	}
	snapshot := r.All()
	// Copy so an unsubscribe inside a callback does not skip a neighbour.
	subs := append([]subscription(nil), r.observers...)
	for _, s := range subs {
		s.observer.CasesChanged(snapshot)
	}
}

// Add stores a case, assigning an ID and the derived onset instant and age
// group when they are missing, and notifies observers once.
//
// A supplied ID that collides with an existing case is kept as-is.
func (r *Repository) Add(in Input) Record {
	rec := r.insert(in)
	r.sort()
	r.notify()
	return rec
}

// AddMany stores every input and notifies observers once for the whole batch.
func (r *Repository) AddMany(ins []Input) []Record {
	if len(ins) == 0 {
		return nil
	}
	out := make([]Record, 0, len(ins))
	for _, in := range ins {
		out = append(out, r.insert(in))
	}
	r.sort()
	r.notify()
	return out
}

// Remove deletes every case with the given ID and returns how many were
// removed. Observers are notified even when nothing matched.
func (r *Repository) Remove(id string) int {
	kept := r.cases[:0]
	removed := 0
	for _, c := range r.cases {
		if c.ID == id {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.cases = kept
	r.notify()
	return removed
}

// Clear drops every case and restarts generated IDs at CASE-0001.
func (r *Repository) Clear() {
	r.cases = nil
	r.nextID = 1
	r.notify()
}

// All returns a copy of the cases in onset order.
func (r *Repository) All() []Record {
	out := make([]Record, len(r.cases))
	copy(out, r.cases)
	return out
}

// Len returns the number of stored cases.
func (r *Repository) Len() int {
	return len(r.cases)
}

func (r *Repository) insert(in Input) Record {
	rec := NewRecord(in)
	if rec.ID == "" {
		rec.ID = r.generateID()
	}
	r.cases = append(r.cases, rec)
	return rec
}

// generateID returns the next CASE-%04d identifier not currently in use.
func (r *Repository) generateID() string {
	inUse := make(map[string]struct{}, len(r.cases))
	for _, c := range r.cases {
		inUse[c.ID] = struct{}{}
	}
	for {
		id := fmt.Sprintf("CASE-%04d", r.nextID)
		r.nextID++
		if _, taken := inUse[id]; !taken {
			return id
		}
	}
}

// sort orders dated cases by onset ascending and places undated cases after
// them. The sort is stable, so ties keep insertion order.
func (r *Repository) sort() {
	sort.SliceStable(r.cases, func(i, j int) bool {
		a, b := r.cases[i], r.cases[j]
		switch {
		case a.HasOnset() && b.HasOnset():
			return a.Onset.Before(b.Onset)
		case a.HasOnset():
			return true
		default:
			return false
		}
	})
}

// NewRecord normalizes an input into a record without storing it. The ID is
// left empty when the input has none.
func NewRecord(in Input) Record {
	rec := Record{
		ID:        strings.TrimSpace(in.ID),
		OnsetDate: strings.TrimSpace(in.OnsetDate),
		Custom:    strings.TrimSpace(in.Custom),
	}

	if d, ok := onset.NormalizeDate(in.OnsetDate); ok {
		rec.OnsetDate = d
	}
	if t, ok := onset.NormalizeTime(in.OnsetTime); ok {
		rec.OnsetTime = t
	}
	if at, ok := onset.Combine(rec.OnsetDate, rec.OnsetTime); ok {
		rec.Onset = at
	}

	rec.Classification = NormalizeClassification(string(in.Classification))

	if in.Age != nil && *in.Age >= 0 {
		age := *in.Age
		rec.Age = &age
	}
	if g, ok := MatchAgeGroup(string(in.AgeGroup)); ok {
		rec.AgeGroup = g
	} else {
		rec.AgeGroup = AgeGroupFor(rec.Age)
	}

	if s, ok := MatchSex(string(in.Sex)); ok {
		rec.Sex = s
	}
	if o, ok := MatchOutcome(string(in.Outcome)); ok {
		rec.Outcome = o
	}
	return rec
}
