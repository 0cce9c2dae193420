package ledger

import (
	"sort"
	"strings"
	"time"
)

// DefaultListSize is how many entries the default (no search) listing
// shows.
const DefaultListSize = 10

// DateRange is an inclusive calendar-day range. A zero bound leaves
// that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether both bounds are open.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the range. Comparison is by
// calendar date only; time-of-day is stripped from both sides, so a
// date equal to either bound is included.
func (r DateRange) Contains(t time.Time) bool {
	d := dayOf(t)
	if !r.Start.IsZero() && d.Before(dayOf(r.Start)) {
		return false
	}
	if !r.End.IsZero() && d.After(dayOf(r.End)) {
		return false
	}
	return true
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterByCategory keeps entries filed under the category.
func FilterByCategory(entries []Entry, category Category) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDate keeps entries whose date falls in the range. A zero
// range returns the input unchanged.
func FilterByDate(entries []Entry, r DateRange) []Entry {
	if r.IsZero() {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.EntryDate) {
			out = append(out, e)
		}
	}
	return out
}

// SortNewestFirst returns a copy sorted by entry date descending,
// tie-broken by creation instant descending.
func SortNewestFirst(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].EntryDate.Equal(sorted[j].EntryDate) {
			return sorted[i].EntryDate.After(sorted[j].EntryDate)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Search returns entries whose description contains the query,
// case-insensitively, newest first. It runs over the whole log
// regardless of category or date filters.
func Search(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range SortNewestFirst(entries) {
		if strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

// Recent returns the newest n entries.
func Recent(entries []Entry, n int) []Entry {
	sorted := SortNewestFirst(entries)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
