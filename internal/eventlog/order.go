package eventlog

import (
	"sort"
	"time"
)

// Chronological returns a copy of entries ordered oldest first.
// Equal timestamps are ordered by ID so the result does not depend on the
// order the store returned them in.
func Chronological(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// OfKind returns the entries of the given kind, preserving order.
func OfKind(entries []Entry, kind Kind) []Entry {
	out := make([]Entry, 0)
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Newest returns at most n of the newest entries, ordered oldest first.
// n <= 0 returns all entries.
func Newest(entries []Entry, n int) []Entry {
	sorted := Chronological(entries)
	if n <= 0 || len(sorted) <= n {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// Oldest returns the earliest CreatedAt across entries, or the zero time.
func Oldest(entries []Entry) time.Time {
	var oldest time.Time
	for i, e := range entries {
		if i == 0 || e.CreatedAt.Before(oldest) {
			oldest = e.CreatedAt
		}
	}
	return oldest
}

// DistinctDays counts the distinct UTC calendar days covered by entries.
func DistinctDays(entries []Entry) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

// LocalTime returns the entry time in the entry's recorded timezone.
// Unknown or empty timezones fall back to UTC.
func (e Entry) LocalTime() time.Time {
	if e.Context.Timezone != "" {
		if loc, err := time.LoadLocation(e.Context.Timezone); err == nil {
			return e.CreatedAt.In(loc)
		}
	}
	return e.CreatedAt.UTC()
}
