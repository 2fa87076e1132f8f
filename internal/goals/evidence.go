package goals

import (
	"sort"
	"time"
)

// Evidence tag prefixes.
const (
	evidenceIntention = "intention"
	evidenceJournal   = "journal"
	evidencePattern   = "pattern"
	evidenceCheckIns  = "checkins"
	evidenceMemory    = "memory"
)

func evidenceTag(source, key string) string {
	return source + ":" + key
}

func newGoal(id string, t goalTemplate, state State, confidence float64) *Goal {
	return &Goal{
		ID:              id,
		Category:        t.category,
		Title:           t.title,
		Description:     t.description,
		State:           state,
		Confidence:      clamp(confidence),
		ExtractedFrom:   []string{},
		ProgressMarkers: []Marker{},
		JourneyStage:    StageBeginning,
	}
}

// observe records one piece of evidence seen at the given time.
func (g *Goal) observe(tag string, at time.Time) {
	g.ExtractedFrom = unionTags(g.ExtractedFrom, []string{tag})
	if g.FirstDetected.IsZero() || at.Before(g.FirstDetected) {
		g.FirstDetected = at
	}
	if at.After(g.LastUpdated) {
		g.LastUpdated = at
	}
}

func (g *Goal) addMarker(description string, at time.Time, metric *float64) {
	g.ProgressMarkers = append(g.ProgressMarkers, Marker{
		Description: description,
		DetectedAt:  at,
		Metric:      metric,
	})
}

// unionTags returns the sorted, deduplicated union of a and b.
func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tag := range list {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// sortMarkers orders markers by detection time, stable for equal times.
func sortMarkers(markers []Marker) {
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].DetectedAt.Before(markers[j].DetectedAt)
	})
}

// collect flattens a goal map into a slice ordered by ID.
func collect(byID map[string]*Goal) []Goal {
	out := make([]Goal, 0, len(byID))
	for _, g := range byID {
		sortMarkers(g.ProgressMarkers)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func metricValue(v float64) *float64 { return &v }
