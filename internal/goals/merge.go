package goals

import (
	"math"
	"sort"
)

// mergeKeyRunes is how much of the title participates in the merge key.
const mergeKeyRunes = 20

// mergeKey identifies goals that describe the same pursuit.
func mergeKey(g Goal) string {
	title := []rune(g.Title)
	if len(title) > mergeKeyRunes {
		title = title[:mergeKeyRunes]
	}
	return string(g.Category) + "|" + string(title)
}

// Merge folds goals sharing a merge key into one. The first goal seen for a
// key keeps its ID and wording; evidence is unioned, confidence rises by
// mergeStep (never below either input), timestamps widen and markers are
// concatenated in time order. The higher-priority state wins.
//
// The result is ordered with Sort.
func Merge(goals []Goal) []Goal {
	order := make([]string, 0, len(goals))
	byKey := make(map[string]*Goal, len(goals))
	for _, g := range goals {
		key := mergeKey(g)
		existing, ok := byKey[key]
		if !ok {
			c := clone(g)
			byKey[key] = &c
			order = append(order, key)
			continue
		}
		mergeInto(existing, g)
	}

	merged := make([]Goal, 0, len(order))
	for _, key := range order {
		merged = append(merged, *byKey[key])
	}
	Sort(merged)
	return merged
}

func mergeInto(dst *Goal, src Goal) {
	dst.ExtractedFrom = unionTags(dst.ExtractedFrom, src.ExtractedFrom)
	dst.Confidence = bump(math.Max(dst.Confidence, src.Confidence), mergeStep, mergeCap)

	if !src.FirstDetected.IsZero() && (dst.FirstDetected.IsZero() || src.FirstDetected.Before(dst.FirstDetected)) {
		dst.FirstDetected = src.FirstDetected
	}
	if src.LastUpdated.After(dst.LastUpdated) {
		dst.LastUpdated = src.LastUpdated
	}
	if dst.Baseline == nil || (src.Baseline != nil && src.Baseline.DetectedAt.Before(dst.Baseline.DetectedAt)) {
		dst.Baseline = cloneBaseline(src.Baseline)
	}

	dst.ProgressMarkers = append(dst.ProgressMarkers, cloneMarkers(src.ProgressMarkers)...)
	sortMarkers(dst.ProgressMarkers)

	if src.State.Priority() > dst.State.Priority() {
		dst.State = src.State
	}
}

// Sort orders goals by state priority, then confidence (values within
// confidenceTie count as equal), then most recent update, then ID.
func Sort(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]
		if pa, pb := a.State.Priority(), b.State.Priority(); pa != pb {
			return pa > pb
		}
		if math.Abs(a.Confidence-b.Confidence) > confidenceTie {
			return a.Confidence > b.Confidence
		}
		if !a.LastUpdated.Equal(b.LastUpdated) {
			return a.LastUpdated.After(b.LastUpdated)
		}
		return a.ID < b.ID
	})
}

func clone(g Goal) Goal {
	c := g
	c.ExtractedFrom = append([]string{}, g.ExtractedFrom...)
	c.ProgressMarkers = cloneMarkers(g.ProgressMarkers)
	c.Baseline = cloneBaseline(g.Baseline)
	return c
}

func cloneMarkers(markers []Marker) []Marker {
	out := make([]Marker, 0, len(markers))
	for _, m := range markers {
		if m.Metric != nil {
			m.Metric = metricValue(*m.Metric)
		}
		out = append(out, m)
	}
	return out
}

func cloneBaseline(b *Baseline) *Baseline {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
