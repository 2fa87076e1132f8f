package goals

import "math"

// Confidence arithmetic. These values are heuristic and tuned for
// behavioral compatibility; change them together with the tests.
const (
	// intentionConfidence is used for explicitly declared intentions.
	intentionConfidence = 0.95

	// journalMinPhrase is the weakest goal-intent phrasing that still counts.
	journalMinPhrase = 0.7
	// journalRepeatStep is added per repeat mention of the same journal goal.
	journalRepeatStep = 0.05
	// journalCap bounds repeat bumps.
	journalCap = 0.98

	// mergeStep is added when two extractors agree on a goal.
	mergeStep = 0.1
	// mergeCap bounds merge bumps.
	mergeCap = 0.99
	// confidenceTie treats confidences this close as equal when ordering.
	confidenceTie = 0.1
)

// Count-scaled confidences: min(base + step*n, limit).
var (
	selfCareScale  = linear{base: 0.6, step: 0.05, limit: 0.9}
	awarenessScale = linear{base: 0.5, step: 0.02, limit: 0.85}
	structureScale = linear{base: 0.5, step: 0.05, limit: 0.85}
	anxietyScale   = linear{base: 0.5, step: 0.05, limit: 0.9}
	vitalityScale  = linear{base: 0.5, step: 0.05, limit: 0.85}
	memoryScale    = linear{base: 0.6, step: 0.05, limit: 0.9}
)

type linear struct {
	base, step, limit float64
}

func (l linear) at(n int) float64 {
	return clamp(math.Min(l.base+l.step*float64(n), l.limit))
}

// bump adds step to c without exceeding limit. A value already above limit
// is kept, so bumping never lowers confidence.
func bump(c, step, limit float64) float64 {
	if c >= limit {
		return c
	}
	return math.Min(c+step, limit)
}

// clamp bounds v to [0, 1].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// selfCareMetric maps distinct days of self-care to a 0-100 metric.
func selfCareMetric(days int) float64 {
	return math.Min(float64(days)/30*100, 100)
}
