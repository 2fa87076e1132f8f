package patterns

import "math"

// Minimum samples before a detector emits.
const (
	minStateSamples     = 3
	minTemporalCheckIns = 5
	minPeakHourSamples  = 2
	minStreakLength     = 3
	minAnswers          = 3
)

// Thresholds.
const (
	humidHumidity     = 70.0
	dryHumidity       = 40.0
	weekendGap        = 0.2
	socialFollowRatio = 0.6
	engagedPerDay     = 1.5
)

// Confidence shaping. Scaled confidences grow linearly with the sample count
// up to a cap; the rest are fixed.
const (
	weatherDivisor  = 10.0
	weatherCap      = 0.95
	humidityCap     = 0.85
	peakHourDivisor = 5.0
	peakHourCap     = 0.9
	socialDivisor   = 10.0
	socialCap       = 0.85

	weekendConfidence    = 0.75
	streakConfidence     = 0.95
	behavioralConfidence = 0.9
)

// scaled returns min(n/divisor, limit).
func scaled(n int, divisor, limit float64) float64 {
	return math.Min(float64(n)/divisor, limit)
}

// clamp bounds v to [0, 1].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
