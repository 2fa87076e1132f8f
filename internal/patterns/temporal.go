package patterns

import (
	"fmt"
	"time"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// DetectTemporal finds when the user's energy peaks.
//
// Check-ins are bucketed by local hour and by weekend versus weekday. The hour
// with the most high-energy states yields a peak-hour insight (earliest hour
// wins ties). A wide gap in high-energy share between weekends and weekdays
// yields a comparative insight.
func DetectTemporal(entries []eventlog.Entry) []Insight {
	insights := make([]Insight, 0)
	samples := stateSamples(entries)
	if len(samples) < minTemporalCheckIns {
		return insights
	}

	var byHour [24]int
	var weekendTotal, weekendHigh, weekdayTotal, weekdayHigh int
	for _, s := range samples {
		local := s.entry.LocalTime()
		high := isHighEnergy(s.state)
		if high {
			byHour[local.Hour()]++
		}
		if isWeekend(local) {
			weekendTotal++
			if high {
				weekendHigh++
			}
		} else {
			weekdayTotal++
			if high {
				weekdayHigh++
			}
		}
	}

	peakHour, peakCount := -1, 0
	for hour, count := range byHour {
		if count > peakCount {
			peakHour, peakCount = hour, count
		}
	}
	if peakHour >= 0 && peakCount >= minPeakHourSamples {
		insights = append(insights, Insight{
			Type:        TypeTemporal,
			Title:       fmt.Sprintf("Peak energy around %s", hourLabel(peakHour)),
			Description: fmt.Sprintf("Your most energized check-ins cluster around %s.", hourLabel(peakHour)),
			Confidence:  clamp(scaled(peakCount, peakHourDivisor, peakHourCap)),
			DataPoints:  peakCount,
			Metadata: map[string]float64{
				MetaHour:       float64(peakHour),
				MetaSampleSize: float64(peakCount),
			},
		})
	}

	if weekendTotal == 0 || weekdayTotal == 0 {
		return insights
	}
	weekendShare := float64(weekendHigh) / float64(weekendTotal)
	weekdayShare := float64(weekdayHigh) / float64(weekdayTotal)
	gap := weekendShare - weekdayShare
	if gap > weekendGap || -gap > weekendGap {
		more, less := "weekends", "weekdays"
		if gap < 0 {
			more, less = less, more
		}
		insights = append(insights, Insight{
			Type:        TypeTemporal,
			Title:       fmt.Sprintf("More energy on %s", more),
			Description: fmt.Sprintf("You report high energy more often on %s than on %s.", more, less),
			Confidence:  weekendConfidence,
			DataPoints:  len(samples),
			Metadata: map[string]float64{
				MetaWeekendShare: weekendShare,
				MetaWeekdayShare: weekdayShare,
			},
		})
	}
	return insights
}

func isWeekend(t time.Time) bool {
	d := t.Weekday()
	return d == time.Saturday || d == time.Sunday
}

func hourLabel(hour int) string {
	return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("3 PM")
}
