package patterns

import (
	"fmt"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// DetectWeatherMood correlates emotional states with temperature and humidity.
//
// Check-ins carrying both a state and a temperature are grouped by state.
// Each state with enough samples yields a mean-temperature insight, and a
// separate humidity insight when its mean humidity is notably high or low.
func DetectWeatherMood(entries []eventlog.Entry) []Insight {
	var withTemp []stateSample
	for _, s := range stateSamples(entries) {
		if s.entry.Context.Temperature != nil {
			withTemp = append(withTemp, s)
		}
	}

	insights := make([]Insight, 0)
	groups := groupByState(withTemp)
	for _, state := range sortedKeys(groups) {
		samples := groups[state]
		if len(samples) < minStateSamples {
			continue
		}

		temps := make([]float64, 0, len(samples))
		var humidities []float64
		for _, s := range samples {
			temps = append(temps, *s.entry.Context.Temperature)
			if h := s.entry.Context.Humidity; h != nil {
				humidities = append(humidities, *h)
			}
		}

		avgTemp := mean(temps)
		insights = append(insights, Insight{
			Type:        TypeWeatherMood,
			Title:       fmt.Sprintf("%s around %.0f°C", capitalize(state), avgTemp),
			Description: fmt.Sprintf("You tend to feel %s when it is about %.1f°C outside.", state, avgTemp),
			Confidence:  clamp(scaled(len(samples), weatherDivisor, weatherCap)),
			DataPoints:  len(samples),
			Metadata: map[string]float64{
				MetaAvgTemperature: avgTemp,
				MetaSampleSize:     float64(len(samples)),
			},
		})

		if len(humidities) < minStateSamples {
			continue
		}
		avgHumidity := mean(humidities)
		var condition string
		switch {
		case avgHumidity > humidHumidity:
			condition = "humid"
		case avgHumidity < dryHumidity:
			condition = "dry"
		default:
			continue
		}
		insights = append(insights, Insight{
			Type:        TypeWeatherMood,
			Title:       fmt.Sprintf("%s on %s days", capitalize(state), condition),
			Description: fmt.Sprintf("Feeling %s often comes with %s air (about %.0f%% humidity).", state, condition, avgHumidity),
			Confidence:  clamp(scaled(len(humidities), weatherDivisor, humidityCap)),
			DataPoints:  len(humidities),
			Metadata: map[string]float64{
				MetaAvgHumidity: avgHumidity,
				MetaSampleSize:  float64(len(humidities)),
			},
		})
	}
	return insights
}
