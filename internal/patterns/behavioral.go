package patterns

import (
	"fmt"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// DetectBehavioral measures engagement with reflection prompts as answers per
// whole day between the first and last answer. Spans shorter than a day emit
// nothing.
func DetectBehavioral(entries []eventlog.Entry) []Insight {
	insights := make([]Insight, 0)
	answers := eventlog.Chronological(eventlog.OfKind(entries, eventlog.KindAnswer))
	if len(answers) < minAnswers {
		return insights
	}

	days := int(answers[len(answers)-1].CreatedAt.Sub(answers[0].CreatedAt).Hours() / 24)
	if days <= 0 {
		return insights
	}
	rate := float64(len(answers)) / float64(days)
	if rate <= engagedPerDay {
		return insights
	}
	return append(insights, Insight{
		Type:        TypeBehavioral,
		Title:       "Highly engaged with reflection",
		Description: fmt.Sprintf("You answer about %.1f reflection prompts a day.", rate),
		Confidence:  behavioralConfidence,
		DataPoints:  len(answers),
		Metadata: map[string]float64{
			MetaAnswersPerDay: rate,
			MetaSpanDays:      float64(days),
		},
	})
}
