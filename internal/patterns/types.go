package patterns

// Type identifies the detector family that produced an insight.
type Type string

const (
	// TypeWeatherMood correlates emotional states with weather.
	TypeWeatherMood Type = "weather-mood"
	// TypeTemporal relates energy to time of day or week.
	TypeTemporal Type = "temporal"
	// TypeSocialEmotional relates emotional states to reaching out.
	TypeSocialEmotional Type = "social-emotional"
	// TypeStreak reports a run of identical emotional states.
	TypeStreak Type = "streak"
	// TypeBehavioral reports engagement with reflection prompts.
	TypeBehavioral Type = "behavioral"
)

// ValidTypes contains all valid insight types.
var ValidTypes = map[Type]bool{
	TypeWeatherMood:     true,
	TypeTemporal:        true,
	TypeSocialEmotional: true,
	TypeStreak:          true,
	TypeBehavioral:      true,
}

// Insight is a confidence-scored observation about the user's log.
type Insight struct {
	// Type is the detector family.
	Type Type `json:"type"`
	// Title is a one-line summary.
	Title string `json:"title"`
	// Description expands on the title.
	Description string `json:"description"`
	// Confidence in [0, 1].
	Confidence float64 `json:"confidence"`
	// DataPoints is the number of supporting observations.
	DataPoints int `json:"dataPoints"`
	// Metadata carries type-specific numbers (averages, ratios, hours).
	Metadata map[string]float64 `json:"metadata,omitempty"`
}

// Metadata keys.
const (
	MetaAvgTemperature = "avgTemperature"
	MetaAvgHumidity    = "avgHumidity"
	MetaSampleSize     = "sampleSize"
	MetaHour           = "hour"
	MetaWeekendShare   = "weekendShare"
	MetaWeekdayShare   = "weekdayShare"
	MetaStreakLength   = "streakLength"
	MetaFollowedRatio  = "followedRatio"
	MetaAnswersPerDay  = "answersPerDay"
	MetaSpanDays       = "spanDays"
)
