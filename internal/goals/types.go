package goals

import (
	"time"
)

// Category is the life area a goal belongs to.
type Category string

const (
	CategoryEmotional   Category = "emotional"
	CategoryRelational  Category = "relational"
	CategoryBehavioral  Category = "behavioral"
	CategoryGrowth      Category = "growth"
	CategoryPhysical    Category = "physical"
	CategoryCreative    Category = "creative"
	CategoryExistential Category = "existential"
)

// Categories is the fixed taxonomy in suggestion order.
var Categories = []Category{
	CategoryEmotional,
	CategoryRelational,
	CategoryBehavioral,
	CategoryGrowth,
	CategoryPhysical,
	CategoryCreative,
	CategoryExistential,
}

// ValidCategories contains all valid goal categories.
var ValidCategories = map[Category]bool{
	CategoryEmotional:   true,
	CategoryRelational:  true,
	CategoryBehavioral:  true,
	CategoryGrowth:      true,
	CategoryPhysical:    true,
	CategoryCreative:    true,
	CategoryExistential: true,
}

// State is a goal's lifecycle state.
type State string

const (
	StateEmerging    State = "emerging"
	StateActive      State = "active"
	StateProgressing State = "progressing"
	StatePlateaued   State = "plateaued"
	StateAchieved    State = "achieved"
	StateAbandoned   State = "abandoned"
)

// States lists every lifecycle state.
var States = []State{
	StateEmerging,
	StateActive,
	StateProgressing,
	StatePlateaued,
	StateAchieved,
	StateAbandoned,
}

// Priority orders states for display; higher sorts first.
func (s State) Priority() int {
	switch s {
	case StateProgressing:
		return 4
	case StateActive:
		return 3
	case StateEmerging:
		return 2
	case StatePlateaued:
		return 1
	default:
		return 0
	}
}

// JourneyStage is a qualitative progress marker.
type JourneyStage string

const (
	StageBeginning    JourneyStage = "beginning"
	StageStruggle     JourneyStage = "struggle"
	StageBreakthrough JourneyStage = "breakthrough"
	StageIntegration  JourneyStage = "integration"
	StageMastery      JourneyStage = "mastery"
)

// Baseline records where the user started.
type Baseline struct {
	Description string    `json:"description"`
	DetectedAt  time.Time `json:"detectedAt"`
}

// Marker is a piece of progress evidence.
type Marker struct {
	Description string    `json:"description"`
	DetectedAt  time.Time `json:"detectedAt"`
	// Metric is an optional 0-100 progress measure.
	Metric *float64 `json:"metric,omitempty"`
}

// Goal is a structured hypothesis about something the user is pursuing.
type Goal struct {
	// ID is a stable key derived from the extraction source.
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	State       State    `json:"state"`
	// Confidence in [0, 1]; never lowered by merging.
	Confidence float64 `json:"confidence"`
	// ExtractedFrom is the sorted, deduplicated set of evidence tags.
	ExtractedFrom []string  `json:"extractedFrom"`
	FirstDetected time.Time `json:"firstDetected"`
	LastUpdated   time.Time `json:"lastUpdated"`
	Baseline      *Baseline `json:"baseline,omitempty"`
	// ProgressMarkers are ordered by DetectedAt.
	ProgressMarkers []Marker     `json:"progressMarkers"`
	JourneyStage    JourneyStage `json:"journeyStage"`
	Narrative       string       `json:"narrative"`
}

// MaxMetric returns the largest marker metric, or false when no marker has one.
func (g Goal) MaxMetric() (float64, bool) {
	var best float64
	var found bool
	for _, m := range g.ProgressMarkers {
		if m.Metric == nil {
			continue
		}
		if !found || *m.Metric > best {
			best = *m.Metric
			found = true
		}
	}
	return best, found
}

// Narrative is the templated story of a user's progression.
type Narrative struct {
	CurrentChapter string `json:"currentChapter"`
	StoryArc       string `json:"storyArc"`
	NextMilestone  string `json:"nextMilestone"`
}

// Progression is the derived aggregate over a user's goals.
type Progression struct {
	Goals               []Goal    `json:"goals"`
	MonthsTracked       int       `json:"monthsTracked"`
	PrimaryGoal         *Goal     `json:"primaryGoal"`
	RecentBreakthroughs []Goal    `json:"recentBreakthroughs"`
	NextFocus           string    `json:"nextFocus"`
	Narrative           Narrative `json:"narrative"`
}
