package goals

import (
	"fmt"
	"strings"
)

// stageStory describes each journey stage for narratives.
var stageStory = map[JourneyStage]struct {
	chapter   string
	milestone string
}{
	StageBeginning:    {"just getting started", "Log a first small step toward %s."},
	StageStruggle:     {"in the thick of it", "Keep showing up for %s, even on hard days."},
	StageBreakthrough: {"starting to see real change", "Turn %s into a steady rhythm."},
	StageIntegration:  {"making it part of everyday life", "Notice how %s shapes the rest of your week."},
	StageMastery:      {"living it", "Share what %s has taught you, or pick the next horizon."},
}

// goalNarrative renders a short, deterministic sentence for one goal.
func goalNarrative(g Goal) string {
	story, ok := stageStory[g.JourneyStage]
	if !ok {
		story = stageStory[StageBeginning]
	}
	switch g.State {
	case StateAchieved:
		return fmt.Sprintf("%s: you have made this your own.", g.Title)
	case StateAbandoned:
		return fmt.Sprintf("%s: set aside for now. It can be picked back up any time.", g.Title)
	case StatePlateaued:
		return fmt.Sprintf("%s: things have gone quiet lately.", g.Title)
	default:
		return fmt.Sprintf("%s: %s.", g.Title, story.chapter)
	}
}

// progressionNarrative renders the chapter, arc and next milestone.
func progressionNarrative(months int, archetype string, primary *Goal) Narrative {
	if archetype == "" {
		archetype = "explorer"
	}
	archetype = strings.ToLower(archetype)

	var arc string
	switch months {
	case 0:
		arc = fmt.Sprintf("A new %s, at the very start of the journey.", archetype)
	case 1:
		arc = fmt.Sprintf("One month in as a %s.", archetype)
	default:
		arc = fmt.Sprintf("%d months in as a %s.", months, archetype)
	}

	if primary == nil {
		return Narrative{
			CurrentChapter: "Gathering the first pages of your story.",
			StoryArc:       arc,
			NextMilestone:  "Check in a few times this week to see what emerges.",
		}
	}

	story, ok := stageStory[primary.JourneyStage]
	if !ok {
		story = stageStory[StageBeginning]
	}
	title := strings.ToLower(primary.Title)
	return Narrative{
		CurrentChapter: fmt.Sprintf("With %s, you are %s.", title, story.chapter),
		StoryArc:       arc,
		NextMilestone:  fmt.Sprintf(story.milestone, title),
	}
}
