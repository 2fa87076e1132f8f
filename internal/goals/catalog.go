package goals

import "github.com/lotcomputer/lotinsight/internal/classify"

// goalTemplate is the canonical category, title and description of a goal.
type goalTemplate struct {
	category    Category
	title       string
	description string
}

// intentionGoals maps every declared intention to its goal.
var intentionGoals = [...]goalTemplate{
	classify.IntentionPresence: {CategoryGrowth, "Cultivate presence",
		"Staying with the moment instead of rushing past it."},
	classify.IntentionBoundaries: {CategoryRelational, "Set healthy boundaries",
		"Protecting time and energy by saying no when it matters."},
	classify.IntentionRest: {CategoryPhysical, "Make room for rest",
		"Treating rest as part of the work, not a reward for it."},
	classify.IntentionSelfCompassion: {CategoryEmotional, "Practice self-compassion",
		"Meeting hard moments with kindness rather than judgment."},
	classify.IntentionCreativeFlow: {CategoryCreative, "Reconnect with creative flow",
		"Making space for play and making things."},
	classify.IntentionPeace: {CategoryEmotional, "Find inner peace",
		"Building a steadier, quieter inner life."},
	classify.IntentionAuthenticity: {CategoryExistential, "Live authentically",
		"Acting in line with who you are."},
	classify.IntentionConnection: {CategoryRelational, "Deepen connection",
		"Investing in the people who matter."},
	classify.IntentionPurpose: {CategoryExistential, "Live with purpose",
		"Orienting days around what feels meaningful."},
}

var _ [classify.NumIntentions]goalTemplate = intentionGoals

// themeGoals maps journal themes to the goal catalog.
var themeGoals = [...]goalTemplate{
	classify.ThemeCalm: {CategoryEmotional, "Reduce anxiety",
		"Finding more calm and less worry day to day."},
	classify.ThemeSleep: {CategoryPhysical, "Sleep better",
		"Getting more and better rest at night."},
	classify.ThemeMovement: {CategoryPhysical, "Move your body more",
		"Building regular movement into the week."},
	classify.ThemeConnection: {CategoryRelational, "Strengthen relationships",
		"Feeling closer to friends and family."},
	classify.ThemeConfidence: {CategoryGrowth, "Build self-confidence",
		"Trusting yourself and speaking up."},
	classify.ThemeFocus: {CategoryBehavioral, "Build steady habits",
		"Creating routines that make focus easier."},
	classify.ThemeCreativity: {CategoryCreative, "Make more creative work",
		"Writing, drawing or playing more often."},
	classify.ThemeMeaning: {CategoryExistential, "Find meaning and direction",
		"Getting clearer on what matters most."},
	classify.ThemeSelfKindness: {CategoryEmotional, "Be kinder to yourself",
		"Quieting the inner critic."},
}

var _ [classify.NumThemes]goalTemplate = themeGoals

// practiceGoals maps practice domains mentioned in answers to a
// practice-formation goal.
var practiceGoals = [...]goalTemplate{
	classify.PracticeMeditation: {CategoryGrowth, "Build a meditation practice",
		"Meditation keeps coming up in your reflections."},
	classify.PracticeGratitude: {CategoryEmotional, "Build a gratitude practice",
		"Gratitude is a recurring thread in your answers."},
	classify.PracticeMovement: {CategoryPhysical, "Build a movement practice",
		"Walking, stretching and moving show up again and again."},
	classify.PracticeNature: {CategoryGrowth, "Spend regular time in nature",
		"Time outdoors is a recurring source of energy."},
	classify.PracticeJournaling: {CategoryGrowth, "Build a journaling practice",
		"Writing things down is becoming a habit."},
}

var _ [classify.NumPractices]goalTemplate = practiceGoals

// Fixed goals produced from activity counts and check-in trends.
var (
	selfCareGoal = goalTemplate{CategoryBehavioral, "Consistent self-care",
		"Showing up for yourself on a regular rhythm."}
	awarenessGoal = goalTemplate{CategoryEmotional, "Emotional self-awareness",
		"Noticing and naming how you feel."}
	structureGoal = goalTemplate{CategoryBehavioral, "Intentional structure",
		"Planning days with intention."}
	anxietyGoal = goalTemplate{CategoryEmotional, "Reduce anxiety",
		"Finding more calm and less worry day to day."}
	vitalityGoal = goalTemplate{CategoryPhysical, "Increase vitality",
		"Feeling more energized and less worn out."}
)

// nextFocusByCategory suggests a first step in a category the user has not
// explored yet.
var nextFocusByCategory = map[Category]string{
	CategoryEmotional:   "Try naming one feeling each evening.",
	CategoryRelational:  "Reach out to someone you have been meaning to call.",
	CategoryBehavioral:  "Pick one small habit and attach it to your morning.",
	CategoryGrowth:      "Choose something you are curious about and spend ten minutes on it.",
	CategoryPhysical:    "Take a short walk after lunch this week.",
	CategoryCreative:    "Make something small, just for yourself.",
	CategoryExistential: "Write down what a meaningful week would look like.",
}
