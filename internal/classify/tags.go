package classify

import "fmt"

// Family groups tags that share a closed enum.
type Family string

const (
	// FamilyIntention tags declared intentions.
	FamilyIntention Family = "intention"
	// FamilyPhrase tags goal-intent phrasing.
	FamilyPhrase Family = "phrase"
	// FamilyTheme tags journal themes.
	FamilyTheme Family = "theme"
	// FamilyPractice tags practice domains.
	FamilyPractice Family = "practice"
)

// Tag is the stable string form of a classification hit, e.g. "intention/rest".
type Tag string

func newTag(f Family, name string) Tag {
	return Tag(fmt.Sprintf("%s/%s", f, name))
}

// Intention is the closed set of declared-intention keywords.
type Intention uint8

const (
	IntentionPresence Intention = iota
	IntentionBoundaries
	IntentionRest
	IntentionSelfCompassion
	IntentionCreativeFlow
	IntentionPeace
	IntentionAuthenticity
	IntentionConnection
	IntentionPurpose
	intentionCount
)

// NumIntentions is the size of the Intention set, for sizing lookup tables.
const NumIntentions = int(intentionCount)

var intentionNames = [...]string{
	IntentionPresence:       "presence",
	IntentionBoundaries:     "boundaries",
	IntentionRest:           "rest",
	IntentionSelfCompassion: "self_compassion",
	IntentionCreativeFlow:   "creative_flow",
	IntentionPeace:          "peace",
	IntentionAuthenticity:   "authenticity",
	IntentionConnection:     "connection",
	IntentionPurpose:        "purpose",
}

var _ [intentionCount]string = intentionNames

func (i Intention) String() string {
	if i >= intentionCount {
		return fmt.Sprintf("intention(%d)", uint8(i))
	}
	return intentionNames[i]
}

// Intentions returns every intention in declaration order.
func Intentions() []Intention {
	out := make([]Intention, intentionCount)
	for i := range out {
		out[i] = Intention(i)
	}
	return out
}

// Phrase is the closed set of goal-intent phrasings.
type Phrase uint8

const (
	PhraseWorkingOn Phrase = iota
	PhraseTryingTo
	PhraseWantTo
	PhraseHopeTo
	PhraseNeedTo
	PhraseWish
	PhraseGoingTo
	PhraseShould
	phraseCount
)

var phraseNames = [...]string{
	PhraseWorkingOn: "working_on",
	PhraseTryingTo:  "trying_to",
	PhraseWantTo:    "want_to",
	PhraseHopeTo:    "hope_to",
	PhraseNeedTo:    "need_to",
	PhraseWish:      "wish",
	PhraseGoingTo:   "going_to",
	PhraseShould:    "should",
}

var _ [phraseCount]string = phraseNames

func (p Phrase) String() string {
	if p >= phraseCount {
		return fmt.Sprintf("phrase(%d)", uint8(p))
	}
	return phraseNames[p]
}

// Theme is the closed set of journal themes.
type Theme uint8

const (
	ThemeCalm Theme = iota
	ThemeSleep
	ThemeMovement
	ThemeConnection
	ThemeConfidence
	ThemeFocus
	ThemeCreativity
	ThemeMeaning
	ThemeSelfKindness
	themeCount
)

// NumThemes is the size of the Theme set.
const NumThemes = int(themeCount)

var themeNames = [...]string{
	ThemeCalm:         "calm",
	ThemeSleep:        "sleep",
	ThemeMovement:     "movement",
	ThemeConnection:   "connection",
	ThemeConfidence:   "confidence",
	ThemeFocus:        "focus",
	ThemeCreativity:   "creativity",
	ThemeMeaning:      "meaning",
	ThemeSelfKindness: "self_kindness",
}

var _ [themeCount]string = themeNames

func (t Theme) String() string {
	if t >= themeCount {
		return fmt.Sprintf("theme(%d)", uint8(t))
	}
	return themeNames[t]
}

// Themes returns every theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, themeCount)
	for i := range out {
		out[i] = Theme(i)
	}
	return out
}

// Practice is the closed set of practice domains.
type Practice uint8

const (
	PracticeMeditation Practice = iota
	PracticeGratitude
	PracticeMovement
	PracticeNature
	PracticeJournaling
	practiceCount
)

// NumPractices is the size of the Practice set.
const NumPractices = int(practiceCount)

var practiceNames = [...]string{
	PracticeMeditation: "meditation",
	PracticeGratitude:  "gratitude",
	PracticeMovement:   "movement",
	PracticeNature:     "nature",
	PracticeJournaling: "journaling",
}

var _ [practiceCount]string = practiceNames

func (p Practice) String() string {
	if p >= practiceCount {
		return fmt.Sprintf("practice(%d)", uint8(p))
	}
	return practiceNames[p]
}

// Practices returns every practice in declaration order.
func Practices() []Practice {
	out := make([]Practice, practiceCount)
	for i := range out {
		out[i] = Practice(i)
	}
	return out
}
