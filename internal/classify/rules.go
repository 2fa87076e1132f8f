package classify

import "regexp"

// All patterns are case-insensitive and anchored on word boundaries.

var intentionPatterns = [...]string{
	IntentionPresence:       `(?i)\b(?:presence|present|here\s+and\s+now|mindful(?:ness)?)\b`,
	IntentionBoundaries:     `(?i)\b(?:boundar(?:y|ies)|say(?:ing)?\s+no)\b`,
	IntentionRest:           `(?i)\b(?:rest|slow(?:ing)?\s+down|recharg(?:e|ing))\b`,
	IntentionSelfCompassion: `(?i)\b(?:self[-\s]?compassion|compassion|kind(?:er)?\s+to\s+myself|gentle\s+with\s+myself)\b`,
	IntentionCreativeFlow:   `(?i)\b(?:creative\s+flow|creativity|creative|flow)\b`,
	IntentionPeace:          `(?i)\b(?:peace(?:ful)?|serenity|inner\s+calm)\b`,
	IntentionAuthenticity:   `(?i)\b(?:authentic(?:ity)?|true\s+to\s+myself|genuine)\b`,
	IntentionConnection:     `(?i)\b(?:connect(?:ion|ed)?|closeness|belonging)\b`,
	IntentionPurpose:        `(?i)\b(?:purpose|meaning(?:ful)?|mission)\b`,
}

var _ [intentionCount]string = intentionPatterns

// phraseRules carries the base confidence of each goal-intent phrasing.
// Stronger commitments score higher.
var phraseRules = [...]struct {
	pattern    string
	confidence float64
}{
	PhraseWorkingOn: {`(?i)\bworking\s+on\b`, 0.9},
	PhraseTryingTo:  {`(?i)\btrying\s+to\b`, 0.85},
	PhraseWantTo:    {`(?i)\b(?:want|wanna)\s+to\b|\bwanna\b`, 0.8},
	PhraseHopeTo:    {`(?i)\bhop(?:e|ing)\s+to\b`, 0.75},
	PhraseNeedTo:    {`(?i)\bneed\s+to\b`, 0.7},
	PhraseWish:      {`(?i)\bwish(?:ed|ing)?\b`, 0.6},
	PhraseGoingTo:   {`(?i)\bgoing\s+to\b`, 0.55},
	PhraseShould:    {`(?i)\bshould\b`, 0.5},
}

var _ [phraseCount]struct {
	pattern    string
	confidence float64
} = phraseRules

var themePatterns = [...]string{
	ThemeCalm:         `(?i)\b(?:less\s+anxious|calmer|more\s+calm|less\s+stress(?:ed)?|stop\s+worrying|anxiety)\b`,
	ThemeSleep:        `(?i)\b(?:sleep\s+better|more\s+sleep|better\s+sleep|insomnia|go\s+to\s+bed\s+earlier)\b`,
	ThemeMovement:     `(?i)\b(?:exercise(?:\s+more)?|move\s+more|get\s+fit|work\s*out|running|more\s+active)\b`,
	ThemeConnection:   `(?i)\b(?:closer\s+to|more\s+friends|see\s+friends|call\s+my|less\s+lonely|reconnect)\b`,
	ThemeConfidence:   `(?i)\b(?:more\s+confident|believe\s+in\s+myself|self[-\s]?esteem|speak\s+up)\b`,
	ThemeFocus:        `(?i)\b(?:procrastinat\w*|stay\s+focused|more\s+focus(?:ed)?|build\s+a\s+routine|better\s+habits?)\b`,
	ThemeCreativity:   `(?i)\b(?:write\s+more|paint(?:ing)?|make\s+art|play\s+music|be\s+more\s+creative)\b`,
	ThemeMeaning:      `(?i)\b(?:find\s+(?:my\s+)?purpose|more\s+meaning|find\s+direction|what\s+matters)\b`,
	ThemeSelfKindness: `(?i)\b(?:kinder\s+to\s+myself|less\s+critical|self[-\s]?criticism|forgive\s+myself)\b`,
}

var _ [themeCount]string = themePatterns

var practicePatterns = [...]string{
	PracticeMeditation: `(?i)\b(?:meditat\w*|mindful\w*|breath(?:e|ing|work)?)\b`,
	PracticeGratitude:  `(?i)\b(?:gratitude|grateful|thankful)\b`,
	PracticeMovement:   `(?i)\b(?:walk(?:ing|s)?|yoga|run(?:ning)?|stretch(?:ing)?|exercis\w*)\b`,
	PracticeNature:     `(?i)\b(?:nature|outdoors|outside|forest|garden(?:ing)?|park)\b`,
	PracticeJournaling: `(?i)\b(?:journal(?:ing|ed)?|writing\s+down)\b`,
}

var _ [practiceCount]string = practicePatterns

// buildRules compiles every family's table in family order.
func buildRules() []*rule {
	rules := make([]*rule, 0, int(intentionCount)+int(phraseCount)+int(themeCount)+int(practiceCount))
	for i, p := range intentionPatterns {
		rules = append(rules, &rule{
			regex:      regexp.MustCompile(p),
			family:     FamilyIntention,
			tag:        newTag(FamilyIntention, intentionNames[i]),
			code:       uint8(i),
			confidence: 1.0,
		})
	}
	for i, p := range phraseRules {
		rules = append(rules, &rule{
			regex:      regexp.MustCompile(p.pattern),
			family:     FamilyPhrase,
			tag:        newTag(FamilyPhrase, phraseNames[i]),
			code:       uint8(i),
			confidence: p.confidence,
		})
	}
	for i, p := range themePatterns {
		rules = append(rules, &rule{
			regex:      regexp.MustCompile(p),
			family:     FamilyTheme,
			tag:        newTag(FamilyTheme, themeNames[i]),
			code:       uint8(i),
			confidence: 1.0,
		})
	}
	for i, p := range practicePatterns {
		rules = append(rules, &rule{
			regex:      regexp.MustCompile(p),
			family:     FamilyPractice,
			tag:        newTag(FamilyPractice, practiceNames[i]),
			code:       uint8(i),
			confidence: 1.0,
		})
	}
	return rules
}
