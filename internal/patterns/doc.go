// Package patterns detects recurring behavioral and emotional patterns in a
// user's event log.
//
// Five detector families run independently over the same log:
//   - Weather-mood: emotional states that cluster around a temperature or humidity
//   - Temporal: the peak energy hour and weekend versus weekday energy
//   - Streak: the longest run of one repeated emotional state
//   - Social-emotional: states usually followed by reaching out in chat
//   - Behavioral: how often reflection prompts get answered
//
// Every detector gates on a minimum sample and emits nothing below it.
// Detect merges the outputs and ranks them by confidence.
//
// # Usage
//
//	insights := patterns.Detect(entries, patterns.DefaultMaxInsights)
//	for _, in := range insights {
//	    fmt.Printf("%s (%.2f)\n", in.Title, in.Confidence)
//	}
//
// Detection is pure: no I/O, no shared state, and identical inputs give
// identical output.
package patterns
