// Package classify maps free text to closed sets of tags.
//
// All keyword knowledge used by goal extraction lives here, behind the
// Classifier interface, so a real classifier can replace the keyword tables
// without touching merge or lifecycle logic.
//
// Tags are grouped into families, each a closed enum with a lookup table
// indexed by the enum value:
//   - Intention: declared intentions (presence, boundaries, rest, ...)
//   - Phrase: goal-intent phrasing ("want to", "trying to", ...) with a base confidence
//   - Theme: journal themes mapped to a goal catalog ("less anxious", "sleep better", ...)
//   - Practice: practice domains mentioned in reflection answers (meditation, ...)
//
// Table lengths are pinned to the enum size, so adding an enum value without
// a pattern fails to compile.
package classify
