// Package eventlog defines the per-user life-event log consumed by the
// analysis packages.
//
// Entries are immutable snapshots supplied by an external event-log store.
// The analysis core never mutates them: helpers in this package return fresh
// slices and treat malformed or missing metadata as absent evidence.
//
// # Event kinds
//
// The closed set of kinds the analysis understands:
//   - KindCheckIn: a self-report of emotional state (metadata.emotionalState)
//   - KindNote: free-text journal note, optionally tagged as an intention
//   - KindChatMessage: a message sent in chat
//   - KindAnswer: an answered reflection prompt (metadata.question/answer/options)
//   - KindPlan: a planning action
//   - KindSelfCare: a completed self-care activity
//   - KindSettings: a settings change
//
// # Reading logs
//
// The Reader interface is the inbound boundary. FileReader loads an exported
// log (JSON or YAML) from disk:
//
//	r, err := eventlog.NewFileReader("export.json")
//	if err != nil {
//	    return err
//	}
//	entries, err := r.Entries(ctx, "user-1")
package eventlog
