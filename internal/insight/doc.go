// Package insight is the read-side facade over the analytics core.
//
// Service loads a user's profile and newest log window from an
// eventlog.Reader, then runs pattern detection, goal extraction and
// progression aggregation. Each operation opens a span, records metrics and
// logs a summary without any of the user's own text.
//
//	svc, err := insight.NewService(reader,
//	    insight.WithLogger(logger),
//	    insight.WithTelemetry(tel),
//	    insight.WithMaxInsights(cfg.Analysis.MaxInsights),
//	)
//	if err != nil {
//	    return err
//	}
//	progression, err := svc.GenerateGoalProgression(ctx, "u-42")
//
// The core packages never fail. Errors from Service come only from the
// reader and wrap eventlog sentinels such as eventlog.ErrUserNotFound.
package insight
