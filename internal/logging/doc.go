// Package logging provides structured logging for lotinsight.
//
// Logger wraps Zap with:
//   - a Trace level (-2, below Debug)
//   - stderr and optional OpenTelemetry output
//   - context fields (trace_id, span_id, user.id, request.id)
//   - masking of user-written reflection text
//   - per-level sampling (errors never sampled)
//
// Stdout carries CLI reports, so console logs always go to stderr.
//
// # Usage
//
//	cfg, err := logging.FromSection(appCfg.Logging)
//	if err != nil {
//	    return err
//	}
//	logger, err := logging.NewLogger(cfg, tel.LoggerProvider())
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithUserID(ctx, "u-42")
//	logger.Info(ctx, "patterns detected", zap.Int("insights", n))
//
// # Redaction
//
// Journal notes, answers and chat content must never reach a log sink.
// Values under the keys in DefaultRedactedFields are replaced with their
// rune length, and string values matching a redaction pattern (email
// addresses by default) are replaced whole. Use RedactedText when logging
// text under a key that is not in the list.
//
// # Testing
//
//	tl := logging.NewTestLogger()
//	svc, err := insight.NewService(reader, insight.WithLogger(tl.Logger))
//	...
//	tl.AssertLogged(t, zapcore.InfoLevel, "patterns detected")
//	tl.AssertNoText(t, journalBody)
package logging
