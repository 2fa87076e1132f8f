// Package telemetry provides OpenTelemetry tracing and metrics for lotinsight.
//
// # Overview
//
// Telemetry owns a TracerProvider and a MeterProvider that export over OTLP
// (gRPC by default, or http/protobuf) to a collector. It is disabled by
// default: analysis runs are short-lived and most users have no collector.
//
// # Usage
//
//	cfg := telemetry.NewDefaultConfig()
//	cfg.Enabled = true
//	tel, err := telemetry.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(ctx)
//
//	tracer := tel.Tracer("lotinsight.insight")
//	ctx, span := tracer.Start(ctx, "insight.DetectPatterns")
//	defer span.End()
//
// # Error Handling
//
// Exporter setup failures never fail the caller. The instance is marked
// degraded and hands out no-op tracers and meters instead.
//
// # Testing
//
//	tt := telemetry.NewTestTelemetry()
//	svc := insight.NewService(reader, insight.WithTelemetry(tt.Telemetry))
//	...
//	tt.AssertSpanExists(t, "insight.ExtractGoals")
package telemetry
