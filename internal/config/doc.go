// Package config loads lotinsight configuration.
//
// Configuration comes from three layers, highest precedence first:
//
//  1. Environment variables prefixed with LOTINSIGHT_
//  2. A YAML file (default ~/.config/lotinsight/config.yaml)
//  3. Built-in defaults
//
// Environment variables map onto keys by dropping the prefix and splitting
// on the first underscore:
//
//	LOTINSIGHT_ANALYSIS_MAX_INSIGHTS   -> analysis.max_insights
//	LOTINSIGHT_LOGGING_LEVEL           -> logging.level
//	LOTINSIGHT_TELEMETRY_ENDPOINT      -> telemetry.endpoint
//
// A minimal file:
//
//	analysis:
//	  max_insights: 5
//	  window_size: 200
//	  timezone: Europe/Berlin
//	logging:
//	  level: debug
//	  format: console
//	metrics:
//	  textfile: /var/lib/node_exporter/lotinsight.prom
package config
