// Package workflow drives the per-file processing loop shared by both
// pipelines: scan, probe, decide, and conditionally invoke the encoder.
//
// Processing is strictly sequential and file-local. Every per-file failure is
// converted into a counter increment plus a log line at the file boundary; a
// single bad file never aborts the run.
package workflow
