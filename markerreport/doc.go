// Package markerreport collects metadata markers attached to tests and
// aggregates them into a JSON report. Tests (or a TestMain) record markers
// on a Collector; the resulting report carries one entry per test plus
// per-marker totals. Report files are merged under a cross-process file
// lock so parallel test binaries can share one output file, and an optional
// SQLite history keeps per-run marker totals for trend tracking.
package markerreport
