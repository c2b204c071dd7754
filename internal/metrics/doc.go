// Package metrics counts what the logger's sinks emit.
//
// Each sink (console, file) records one event per written record, keyed by
// level name, and one error per failed write. Counts are kept in memory for
// the lifetime of the logger and read through a point-in-time Snapshot:
//
//	m := metrics.NewMetrics()
//	m.RecordEvent("file", "info")
//	m.RecordSinkError("file")
//
//	snap := m.Snapshot()
//	snap.Sinks["file"].Events["info"] // 1
//
// The package is safe for concurrent use.
package metrics
