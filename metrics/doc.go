// SPDX-License-Identifier: MIT

// Package metrics collects operational metrics of vine structure selection.
//
// The vine builder reports through the Collector interface:
//
//	RecordLevel    once per vine tree: candidate edges, selected edges, time
//	RecordWarning  once per numeric warning (degenerate tau)
//	RecordSelect   once per Select call, with its outcome
//
// Three implementations are provided:
//
//	Noop        discards everything (the default)
//	Basic       lock-free in-memory counters, read with Stats
//	Prometheus  counters and histograms registered on a prometheus.Registerer
//
// All implementations are safe for concurrent use.
package metrics
