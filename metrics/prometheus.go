// SPDX-License-Identifier: MIT

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of vinecop_select_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Prometheus exports metrics through client_golang.
type Prometheus struct {
	selectTotal     *prometheus.CounterVec
	selectDuration  prometheus.Histogram
	levelDuration   *prometheus.HistogramVec
	levelCandidates prometheus.Histogram
	warningsTotal   *prometheus.CounterVec
}

var _ Collector = (*Prometheus)(nil)

// NewPrometheus registers the vinecop metrics on reg. A nil reg registers
// on prometheus.DefaultRegisterer. Registering twice on the same registry
// panics, as with promauto.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Prometheus{
		selectTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vinecop_select_total",
			Help: "Vine structure selections by result",
		}, []string{"result"}),
		selectDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vinecop_select_duration_seconds",
			Help:    "Vine structure selection duration",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		levelDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vinecop_level_duration_seconds",
			Help:    "Duration of one vine tree (candidates, selection, fitting)",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"level"}),
		levelCandidates: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vinecop_level_candidates",
			Help:    "Admissible candidate edges per vine tree",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		warningsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vinecop_numeric_warnings_total",
			Help: "Numeric warnings by vine tree level",
		}, []string{"level"}),
	}
}

// RecordLevel implements Collector.
func (p *Prometheus) RecordLevel(level, candidates, _ int, duration time.Duration) {
	p.levelDuration.WithLabelValues(strconv.Itoa(level)).Observe(duration.Seconds())
	p.levelCandidates.Observe(float64(candidates))
}

// RecordWarning implements Collector.
func (p *Prometheus) RecordWarning(level int) {
	p.warningsTotal.WithLabelValues(strconv.Itoa(level)).Inc()
}

// RecordSelect implements Collector.
func (p *Prometheus) RecordSelect(_ int, duration time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	p.selectTotal.WithLabelValues(result).Inc()
	p.selectDuration.Observe(duration.Seconds())
}
