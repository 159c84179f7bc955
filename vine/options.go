// SPDX-License-Identifier: MIT

package vine

import (
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/vinecop/bicop"
	"github.com/katalvlaran/vinecop/metrics"
	"github.com/katalvlaran/vinecop/prim_kruskal"
)

// DefaultMethod is the spanning-tree algorithm used unless WithMethod is given.
const DefaultMethod = prim_kruskal.MethodKruskal

// DefaultFamily is the family fitted by the default pair-model fitter.
const DefaultFamily = bicop.Gaussian

// TracerName is the instrumentation name of the default tracer.
const TracerName = "github.com/katalvlaran/vinecop/vine"

// TauFunc computes a dependence measure in [−1, 1] for two equal-length
// samples. It must be safe for concurrent use.
type TauFunc func(x, y []float64) float64

// Options configures structure selection.
type Options struct {
	// Workers bounds the goroutines per level; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Trace logs every finished tree at Info instead of Debug.
	Trace bool

	// Method is prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
	Method string

	// Fitter fits the pair model of every selected edge.
	Fitter bicop.Fitter

	// TauFunc replaces Kendall's tau-b when non-nil.
	TauFunc TauFunc

	// Logger receives log events; never nil after DefaultOptions.
	Logger *Logger

	// Metrics receives operational metrics; never nil after DefaultOptions.
	Metrics metrics.Collector

	// WarningHook, if set, is called for every NumericWarning in order,
	// on the goroutine running Select.
	WarningHook func(NumericWarning)

	// KeepPseudoObs keeps H1/H2 on the edges of the last tree.
	KeepPseudoObs bool

	// Tracer starts the selection and per-level spans.
	Tracer trace.Tracer
}

// Option configures Options. Option constructors panic on values that can
// only be programmer errors.
type Option func(*Options)

// DefaultOptions returns Kruskal selection, a Gaussian tau-inversion fitter,
// GOMAXPROCS workers, a no-op logger and no-op metrics.
func DefaultOptions() Options {
	f, err := bicop.NewTauFitter(DefaultFamily)
	if err != nil {
		panic(err)
	}

	return Options{
		Method:  DefaultMethod,
		Fitter:  f,
		Logger:  NoopLogger(),
		Metrics: metrics.Noop{},
		Tracer:  otel.Tracer(TracerName),
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// WithWorkers bounds concurrency per level. 0 restores the default.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vine: WithWorkers(%d): must be >= 0", n))
	}

	return func(o *Options) { o.Workers = n }
}

// WithTrace logs every finished tree at Info.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithMethod selects the spanning-tree algorithm. Panics on an unknown method.
func WithMethod(m string) Option {
	if !prim_kruskal.ValidMethod(m) {
		panic(fmt.Sprintf("vine: WithMethod(%q): unknown method", m))
	}

	return func(o *Options) { o.Method = m }
}

// WithFitter sets the pair-model fitter. Panics if f is nil.
func WithFitter(f bicop.Fitter) Option {
	if f == nil {
		panic("vine: WithFitter(nil)")
	}

	return func(o *Options) { o.Fitter = f }
}

// WithTauFunc replaces Kendall's tau-b; nil restores it. Non-finite results
// raise a NumericWarning and count as 0; others are clamped into [−1, 1].
func WithTauFunc(f TauFunc) Option {
	return func(o *Options) { o.TauFunc = f }
}

// WithLogger logs through l. A nil l disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.Logger = NoopLogger()
			return
		}
		o.Logger = &Logger{Logger: l}
	}
}

// WithMetrics reports to c. A nil c disables metrics.
func WithMetrics(c metrics.Collector) Option {
	return func(o *Options) {
		if c == nil {
			c = metrics.Noop{}
		}
		o.Metrics = c
	}
}

// WithWarningHook calls fn for every NumericWarning.
func WithWarningHook(fn func(NumericWarning)) Option {
	return func(o *Options) { o.WarningHook = fn }
}

// WithKeepPseudoObs keeps H1/H2 on the edges of the last tree.
func WithKeepPseudoObs(on bool) Option {
	return func(o *Options) { o.KeepPseudoObs = on }
}

// WithTracerProvider takes the tracer from tp. A nil tp uses the global
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		o.Tracer = tp.Tracer(TracerName)
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
