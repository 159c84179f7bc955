// SPDX-License-Identifier: MIT

package vine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Builder selects vine structures with a fixed configuration. It holds no
// per-call state and is safe for concurrent use if its Fitter, TauFunc and
// WarningHook are.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder configured by opts on top of DefaultOptions.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: buildOptions(opts)}
}

// Options returns a copy of the builder's configuration.
func (b *Builder) Options() Options { return b.opts }

// Select is a shorthand for NewBuilder(opts...).Select(ctx, data).
func Select(ctx context.Context, data mat.Matrix, opts ...Option) (*Structure, error) {
	return NewBuilder(opts...).Select(ctx, data)
}

// Select fits the structure of a regular vine to data, an n×d matrix of
// pseudo-observations in (0,1).
//
// Starting from BaseTree, every level promotes the previous edges to
// vertices, evaluates the admissible candidate edges, keeps a maximum-|tau|
// spanning tree and fits a pair model on each kept edge. h-functions of those
// models feed the next level; the previous level's data is released once it
// has been consumed. The last tree's models are fitted but its h-functions
// are only computed with WithKeepPseudoObs.
//
// The result has exactly d−1 trees. On error no partial structure is
// returned.
//
// Errors:
//   - *InputError (errors.Is ErrInput) for invalid data.
//   - *StructuralError (errors.Is ErrStructural) if a level cannot be spanned.
//   - ErrFit wrapping the fitter's error.
//   - ctx.Err() wrapped with the level on cancellation.
//
// Complexity: O(d³·n log n) for tau evaluation over all levels.
func (b *Builder) Select(ctx context.Context, data mat.Matrix) (s *Structure, err error) {
	var (
		start = time.Now()
		o     = b.opts
		n, d  int
	)
	if data != nil {
		n, d = data.Dims()
	}
	logger := o.Logger.WithDimension(d)

	ctx, span := o.Tracer.Start(ctx, opSelect, trace.WithAttributes(
		attribute.Int("vine.dimension", d),
		attribute.Int("vine.observations", n),
	))
	defer span.End()

	defer func() {
		elapsed := time.Since(start)
		o.Metrics.RecordSelect(d, elapsed, err)
		logger.LogSelect(ctx, n, elapsed, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s = nil
		}
	}()

	base, err := BaseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSelect, err)
	}

	s = &Structure{Dim: d, N: n, Trees: make([]Tree, 0, d-1)}
	prev := base
	for level := 0; level < d-1; level++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", opSelect, level, err)
		}

		var (
			t     *Tree
			warns []NumericWarning
		)
		t, warns, err = b.level(ctx, logger, prev, level == d-2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSelect, err)
		}

		for i := range prev.Edges {
			prev.Edges[i].H1, prev.Edges[i].H2 = nil, nil
		}
		for i := range t.Vertices {
			t.Vertices[i].release()
		}

		for _, w := range warns {
			logger.LogWarning(ctx, w)
			o.Metrics.RecordWarning(w.Level)
			if o.WarningHook != nil {
				o.WarningHook(w)
			}
		}
		s.Warnings = append(s.Warnings, warns...)

		s.Trees = append(s.Trees, *t)
		prev = &s.Trees[level]
	}

	return s, nil
}

// level builds, selects and fits the tree that follows prev.
func (b *Builder) level(ctx context.Context, logger *Logger, prev *Tree, last bool) (*Tree, []NumericWarning, error) {
	start := time.Now()
	o := b.opts
	t := Promote(prev)

	ctx, span := o.Tracer.Start(ctx, "vine.level", trace.WithAttributes(
		attribute.Int("vine.level", t.Level),
		attribute.Int("vine.vertices", len(t.Vertices)),
	))
	defer span.End()

	fail := func(err error) (*Tree, []NumericWarning, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, err
	}

	cands, warns, err := candidates(ctx, t, o)
	if err != nil {
		return fail(err)
	}
	if err = SelectTree(t, cands, o.Method); err != nil {
		return fail(err)
	}
	if err = b.fit(ctx, t, !last || o.KeepPseudoObs); err != nil {
		return fail(err)
	}

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("vine.candidates", len(cands)),
		attribute.Int("vine.warnings", len(warns)),
	)
	o.Metrics.RecordLevel(t.Level, len(cands), len(t.Edges), elapsed)
	logger.LogLevel(ctx, t.Level, len(t.Vertices), len(cands), len(t.Edges), elapsed, o.Trace)

	return t, warns, nil
}

// fit fits the pair model of every edge of t concurrently and, if withH is
// set, stores the h-functions on the edge.
func (b *Builder) fit(ctx context.Context, t *Tree, withH bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.workers())

	for i := range t.Edges {
		e := &t.Edges[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u0, u1 := PairData(t, e.From, e.To, CommonNeighbor(t, e.From, e.To))
			m, err := b.opts.Fitter.Fit(u0, u1, e.Tau)
			if err != nil {
				return fmt.Errorf("%s: level %d edge (%d,%d): %w: %w", opFit, t.Level, e.From, e.To, ErrFit, err)
			}
			e.Model = m
			if withH {
				e.H1 = m.HFunc1(u0, u1)
				e.H2 = m.HFunc2(u0, u1)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: level %d: %w", opFit, t.Level, ctx.Err())
		}
		return err
	}

	return nil
}
