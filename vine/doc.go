// SPDX-License-Identifier: MIT

// Package vine selects the structure of a regular vine copula.
//
// A regular vine on d variables is a sequence of d−1 trees. The vertices of
// each tree are the edges of the previous one, and two vertices may only be
// joined if their source edges share a vertex (the proximity condition).
// Every edge names a pair of variables (the conditioned set) and the
// variables they are conditioned on (the conditioning set).
//
// Select grows the trees greedily, level by level, following Dißmann's
// algorithm:
//
//	BaseTree    star over the d data columns (root d, edge i → column i)
//	Promote     edges of tree k become vertices of tree k+1
//	Candidates  every proximity-admissible pair, weighted by 1 − |tau|,
//	            evaluated concurrently
//	SelectTree  minimum spanning tree over the candidates (Kruskal or Prim)
//	fit         a pair copula per selected edge (bicop.Fitter) whose
//	            h-functions are the data of the next tree
//
// Trees are arenas: vertices and edges are referenced by index. Conditional
// pseudo-observations of a level are dropped once the next level has been
// built, so peak memory is two levels of data.
//
// Errors:
//
//	*InputError       invalid data (errors.Is(err, ErrInput))
//	*StructuralError  a level has no spanning tree (errors.Is(err, ErrStructural))
//	ErrFit            the pair-model fitter failed
//
// Numeric trouble on a single pair (a constant column, a non-finite custom
// tau) is not an error: the pair gets tau 0 and a NumericWarning is recorded
// in Structure.Warnings, logged, counted and passed to WithWarningHook.
//
// Observability:
//
// Logging goes through log/slog (WithLogger), metrics through a
// metrics.Collector (WithMetrics) and tracing through OpenTelemetry: one
// "vine.Select" span with a "vine.level" child per tree.
package vine
