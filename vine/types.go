// SPDX-License-Identifier: MIT

package vine

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/vinecop/bicop"
	"github.com/katalvlaran/vinecop/prim_kruskal"
)

// Operation tags used in wrapped errors.
const (
	opSelect     = "vine.Select"
	opBaseTree   = "vine.BaseTree"
	opCandidates = "vine.Candidates"
	opSelectTree = "vine.SelectTree"
	opFit        = "vine.fit"
	opValidate   = "vine.Validate"
)

// BaseLevel is the Level of the base star returned by BaseTree.
// Structure.Trees[k] has Level k.
const BaseLevel = -1

// NoPrevEdge is the PrevEdge of vertices that do not stem from an edge.
var NoPrevEdge = [2]int{-1, -1}

// Warning reasons.
const (
	// ReasonDegenerateTau: one side of the pair is constant (all ties).
	ReasonDegenerateTau = "degenerate tau: constant pseudo-observations"

	// ReasonNonFiniteTau: a custom tau function returned NaN or ±Inf.
	ReasonNonFiniteTau = "non-finite tau"
)

// Input errors. Every one of them also matches ErrInput.
var (
	// ErrInput matches every input validation error.
	ErrInput = errors.New("vine: invalid input")

	// ErrNilData indicates a nil data matrix.
	ErrNilData = errors.New("vine: nil data")

	// ErrTooFewVariables indicates fewer than two columns.
	ErrTooFewVariables = errors.New("vine: need at least two variables")

	// ErrTooFewObservations indicates fewer than two rows.
	ErrTooFewObservations = errors.New("vine: need at least two observations")

	// ErrNotFinite indicates a NaN or infinite entry.
	ErrNotFinite = errors.New("vine: non-finite value")

	// ErrOutOfUnitInterval indicates an entry outside the open interval (0,1).
	ErrOutOfUnitInterval = errors.New("vine: value outside (0, 1)")
)

var (
	// ErrStructural indicates that no spanning tree exists over the admissible
	// candidate edges of a level.
	ErrStructural = errors.New("vine: candidate graph is disconnected")

	// ErrFit indicates that the pair-model fitter failed on a selected edge.
	ErrFit = errors.New("vine: pair-model fit failed")

	// ErrInvalidStructure is returned by Structure.Validate.
	ErrInvalidStructure = errors.New("vine: invalid structure")
)

// InputError reports invalid input data. Row and Col locate the offending
// entry and are −1 when the error concerns the whole matrix.
type InputError struct {
	Row, Col int
	Value    float64
	Err      error
}

func (e *InputError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: row %d, column %d: %g", e.Err, e.Row, e.Col, e.Value)
}

// Unwrap makes errors.Is match both ErrInput and the specific sentinel.
func (e *InputError) Unwrap() []error { return []error{ErrInput, e.Err} }

func inputErr(err error) *InputError {
	return &InputError{Row: -1, Col: -1, Err: err}
}

// StructuralError reports a level whose candidate graph has no spanning tree.
type StructuralError struct {
	Level      int // tree level
	Vertices   int // vertices of the tree
	Candidates int // admissible candidate edges offered
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("vine: level %d: %d candidate edges do not span %d vertices", e.Level, e.Candidates, e.Vertices)
}

// Unwrap makes errors.Is match ErrStructural and prim_kruskal.ErrDisconnected.
func (e *StructuralError) Unwrap() []error {
	return []error{ErrStructural, prim_kruskal.ErrDisconnected}
}

// Vertex is a node of a vine tree. Apart from the base star, every vertex
// stems from one edge of the previous tree.
type Vertex struct {
	// H1 and H2 are the h-function outputs of the source edge. On Trees[0],
	// H1 is the data column and H2 is nil. Released after the level is fitted.
	H1, H2 []float64

	// PrevEdge holds the endpoints of the source edge in the previous tree,
	// or NoPrevEdge.
	PrevEdge [2]int

	// Conditioned and Conditioning are copied from the source edge.
	Conditioned  []int
	Conditioning []int

	all *roaring.Bitmap // conditioned ∪ conditioning, released with H1/H2
}

// Edge is a selected edge of a vine tree.
type Edge struct {
	// From and To index Tree.Vertices; From < To.
	From, To int

	// Conditioned holds the variable contributed by From, then the one
	// contributed by To. Empty on the base star.
	Conditioned []int

	// Conditioning is sorted ascending. On the base star it is {i}.
	Conditioning []int

	// Tau is the empirical Kendall's tau-b of the pair data.
	Tau float64

	// Weight is 1 − |Tau|, the cost minimized by the spanning tree.
	Weight float64

	// Model is the fitted pair copula; nil on the base star.
	Model bicop.Model

	// H1 = Model.HFunc1(u_From, u_To) and H2 = Model.HFunc2(u_From, u_To).
	// Kept until the next tree has been fitted.
	H1, H2 []float64
}

// Tree is one level of a vine: an arena of vertices and the selected edges
// between them, referenced by index.
type Tree struct {
	Level    int
	Vertices []Vertex
	Edges    []Edge
}

// Candidate is an admissible edge of a tree under construction.
type Candidate struct {
	// From < To index Tree.Vertices.
	From, To int

	// Common is the previous-tree vertex shared by the two source edges.
	Common int

	Tau    float64
	Weight float64

	Conditioned  []int
	Conditioning []int
}

// NumericWarning is a non-fatal numeric problem on a candidate pair.
type NumericWarning struct {
	Level  int
	Edge   [2]int
	Reason string
}

func (w NumericWarning) String() string {
	return fmt.Sprintf("level %d edge (%d,%d): %s", w.Level, w.Edge[0], w.Edge[1], w.Reason)
}

// Structure is a fitted regular vine on Dim variables.
type Structure struct {
	Dim int
	N   int

	// Trees has exactly Dim−1 entries; Trees[k] has Dim−k vertices and
	// Dim−k−1 edges.
	Trees []Tree

	// Warnings in level order, then candidate order.
	Warnings []NumericWarning
}

// Pair is a flattened view of one vine edge.
type Pair struct {
	Level        int
	Conditioned  [2]int
	Conditioning []int
	Tau          float64
	Model        bicop.Model
}

// Edges returns the edges of Trees[level], or nil if level is out of range.
func (s *Structure) Edges(level int) []Edge {
	if level < 0 || level >= len(s.Trees) {
		return nil
	}

	return s.Trees[level].Edges
}

// Pairs lists every edge as a Pair, tree by tree.
func (s *Structure) Pairs() []Pair {
	var out []Pair
	for _, t := range s.Trees {
		for _, e := range t.Edges {
			p := Pair{Level: t.Level, Conditioning: e.Conditioning, Tau: e.Tau, Model: e.Model}
			copy(p.Conditioned[:], e.Conditioned)
			out = append(out, p)
		}
	}

	return out
}
