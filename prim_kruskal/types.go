// Package prim_kruskal defines the arena graph, configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGraph indicates that MST algorithms were handed a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrRootOutOfRange indicates that the Prim start vertex is not in 0..n−1.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrVertexOutOfRange indicates an edge endpoint outside 0..n−1.
var ErrVertexOutOfRange = errors.New("prim_kruskal: vertex out of range")

// ErrLoopNotAllowed indicates a self-loop; a spanning tree never contains one.
var ErrLoopNotAllowed = errors.New("prim_kruskal: self-loop not allowed")

// ErrBadWeight indicates a NaN or infinite edge weight.
var ErrBadWeight = errors.New("prim_kruskal: weight must be finite")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected, weighted connection stored in the graph arena.
type Edge struct {
	// ID is the insertion index of the edge; it doubles as the tie-breaker.
	ID int

	// From and To are the endpoints as inserted.
	From, To int

	// Weight is the edge cost.
	Weight float64
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Graph is an undirected multigraph over vertices 0..n−1 with edges kept in
// insertion order. It is not safe for concurrent mutation; build it on one
// goroutine, then read freely.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int // adj[v] = IDs of edges incident to v, in insertion order
}

// NewGraph returns an empty graph on n vertices. Negative n is treated as 0.
func NewGraph(n int) *Graph {
	n = max(n, 0)

	return &Graph{n: n, adj: make([][]int, n)}
}

// AddEdge inserts an undirected edge and returns its ID.
//
// Errors:
//   - ErrVertexOutOfRange if from or to is not a vertex.
//   - ErrLoopNotAllowed if from == to.
//   - ErrBadWeight if w is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w float64) (int, error) {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrVertexOutOfRange)
	}
	if from == to {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrBadWeight)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: w})
	g.adj[from] = append(g.adj[from], id)
	g.adj[to] = append(g.adj[to], id)

	return id, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Edges returns a copy of all edges in ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Incident returns the IDs of edges touching v, in insertion order.
// The slice is owned by the graph; do not modify it.
func (g *Graph) Incident(v int) []int { return g.adj[v] }

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method (string): one of MethodPrim or MethodKruskal.
//	Root (int): start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}

// Compute selects and runs the MST algorithm based on the given options.
//
//	– If Method == MethodKruskal: calls Kruskal(graph).
//	– If Method == MethodPrim:    calls Prim(graph, Root).
//	– Otherwise:                  returns ErrInvalidGraph.
func Compute(graph *Graph, opts ...Option) ([]Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrInvalidGraph)
	}
}
