// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted, index-based *Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     Vine structure selection scores every admissible pair with weight 1−|tau|. A minimum spanning
//     tree for that weight is a maximum spanning tree for the total |tau|, so the strongest pairwise
//     dependencies are modeled first.
//
// Graph model
//
//	Vertices are the integers 0..n−1 and edges live in an arena: Edge.ID is the position of the edge in
//	insertion order. There are no string IDs and no pointers between vertices; the caller keeps any
//	per-vertex or per-edge payload in its own slices indexed by the same handles.
//
// Algorithms Provided
//
//   - Kruskal(g *Graph) ([]Edge, float64, error)
//
//   - Strategy: Stable-sort all edges by weight, then merge components with a Disjoint-Set
//     (path compression + union by rank), skipping edges whose endpoints are already connected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: equal weights keep insertion order, so ties break by Edge.ID.
//
//   - Prim(g *Graph, root int) ([]Edge, float64, error)
//
//   - Strategy: Grow a tree from root with a min-heap of crossing edges.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
//   - Determinism: the heap orders by (Weight, Edge.ID), so ties break by Edge.ID as well.
//
// Error Conditions
//
//   - ErrInvalidGraph  : graph is nil.
//   - ErrRootOutOfRange: Prim root is not a vertex of the graph.
//   - ErrDisconnected  : |V| == 0, or |V| > 1 and no spanning tree exists.
//
// Edges are returned with the orientation they were inserted with (From/To untouched),
// which lets callers attach direction-sensitive payloads to an undirected tree.
package prim_kruskal
