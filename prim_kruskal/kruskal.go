// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *Graph and produces a slice of edges forming the MST.
package prim_kruskal

import "sort"

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil; |V| == 0 → ErrDisconnected; |V| == 1 → trivial MST.
//  2. Copy edges (ID order) and stable-sort them by ascending Weight.
//  3. Initialize DSU slices parent[] and rank[] for each vertex.
//  4. Loop over sorted edges: for each edge (u,v), if find(u) != find(v), then union(u,v) and include edge in MST.
//  5. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *Graph) ([]Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	numVerts := graph.Order()
	if numVerts == 0 {
		return nil, 0, ErrDisconnected
	}
	if numVerts == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Sort a copy by weight; the stable sort keeps ID order among equal weights.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set over vertex handles.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank on two distinct roots.
	union := func(rootU, rootV int) {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
			return
		}
		parent[rootV] = rootU
		if rank[rootU] == rank[rootV] {
			rank[rootU]++
		}
	}

	// 4. Build MST by iterating over sorted edges.
	var (
		mst         = make([]Edge, 0, numVerts-1)
		totalWeight float64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue // would close a cycle
		}
		union(ru, rv)
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 5. Fewer than |V|-1 edges means some component was never reached.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
