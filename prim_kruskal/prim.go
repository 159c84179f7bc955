// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *Graph and grows the MST from a specified root vertex using a min-heap.
package prim_kruskal

import "container/heap"

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph   : if graph is nil.
//   - ErrDisconnected   : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//   - ErrRootOutOfRange : if root is not in 0..|V|-1.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as visited and push all edges incident to root.
//  3. While pq not empty and MST has < |V|-1 edges:
//     a. Pop the smallest (Weight, ID) edge.
//     b. If its far endpoint is already visited, skip (this edge would form a cycle).
//     c. Otherwise, add it to MST, mark the endpoint visited, accumulate weight.
//     d. Push all edges from the new vertex to as-yet-unvisited neighbors.
//  4. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *Graph, root int) ([]Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// push enqueues every edge from v to an unvisited vertex.
	push := func(v int) {
		for _, id := range graph.Incident(v) {
			e := graph.Edge(id)
			far := e.Other(v)
			if !visited[far] {
				heap.Push(pq, pqItem{edge: e, far: far})
			}
		}
	}

	// 2. Seed with root.
	visited[root] = true
	push(root)

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(pqItem)
		if visited[it.far] {
			continue
		}
		visited[it.far] = true
		mst = append(mst, it.edge)
		totalWeight += it.edge.Weight
		push(it.far)
	}

	// 4. Unreached vertices mean the graph is disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pqItem is a crossing edge together with the endpoint it would add.
type pqItem struct {
	edge Edge
	far  int
}

// edgePQ implements heap.Interface as a min-heap ordered by (Weight, ID).
type edgePQ []pqItem

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then by edge ID so equal weights pop in insertion order.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new item; called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last item; called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
