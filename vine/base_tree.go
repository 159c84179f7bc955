// SPDX-License-Identifier: MIT

package vine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BaseTree builds the star that seeds a vine on the d columns of data.
//
// Contract:
//   - d+1 vertices; the root has index d, vertex i < d stands for column i.
//   - d edges in column order; edge i runs root → i, carries column i in H1,
//     Conditioning {i}, no Conditioned set, Tau 0 and Weight 1.
//   - Level is BaseLevel; every vertex has PrevEdge NoPrevEdge.
//
// Errors: *InputError for nil data, d < 2, n < 2, or an entry that is not
// finite or not strictly inside (0,1).
//
// Complexity: O(n·d) time and memory (columns are copied).
func BaseTree(data mat.Matrix) (*Tree, error) {
	n, d, err := checkData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBaseTree, err)
	}

	t := &Tree{
		Level:    BaseLevel,
		Vertices: make([]Vertex, d+1),
		Edges:    make([]Edge, d),
	}
	for i := range t.Vertices {
		t.Vertices[i].PrevEdge = NoPrevEdge
	}

	var i int
	for i = 0; i < d; i++ {
		t.Edges[i] = Edge{
			From:         d,
			To:           i,
			Conditioning: []int{i},
			Weight:       1,
			H1:           mat.Col(make([]float64, n), i, data),
		}
	}

	return t, nil
}
