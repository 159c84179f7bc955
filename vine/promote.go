// SPDX-License-Identifier: MIT

package vine

import "github.com/RoaringBitmap/roaring/v2"

// Promote turns the edges of prev into the vertices of the next tree, one
// vertex per edge in prev.Edges order. Each vertex shares the edge's H1/H2
// slices, copies its Conditioned and Conditioning sets and records the edge
// endpoints in PrevEdge. The new tree has Level prev.Level+1 and no edges.
//
// Promote does not modify prev.
func Promote(prev *Tree) *Tree {
	t := &Tree{
		Level:    prev.Level + 1,
		Vertices: make([]Vertex, len(prev.Edges)),
	}
	for i, e := range prev.Edges {
		t.Vertices[i] = Vertex{
			H1:           e.H1,
			H2:           e.H2,
			PrevEdge:     [2]int{e.From, e.To},
			Conditioned:  cloneInts(e.Conditioned),
			Conditioning: cloneInts(e.Conditioning),
			all:          bitmapOf(e.Conditioned, e.Conditioning),
		}
	}

	return t
}

// variables returns conditioned ∪ conditioning of v.
func (v *Vertex) variables() *roaring.Bitmap {
	if v.all != nil {
		return v.all
	}

	return bitmapOf(v.Conditioned, v.Conditioning)
}

func (v *Vertex) release() {
	v.H1, v.H2, v.all = nil, nil, nil
}

func bitmapOf(sets ...[]int) *roaring.Bitmap {
	b := roaring.New()
	for _, s := range sets {
		for _, x := range s {
			b.Add(uint32(x))
		}
	}

	return b
}

func toInts(b *roaring.Bitmap) []int {
	if b.IsEmpty() {
		return nil
	}
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

func cloneInts(s []int) []int {
	if len(s) == 0 {
		return nil
	}

	return append([]int(nil), s...)
}
