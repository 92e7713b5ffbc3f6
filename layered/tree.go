// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

// bilayerEdge is a transient edge projected into position-space for one
// bilayer: north and south are positions within their respective ranks,
// not vertex ids. South positions range over the rank being scored; north
// positions range over the other rank.
type bilayerEdge struct {
	north, south, weight int
}

// nextPowerOfTwo returns the smallest power of two that is >= n, with a
// floor of 1 (so a rank of size 0 or 1 still gets a one-leaf tree).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// treeSize returns the array size countCrossings needs to score a rank of
// numSouth vertices: a complete binary tree over nextPowerOfTwo(numSouth)
// leaves.
func treeSize(numSouth int) int {
	return 2*nextPowerOfTwo(numSouth) - 1
}

func treeFirstLeaf(numSouth int) int {
	return nextPowerOfTwo(numSouth) - 1
}

// countCrossings is the accumulator-tree bilayer crossing counter adapted
// from Barth, Jünger & Mutzel (2002). edges must already be sorted by
// (north ascending, south ascending); tree is scratch space of size
// treeSize(numSouth), owned by the caller.
//
// After processing each edge the tree holds the weight sums of all prior
// edges bucketed by south-position. Walking from a newly inserted leaf to
// the root and summing the right-sibling subtree at every left-child (odd
// index) step
// accumulates exactly the total weight of earlier edges whose south
// position is strictly greater than the current edge's — the edges that
// cross it, since all earlier edges have north <= the current edge's
// north.
func countCrossings(numSouth int, edges []bilayerEdge, tree []int64) int64 {
	if len(edges) == 0 {
		return 0
	}
	firstLeaf := treeFirstLeaf(numSouth)
	clear(tree)

	var total int64
	for _, e := range edges {
		w := int64(e.weight)
		index := e.south + firstLeaf
		tree[index] += w

		var crossing int64
		for index > 0 {
			if index%2 != 0 {
				crossing += tree[index+1]
			}
			index = (index - 1) / 2
			tree[index] += w
		}
		total += w * crossing
	}
	return total
}
