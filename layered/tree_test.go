// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
	}
	for _, test := range tests {
		if got := nextPowerOfTwo(test.n); got != test.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", test.n, got, test.want)
		}
	}
}

func TestCountCrossingsNoEdges(t *testing.T) {
	tree := make([]int64, treeSize(4))
	if got := countCrossings(4, nil, tree); got != 0 {
		t.Errorf("countCrossings(nil) = %d, want 0", got)
	}
}

func TestCountCrossingsSingleEdge(t *testing.T) {
	edges := []bilayerEdge{{north: 0, south: 0, weight: 1}}
	tree := make([]int64, treeSize(1))
	if got := countCrossings(1, edges, tree); got != 0 {
		t.Errorf("countCrossings(single edge) = %d, want 0", got)
	}
}

// TestCountCrossingsK22 verifies the canonical crossing pair: north
// positions {0,1} each connect to the opposite south position, so the two
// edges cross exactly once.
func TestCountCrossingsK22(t *testing.T) {
	edges := []bilayerEdge{
		{north: 0, south: 1, weight: 1},
		{north: 1, south: 0, weight: 1},
	}
	tree := make([]int64, treeSize(2))
	if got := countCrossings(2, edges, tree); got != 1 {
		t.Errorf("countCrossings(K2,2 crossed) = %d, want 1", got)
	}
}

// TestCountCrossingsK22NoCross is K_{2,2} wired so the edges do not cross.
func TestCountCrossingsK22NoCross(t *testing.T) {
	edges := []bilayerEdge{
		{north: 0, south: 0, weight: 1},
		{north: 1, south: 1, weight: 1},
	}
	tree := make([]int64, treeSize(2))
	if got := countCrossings(2, edges, tree); got != 0 {
		t.Errorf("countCrossings(K2,2 uncrossed) = %d, want 0", got)
	}
}

// TestCountCrossingsWeighted checks that a crossing's contribution is the
// product of the two edges' weights, not a plain +1 per crossing pair.
func TestCountCrossingsWeighted(t *testing.T) {
	edges := []bilayerEdge{
		{north: 0, south: 1, weight: 3},
		{north: 1, south: 0, weight: 5},
	}
	tree := make([]int64, treeSize(2))
	if got, want := countCrossings(2, edges, tree), int64(15); got != want {
		t.Errorf("countCrossings(weighted) = %d, want %d", got, want)
	}
}

// TestCountCrossingsThreeWay exercises a rank of three, with one edge
// crossing both of the others.
func TestCountCrossingsThreeWay(t *testing.T) {
	// north 0 -> south 2 crosses both (north 1 -> south 0) and (north 2 -> south 1).
	edges := []bilayerEdge{
		{north: 0, south: 2, weight: 1},
		{north: 1, south: 0, weight: 1},
		{north: 2, south: 1, weight: 1},
	}
	tree := make([]int64, treeSize(3))
	if got, want := countCrossings(3, edges, tree), int64(2); got != want {
		t.Errorf("countCrossings(three-way) = %d, want %d", got, want)
	}
}

func TestCountCrossingsTreeReused(t *testing.T) {
	tree := make([]int64, treeSize(2))
	edgesA := []bilayerEdge{{north: 0, south: 1, weight: 1}, {north: 1, south: 0, weight: 1}}
	if got := countCrossings(2, edgesA, tree); got != 1 {
		t.Fatalf("first call = %d, want 1", got)
	}
	edgesB := []bilayerEdge{{north: 0, south: 0, weight: 1}, {north: 1, south: 1, weight: 1}}
	if got := countCrossings(2, edgesB, tree); got != 0 {
		t.Fatalf("second call on reused tree = %d, want 0 (clear() must reset stale state)", got)
	}
}
