// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "fmt"

// state holds everything the sweep owns for the duration of one Optimize
// call: the mutable orders and positions, the immutable neighbor
// projections, the crossings cache, and the scratch buffers sized to the
// largest rank and the largest per-bilayer edge count. None of it survives
// past the call that built it.
type state struct {
	order []vertexOrder
	pos   []int // pos[v]: index of v within its rank's order; sized maxID+1
	rankOf []int // rankOf[v]: rank index of v; sized maxID+1

	up, down []neighborList // per-vertex neighbor projections, sized maxID+1

	crossings []crossingCount // crossings[r], r in 0..len(order)-1

	multiplier float64 // tiebreak multiplier used by the barycenter sort key

	opts Options

	// scratch, sized to the largest rank (maxRankSize) or the largest
	// per-bilayer edge count (maxBilayerEdges).
	tree      []int64
	bilayer   []bilayerEdge
	changes   []changeRange
	means     []nodeMean
	candidate []int
	perm      []int
	tmpOrder  []int
}

// vertexOrder is rank r's vertex sequence, order[r].
type vertexOrder = []int

// neighborList is the adjacency projection of a single vertex in one
// direction (up[v] or down[v]).
type neighborList = []neighbor

// newState validates ranks/edges against the adjacency and weight
// invariants and builds the state a single Optimize call needs.
func newState(ranks [][]int, edges []Edge, opts Options) (*state, error) {
	maxID := -1
	rankOf := map[int]int{}
	order := make([]vertexOrder, len(ranks))
	for r, ids := range ranks {
		order[r] = append([]int(nil), ids...)
		for _, v := range ids {
			if v < 0 {
				return nil, &InvalidGraphError{Reason: fmt.Sprintf("negative vertex id %d", v)}
			}
			if _, dup := rankOf[v]; dup {
				return nil, &InvalidGraphError{Reason: fmt.Sprintf("vertex %d appears in more than one rank", v)}
			}
			rankOf[v] = r
			if v > maxID {
				maxID = v
			}
		}
	}

	pos := make([]int, maxID+1)
	rankOfArr := make([]int, maxID+1)
	for v, r := range rankOf {
		rankOfArr[v] = r
	}
	for _, o := range order {
		for p, v := range o {
			pos[v] = p
		}
	}

	upCount := make([]int, maxID+1)
	downCount := make([]int, maxID+1)
	edgesPerBilayer := make([]int, len(ranks))
	maxWeight := 1
	for _, e := range edges {
		if e.Weight < 1 {
			return nil, &InvalidGraphError{e.From, e.To, e.Weight, "weight must be >= 1"}
		}
		frRank, frOK := rankOf[e.From]
		toRank, toOK := rankOf[e.To]
		if !frOK || !toOK {
			return nil, &InvalidGraphError{e.From, e.To, e.Weight, "endpoint not assigned to any rank"}
		}
		if frRank+1 != toRank {
			return nil, &InvalidGraphError{e.From, e.To, e.Weight, "edge does not run between adjacent ranks"}
		}
		upCount[e.To]++
		downCount[e.From]++
		edgesPerBilayer[toRank]++
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	up := make([]neighborList, maxID+1)
	down := make([]neighborList, maxID+1)
	for v := 0; v <= maxID; v++ {
		if upCount[v] > 0 {
			up[v] = make(neighborList, 0, upCount[v])
		}
		if downCount[v] > 0 {
			down[v] = make(neighborList, 0, downCount[v])
		}
	}
	for _, e := range edges {
		up[e.To] = append(up[e.To], neighbor{other: e.From, weight: e.Weight})
		down[e.From] = append(down[e.From], neighbor{other: e.To, weight: e.Weight})
	}

	maxRankSize, maxBilayerEdges := 0, 0
	for r, o := range order {
		if len(o) > maxRankSize {
			maxRankSize = len(o)
		}
		if edgesPerBilayer[r] > maxBilayerEdges {
			maxBilayerEdges = edgesPerBilayer[r]
		}
	}

	crossings := make([]crossingCount, len(ranks))
	if len(crossings) > 0 {
		crossings[0] = known(0)
	}

	return &state{
		order:      order,
		pos:        pos,
		rankOf:     rankOfArr,
		up:         up,
		down:       down,
		crossings:  crossings,
		multiplier: float64(maxWeight)*float64(maxBilayerEdges) + 1,
		opts:       opts,

		tree:      make([]int64, treeSize(maxRankSize)),
		bilayer:   make([]bilayerEdge, 0, maxBilayerEdges),
		changes:   make([]changeRange, 0, maxRankSize),
		means:     make([]nodeMean, maxRankSize),
		candidate: make([]int, maxRankSize),
		perm:      make([]int, maxRankSize),
		tmpOrder:  make([]int, maxRankSize),
	}, nil
}

// commitOrder overwrites rank r's order with candidate and updates pos for
// every vertex it contains, the write-back half of evaluateOrder's
// acceptance logic.
func (s *state) commitOrder(r int, candidate []int) {
	copy(s.order[r], candidate)
	for p, v := range s.order[r] {
		s.pos[v] = p
	}
}

func copyOrder(order []vertexOrder) [][]int {
	out := make([][]int, len(order))
	for r, o := range order {
		out[r] = append([]int(nil), o...)
	}
	return out
}
