// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

// Edge is a directed connection between two vertices in adjacent ranks:
// rank(From)+1 must equal rank(To), and Weight must be >= 1.
type Edge struct {
	From, To int
	Weight   int
}

// neighbor is one entry of a per-vertex adjacency projection: the other
// endpoint of an edge and the edge's weight.
type neighbor struct {
	other  int
	weight int
}

// Options tunes sweep behavior beyond the reference algorithm's defaults.
// The zero value reproduces the reference behavior exactly.
type Options struct {
	// RejectWorseningSouth, when true, additionally vetoes a candidate
	// order that would increase the south-side crossing count, instead of
	// accepting purely on the strength of the north-side improvement.
	// North-only acceptance (false, the default) is the reference
	// behavior; this field exposes the stricter alternative as a tunable
	// rather than forking the algorithm.
	RejectWorseningSouth bool
}

// Report is the optional per-bilayer crossing accounting returned
// alongside an optimized order.
type Report struct {
	// PerBilayer[r] is the weighted crossing count between ranks r-1 and
	// r, for r in 1..len(ranks)-1. PerBilayer[0] is always 0, since there
	// is no rank -1.
	PerBilayer []int64
	// Total is the sum of PerBilayer.
	Total int64
}

// Description is the ranks/orders/edges data model built by NewFromGraph
// or ReadWire, and consumable directly by Optimize.
type Description struct {
	// Ranks[r] is the initial vertex order for rank r, as dense vertex ids.
	Ranks [][]int
	// Edges is the unordered set of weighted inter-rank edges, in the same
	// dense vertex id space as Ranks.
	Edges []Edge
}
