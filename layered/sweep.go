// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "math"

// Optimize is the core's single external operation:
//
//	optimize(ranks, edges) → orders
//
// ranks is the ordered sequence of ranks, each an ordered sequence of
// vertex ids; the initial order within each rank is the starting point for
// optimization. edges is the unordered set of weighted inter-rank edges.
// Optimize returns the optimized per-rank orders and, for callers that
// want it, the final per-bilayer crossing counts.
//
// Optimize is a pure function: it validates its input, builds its own
// scratch state, runs to completion synchronously, and returns. It holds
// no state between calls and performs no I/O. A malformed graph (weight <
// 1, an edge that does not run between adjacent ranks, or an endpoint
// outside the supplied ranks) is reported as an *InvalidGraphError rather
// than assumed away — Optimize is the boundary host code actually calls, so
// it is where that validation lives, even though parsing and higher-level
// input handling remain the host's job.
func Optimize(ranks [][]int, edges []Edge, opts Options) ([][]int, Report, error) {
	s, err := newState(ranks, edges, opts)
	if err != nil {
		return nil, Report{}, err
	}

	if len(ranks) < 2 {
		return copyOrder(s.order), s.report(), nil
	}

	// Sweep controller: alternate direction, track the best total seen so
	// far, and stop after two consecutive directional passes (one down,
	// one up) fail to improve on it.
	dir := down
	improveCounter := 2
	minCrossings := int64(math.MaxInt64)
	for improveCounter > 0 {
		improveCounter--

		first, last, step := 1, len(ranks)-1, 1
		if dir == up {
			first, last, step = len(ranks)-2, 0, -1
		}
		for r := first; r != last+step; r += step {
			s.sweepRank(r, dir, last)
		}

		dir = !dir
		total := s.totalCrossings()
		if total < minCrossings {
			minCrossings = total
			improveCounter = 2
		}
	}

	return copyOrder(s.order), s.report(), nil
}

// Evaluate computes the Report for ranks/edges exactly as given, without
// running the optimizer. This is a host's way of measuring a graph's
// crossing count before calling Optimize, and of recounting an already
// optimized order as an independent check on Optimize's own bookkeeping.
func Evaluate(ranks [][]int, edges []Edge) (Report, error) {
	s, err := newState(ranks, edges, Options{})
	if err != nil {
		return Report{}, err
	}
	return s.report(), nil
}

// report builds a Report from the fully resolved crossings cache.
func (s *state) report() Report {
	total := s.totalCrossings()
	per := make([]int64, len(s.crossings))
	for r, c := range s.crossings {
		per[r] = c.value
	}
	return Report{PerBilayer: per, Total: total}
}
