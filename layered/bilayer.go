// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "sort"

// countBilayerCrossings is the bilayer driver: project candidate
// (south-rank vertex ids, in the order to be scored) against the chosen
// direction's neighbor projection, locating each neighbor's position in
// the opposite rank via the currently committed pos[], sort the resulting
// bilayer edges by (north asc, south asc), and invoke the accumulator-tree
// counter.
//
// It does not mutate pos or any order.
func (s *state) countBilayerCrossings(candidate []int, neighbors []neighborList) int64 {
	edges := s.bilayer[:0]
	for p, v := range candidate {
		for _, nb := range neighbors[v] {
			edges = append(edges, bilayerEdge{
				north:  s.pos[nb.other],
				south:  p,
				weight: nb.weight,
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].north != edges[j].north {
			return edges[i].north < edges[j].north
		}
		return edges[i].south < edges[j].south
	})
	s.bilayer = edges
	return countCrossings(len(candidate), edges, s.tree)
}
