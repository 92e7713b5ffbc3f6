// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "sort"

// nodeMean pairs a vertex with its weighted barycenter sort key.
type nodeMean struct {
	vertex int
	mean   float64
}

// sweepRank runs the barycenter sweep for a single rank r: iterate
// barycenter proposals to quiescence, extracting change ranges from each
// proposal and evaluating every range independently via the try-order
// evaluator. Returns whether any range was ever accepted.
func (s *state) sweepRank(r int, dir direction, lastRank int) bool {
	offsetNorth := 0
	if dir == up {
		offsetNorth = 1
	}
	if c := s.crossings[r+offsetNorth]; c.known && c.value == 0 {
		return false
	}

	northNeighbors := s.up
	if dir == up {
		northNeighbors = s.down
	}

	changed := false
	for {
		order := s.order[r]
		means := s.means[:len(order)]
		for p, v := range order {
			var sum, num int64
			for _, nb := range northNeighbors[v] {
				w := int64(nb.weight)
				sum += w * int64(s.pos[nb.other])
				num += w
			}
			var mean float64
			if num > 0 {
				mean = s.multiplier*(float64(sum)/float64(num)) + float64(p)
			} else {
				mean = s.multiplier*float64(p) + float64(p)
			}
			means[p] = nodeMean{vertex: v, mean: mean}
		}
		sort.SliceStable(means, func(i, j int) bool { return means[i].mean < means[j].mean })

		proposed := s.candidate[:len(order)]
		for p, nm := range means {
			proposed[p] = nm.vertex
		}

		s.changes = extractChanges(proposed, s.pos, s.perm, s.changes)

		iterChanged := false
		for _, c := range s.changes {
			tmp := s.tmpOrder[:len(order)]
			copy(tmp, s.order[r])
			copy(tmp[c.begin:c.end+1], proposed[c.begin:c.end+1])
			if s.evaluateOrder(r, tmp, dir, lastRank) != rejected {
				iterChanged = true
			}
		}

		if !iterChanged {
			break
		}
		changed = true
	}
	return changed
}
