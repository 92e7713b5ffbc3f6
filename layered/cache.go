// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "math"

// crossingCount represents one entry of the per-bilayer crossings cache: a
// weighted bilayer crossing count, or "unknown / must recompute". This is
// a proper optional in place of the reference implementation's
// 1_000_000_000 sentinel, which could collide with a legitimate count on a
// very large weighted graph. The zero value is "unknown": known is false,
// so it is never mistaken for a real, zero, crossing count.
type crossingCount struct {
	known bool
	value int64
}

func known(v int64) crossingCount { return crossingCount{known: true, value: v} }

// orInfinity returns the count's value, or an effectively infinite value if
// it is still unknown. This reproduces the reference sentinel's comparison
// behavior (a huge placeholder that any real count beats) without the
// sentinel's collision risk: callers that compare against this value, as
// the try-order evaluator does, get "unknown counts as worse than
// anything real" for free.
func (c crossingCount) orInfinity() int64 {
	if !c.known {
		return math.MaxInt64
	}
	return c.value
}

// totalCrossings sums crossings[1:], filling in any unknown entries first
// by invoking the bilayer driver against the currently committed orders.
// crossings[r] is always the weighted count between ranks r-1 and r, so it
// is always recomputed via the "up" projection (the neighbors in rank
// r-1), independent of whichever sweep direction is currently active.
func (s *state) totalCrossings() int64 {
	var total int64
	for r := 1; r < len(s.order); r++ {
		if !s.crossings[r].known {
			s.crossings[r] = known(s.countBilayerCrossings(s.order[r], s.up))
		}
		total += s.crossings[r].value
	}
	return total
}
