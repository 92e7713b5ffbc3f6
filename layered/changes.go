// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

// changeRange is a maximal, closed index interval [begin, end] covering
// positions where a proposed order differs from the order currently
// reflected by pos.
type changeRange struct {
	begin, end int
}

// extractChanges derives the minimal disjoint index ranges that differ
// between newOrder and the current order, partitioned into maximal runs
// of interleaved displacement. perm is scratch space sized len(newOrder);
// dst's backing array is reused (typically passed as dst[:0]).
//
// Testing each returned range independently, rather than the order as a
// whole, lets a local improvement succeed even when the full proposed
// reordering would be rejected.
func extractChanges(newOrder []int, pos []int, perm []int, dst []changeRange) []changeRange {
	dst = dst[:0]
	for p, v := range newOrder {
		perm[p] = pos[v]
	}

	seqStart, seqEnd := -1, -1
	for p := 0; p < len(newOrder); p++ {
		switch {
		case perm[p] > p:
			switch {
			case seqStart == -1:
				seqStart, seqEnd = p, perm[p]
			case seqEnd < p:
				dst = append(dst, changeRange{seqStart, p - 1})
				seqStart, seqEnd = p, perm[p]
			case perm[p] > seqEnd:
				seqEnd = perm[p]
			}
		case perm[p] == p && seqStart != -1 && seqEnd < p:
			dst = append(dst, changeRange{seqStart, p - 1})
			seqStart = -1
		}
	}
	if seqStart != -1 {
		dst = append(dst, changeRange{seqStart, len(newOrder) - 1})
	}
	return dst
}
