// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractChanges(t *testing.T) {
	tests := []struct {
		name     string
		order    []int // current order; order[p] is the vertex at position p
		proposed []int // proposed new order
		want     []changeRange
	}{
		{
			name:     "identical",
			order:    []int{0, 1, 2, 3},
			proposed: []int{0, 1, 2, 3},
			want:     nil,
		},
		{
			name:     "single swap",
			order:    []int{0, 1, 2, 3},
			proposed: []int{1, 0, 2, 3},
			want:     []changeRange{{0, 1}},
		},
		{
			name:     "two disjoint swaps",
			order:    []int{0, 1, 2, 3, 4, 5},
			proposed: []int{1, 0, 2, 3, 5, 4},
			want:     []changeRange{{0, 1}, {4, 5}},
		},
		{
			name:     "full reversal is one range",
			order:    []int{0, 1, 2, 3},
			proposed: []int{3, 2, 1, 0},
			want:     []changeRange{{0, 3}},
		},
		{
			name:     "move to end",
			order:    []int{0, 1, 2, 3},
			proposed: []int{1, 2, 3, 0},
			want:     []changeRange{{0, 3}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pos := make([]int, len(test.order))
			for p, v := range test.order {
				pos[v] = p
			}
			perm := make([]int, len(test.order))
			got := extractChanges(test.proposed, pos, perm, nil)
			if diff := cmp.Diff(test.want, got, cmp.Comparer(func(a, b changeRange) bool { return a == b })); diff != "" {
				t.Errorf("extractChanges() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestExtractChangesReusesBacking verifies the dst[:0] reuse contract: a
// non-nil backing slice with stale contents is grown from length 0, not
// appended to.
func TestExtractChangesReusesBacking(t *testing.T) {
	order := []int{0, 1, 2, 3}
	proposed := []int{1, 0, 2, 3}
	pos := make([]int, len(order))
	for p, v := range order {
		pos[v] = p
	}
	perm := make([]int, len(order))

	dst := make([]changeRange, 0, 8)
	dst = append(dst, changeRange{99, 99})
	got := extractChanges(proposed, pos, perm, dst[:0])

	want := []changeRange{{0, 1}}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b changeRange) bool { return a == b })); diff != "" {
		t.Errorf("extractChanges() mismatch (-want +got):\n%s", diff)
	}
}
