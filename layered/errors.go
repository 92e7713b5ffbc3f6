// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import "fmt"

// InvalidGraphError reports a malformed graph — an edge whose endpoints are
// not in adjacent ranks, a sub-unity weight, an endpoint outside the
// supplied ranks, a negative vertex id, a vertex listed in more than one
// rank, or (from NewFromGraph) a negative rank. It is raised at the adapter
// boundary (Optimize, Evaluate, NewFromGraph) before the core ever runs;
// ReadWire does not validate and never returns it. The core itself assumes validated
// input and never constructs this type, following the shape of
// gonum.org/v1/gonum/graph/topo's Unorderable error: a struct carrying
// structured detail rather than a bare string.
type InvalidGraphError struct {
	From, To, Weight int
	Reason           string
}

func (e *InvalidGraphError) Error() string {
	if e.From == 0 && e.To == 0 && e.Weight == 0 {
		return fmt.Sprintf("layered: invalid graph: %s", e.Reason)
	}
	return fmt.Sprintf("layered: invalid edge (%d -> %d, weight %d): %s", e.From, e.To, e.Weight, e.Reason)
}
