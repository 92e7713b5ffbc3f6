// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import (
	"fmt"
	"sort"

	"github.com/thleu-ethz-ch/ngp-dag-layout/graph"
)

// NewFromGraph builds a Description (the ranks/orders/edges data model
// Optimize consumes) from a graph.Directed plus an explicit rank assignment,
// so a host that already keeps its own graph object model never needs to
// round-trip through the wire format just to call Optimize.
//
// rankOf assigns every node a non-negative rank number; rank numbers need
// not be contiguous or start at 0 — NewFromGraph compacts whatever distinct
// values it sees into 0..k-1, in ascending order. weightOf extracts an
// integer edge weight; if weightOf is nil, every edge is given weight 1.
//
// Alongside the Description, NewFromGraph returns nodeOf, a slice mapping
// each dense vertex id used in the Description back to the graph.Node it
// came from, so a caller can translate Optimize's result back into its own
// graph's identities.
func NewFromGraph(g graph.Directed, rankOf func(graph.Node) int, weightOf func(graph.Edge) int) (*Description, []graph.Node, error) {
	nodes := g.Nodes()

	byRank := map[int][]graph.Node{}
	for _, n := range nodes {
		r := rankOf(n)
		if r < 0 {
			return nil, nil, &InvalidGraphError{Reason: fmt.Sprintf("node %d assigned negative rank %d", n.ID(), r)}
		}
		byRank[r] = append(byRank[r], n)
	}

	rankNums := make([]int, 0, len(byRank))
	for r := range byRank {
		rankNums = append(rankNums, r)
	}
	sort.Ints(rankNums)

	ranks := make([][]int, len(rankNums))
	var nodeOf []graph.Node
	denseOf := make(map[int64]int, len(nodes))
	for newRank, r := range rankNums {
		group := byRank[r]
		sort.Slice(group, func(i, j int) bool { return group[i].ID() < group[j].ID() })
		ids := make([]int, len(group))
		for i, n := range group {
			id := len(nodeOf)
			denseOf[n.ID()] = id
			nodeOf = append(nodeOf, n)
			ids[i] = id
		}
		ranks[newRank] = ids
	}

	var edges []Edge
	for _, u := range nodes {
		for _, v := range g.From(u) {
			e := g.Edge(u, v)
			if e == nil {
				continue
			}
			weight := 1
			if weightOf != nil {
				weight = weightOf(e)
			}
			edges = append(edges, Edge{
				From:   denseOf[u.ID()],
				To:     denseOf[v.ID()],
				Weight: weight,
			})
		}
	}

	return &Description{Ranks: ranks, Edges: edges}, nodeOf, nil
}
