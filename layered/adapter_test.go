// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import (
	"testing"

	"github.com/thleu-ethz-ch/ngp-dag-layout/graph"
	"github.com/thleu-ethz-ch/ngp-dag-layout/graph/simple"
)

func weightOf(e graph.Edge) int {
	if we, ok := e.(graph.WeightedEdge); ok {
		return we.Weight()
	}
	return 1
}

func TestNewFromGraph(t *testing.T) {
	g := simple.NewDirectedGraph()
	rank := map[int64]int{0: 0, 1: 0, 2: 1, 3: 1}
	g.SetEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(3), W: 1})
	g.SetEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 2})

	rankOf := func(n graph.Node) int { return rank[n.ID()] }

	desc, nodeOf, err := NewFromGraph(g, rankOf, weightOf)
	if err != nil {
		t.Fatalf("NewFromGraph() error = %v", err)
	}

	if len(desc.Ranks) != 2 {
		t.Fatalf("len(Ranks) = %d, want 2", len(desc.Ranks))
	}
	if len(desc.Ranks[0]) != 2 || len(desc.Ranks[1]) != 2 {
		t.Fatalf("Ranks = %v, want two ranks of size 2", desc.Ranks)
	}
	if len(nodeOf) != 4 {
		t.Fatalf("len(nodeOf) = %d, want 4", len(nodeOf))
	}
	for dense, n := range nodeOf {
		wantRank := rank[n.ID()]
		gotRank := -1
		for r, ids := range desc.Ranks {
			for _, id := range ids {
				if id == dense {
					gotRank = r
				}
			}
		}
		if gotRank != wantRank {
			t.Errorf("dense id %d (original %d): rank %d, want %d", dense, n.ID(), gotRank, wantRank)
		}
	}

	if len(desc.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(desc.Edges))
	}
	var sawWeight1, sawWeight2 bool
	for _, e := range desc.Edges {
		switch e.Weight {
		case 1:
			sawWeight1 = true
		case 2:
			sawWeight2 = true
		}
	}
	if !sawWeight1 || !sawWeight2 {
		t.Errorf("Edges = %v, want one weight-1 and one weight-2 edge", desc.Edges)
	}

	if _, _, err := Optimize(desc.Ranks, desc.Edges, Options{}); err != nil {
		t.Errorf("Optimize(NewFromGraph(...)) error = %v", err)
	}
}

func TestNewFromGraphNegativeRank(t *testing.T) {
	g := simple.NewDirectedGraph()
	g.AddNode(simple.Node(0))

	_, _, err := NewFromGraph(g, func(graph.Node) int { return -1 }, weightOf)
	if err == nil {
		t.Fatal("NewFromGraph() error = nil, want error for negative rank")
	}
}

func TestNewFromGraphDefaultWeight(t *testing.T) {
	g := simple.NewDirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	rank := map[int64]int{0: 0, 1: 1}

	desc, _, err := NewFromGraph(g, func(n graph.Node) int { return rank[n.ID()] }, nil)
	if err != nil {
		t.Fatalf("NewFromGraph() error = %v", err)
	}
	if len(desc.Edges) != 1 || desc.Edges[0].Weight != 1 {
		t.Errorf("Edges = %v, want a single weight-1 edge", desc.Edges)
	}
}
