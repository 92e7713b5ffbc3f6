// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"testing"

	"github.com/thleu-ethz-ch/ngp-dag-layout/graph"
)

func TestDirectedGraphSetEdgeAddsEndpoints(t *testing.T) {
	g := NewDirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(2)})

	if !g.Has(Node(1)) || !g.Has(Node(2)) {
		t.Fatalf("SetEdge did not add both endpoints")
	}
	if !g.HasEdgeFromTo(Node(1), Node(2)) {
		t.Errorf("HasEdgeFromTo(1, 2) = false, want true")
	}
	if g.HasEdgeFromTo(Node(2), Node(1)) {
		t.Errorf("HasEdgeFromTo(2, 1) = true, want false (directed)")
	}
}

func TestDirectedGraphAddNodeCollisionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddNode with a duplicate ID did not panic")
		}
	}()
	g := NewDirectedGraph()
	g.AddNode(Node(1))
	g.AddNode(Node(1))
}

func TestDirectedGraphSetEdgeSelfEdgePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetEdge with a self edge did not panic")
		}
	}()
	g := NewDirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(1)})
}

func TestDirectedGraphFrom(t *testing.T) {
	g := NewDirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(2)})
	g.SetEdge(Edge{F: Node(1), T: Node(3)})
	g.AddNode(Node(4))

	got := map[int64]bool{}
	for _, n := range g.From(Node(1)) {
		got[n.ID()] = true
	}
	if !got[2] || !got[3] || len(got) != 2 {
		t.Errorf("From(1) = %v, want {2, 3}", got)
	}
	if from := g.From(Node(4)); len(from) != 0 {
		t.Errorf("From(4) = %v, want empty", from)
	}
}

func TestDirectedGraphRemoveNode(t *testing.T) {
	g := NewDirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(2)})
	g.SetEdge(Edge{F: Node(2), T: Node(1)})

	g.RemoveNode(Node(1))

	if g.Has(Node(1)) {
		t.Error("node 1 still present after RemoveNode")
	}
	if g.HasEdgeFromTo(Node(2), Node(1)) {
		t.Error("edge into removed node still present")
	}
	if from := g.From(Node(2)); len(from) != 0 {
		t.Errorf("From(2) = %v, want empty after removing its only successor", from)
	}

	g.RemoveNode(Node(1))
}

func TestWeightedEdgeWeight(t *testing.T) {
	e := WeightedEdge{F: Node(1), T: Node(2), W: 5}
	var ge graph.Edge = e
	we, ok := ge.(graph.WeightedEdge)
	if !ok {
		t.Fatal("WeightedEdge does not satisfy graph.WeightedEdge")
	}
	if we.Weight() != 5 {
		t.Errorf("Weight() = %d, want 5", we.Weight())
	}
}
