// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simple provides a minimal concrete implementation of graph.Directed,
// adapted from gonum.org/v1/gonum/graph/simple for use in tests and as a
// convenience builder for callers of layered.NewFromGraph.
package simple

import (
	"fmt"

	"github.com/thleu-ethz-ch/ngp-dag-layout/graph"
	"github.com/thleu-ethz-ch/ngp-dag-layout/graph/internal/set"
)

// Node is a simple graph node identified by an int64.
type Node int64

// ID returns the ID of the node.
func (n Node) ID() int64 { return int64(n) }

// Edge is an unweighted edge between two nodes.
type Edge struct {
	F, T graph.Node
}

// From returns the edge's source node.
func (e Edge) From() graph.Node { return e.F }

// To returns the edge's destination node.
func (e Edge) To() graph.Node { return e.T }

// WeightedEdge is an Edge additionally carrying an integer weight.
type WeightedEdge struct {
	F, T graph.Node
	W    int
}

// From returns the edge's source node.
func (e WeightedEdge) From() graph.Node { return e.F }

// To returns the edge's destination node.
func (e WeightedEdge) To() graph.Node { return e.T }

// Weight returns the edge's weight.
func (e WeightedEdge) Weight() int { return e.W }

// DirectedGraph is a map-based directed graph, implementing graph.Directed.
type DirectedGraph struct {
	nodes map[int64]graph.Node
	from  map[int64]map[int64]graph.Edge

	ids set.Int64s
}

// NewDirectedGraph returns an empty DirectedGraph.
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		nodes: make(map[int64]graph.Node),
		from:  make(map[int64]map[int64]graph.Edge),
		ids:   make(set.Int64s),
	}
}

// AddNode adds n to the graph. It panics if n's ID is already in use.
func (g *DirectedGraph) AddNode(n graph.Node) {
	if g.ids.Has(n.ID()) {
		panic(fmt.Sprintf("simple: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.from[n.ID()] = make(map[int64]graph.Edge)
	g.ids.Add(n.ID())
}

// RemoveNode removes n and any edges touching it from g. It is a no-op if n
// is not a node of g.
func (g *DirectedGraph) RemoveNode(n graph.Node) {
	if !g.ids.Has(n.ID()) {
		return
	}
	delete(g.nodes, n.ID())
	delete(g.from, n.ID())
	for _, succ := range g.from {
		delete(succ, n.ID())
	}
	g.ids.Remove(n.ID())
}

// SetEdge adds e to the graph, adding its endpoints first if necessary. It
// panics if e is a self-edge.
func (g *DirectedGraph) SetEdge(e graph.Edge) {
	from, to := e.From(), e.To()
	if from.ID() == to.ID() {
		panic("simple: adding self edge")
	}
	if !g.Has(from) {
		g.AddNode(from)
	}
	if !g.Has(to) {
		g.AddNode(to)
	}
	g.from[from.ID()][to.ID()] = e
}

// Has reports whether n is a node of g.
func (g *DirectedGraph) Has(n graph.Node) bool {
	return g.ids.Has(n.ID())
}

// Node returns the node with the given ID, or nil if it is not in g.
func (g *DirectedGraph) Node(id int64) graph.Node {
	return g.nodes[id]
}

// Nodes returns every node in g, in no particular order.
func (g *DirectedGraph) Nodes() []graph.Node {
	if len(g.nodes) == 0 {
		return nil
	}
	nodes := make([]graph.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// From returns the nodes reachable directly from n.
func (g *DirectedGraph) From(n graph.Node) []graph.Node {
	succ, ok := g.from[n.ID()]
	if !ok {
		return nil
	}
	from := make([]graph.Node, 0, len(succ))
	for id := range succ {
		from = append(from, g.nodes[id])
	}
	return from
}

// Edge returns the edge from u to v, or nil if none exists.
func (g *DirectedGraph) Edge(u, v graph.Node) graph.Edge {
	e, ok := g.from[u.ID()][v.ID()]
	if !ok {
		return nil
	}
	return e
}

// HasEdgeFromTo reports whether an edge exists from u to v.
func (g *DirectedGraph) HasEdgeFromTo(u, v graph.Node) bool {
	_, ok := g.from[u.ID()][v.ID()]
	return ok
}
