// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines minimal directed-graph interfaces used to hand a
// host's own graph object model to the layered package, without requiring
// the host to first serialize it to layered's wire format.
package graph

// Node is a graph vertex, identified by an int64 ID.
type Node interface {
	ID() int64
}

// Edge is a directed connection between two nodes.
type Edge interface {
	From() Node
	To() Node
}

// WeightedEdge is an Edge that additionally carries an integer weight, as
// required by the layered package's edge model (weight must be at least 1).
type WeightedEdge interface {
	Edge
	Weight() int
}

// Directed is a directed graph whose nodes and from-edges can be listed.
// It is intentionally narrower than gonum's graph.Directed: layered only
// ever walks nodes and out-edges, never needs removal, weighted shortest
// paths, or iterator reuse.
type Directed interface {
	// Nodes returns every node in the graph. Order is not significant;
	// layered.NewFromGraph groups nodes into ranks itself.
	Nodes() []Node

	// From returns the nodes directly reachable from n along an out-edge.
	From(n Node) []Node

	// Edge returns the edge from u to v, or nil if none exists.
	Edge(u, v Node) Edge
}
