// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package service wraps layered.Optimize as an HTTP service: request
// routing (go-chi/chi), result caching (redis/go-redis), and run-record
// persistence (go.mongodb.org/mongo-driver). None of this lives in the
// layered package itself; Optimize remains a pure, cache-free function,
// and service is one possible host around it.
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/thleu-ethz-ch/ngp-dag-layout/layered"
)

// digest computes a stable content hash of a Description, canonicalizing
// edge order first so that two requests describing the same graph with
// edges listed in a different order hash identically.
func digest(d *layered.Description) string {
	h := sha256.New()
	for _, ids := range d.Ranks {
		fmt.Fprintf(h, "|%v", ids)
	}
	edges := append([]layered.Edge(nil), d.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].Weight < edges[j].Weight
	})
	for _, e := range edges {
		fmt.Fprintf(h, "|%d,%d,%d", e.From, e.To, e.Weight)
	}
	return hex.EncodeToString(h.Sum(nil))
}
