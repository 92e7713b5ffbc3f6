// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides minimal set types, adapted from
// gonum.org/v1/gonum/graph/internal/set.
package set

// Int64s is a set of int64 identifiers.
type Int64s map[int64]struct{}

// Add inserts e into the set.
func (s Int64s) Add(e int64) {
	s[e] = struct{}{}
}

// Has reports whether e is in the set.
func (s Int64s) Has(e int64) bool {
	_, ok := s[e]
	return ok
}

// Remove deletes e from the set.
func (s Int64s) Remove(e int64) {
	delete(s, e)
}
