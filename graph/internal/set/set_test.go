// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import "testing"

func TestInt64s(t *testing.T) {
	s := make(Int64s)
	if s.Has(1) {
		t.Fatal("empty set has 1")
	}
	s.Add(1)
	s.Add(2)
	if !s.Has(1) || !s.Has(2) {
		t.Fatal("set missing added elements")
	}
	s.Remove(1)
	if s.Has(1) {
		t.Error("set still has 1 after Remove")
	}
	if !s.Has(2) {
		t.Error("Remove(1) also removed 2")
	}
}
