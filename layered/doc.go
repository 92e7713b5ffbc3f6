// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layered implements exact and heuristic crossing minimization for
// layered (hierarchical) graph drawings: an accumulator-tree bilayer
// crossing counter adapted from Barth, Jünger & Mutzel, "Simple and
// efficient bilayer cross counting" (2002), and a weighted barycenter
// sweep optimizer built on top of it.
//
// The package's single entry point, Optimize, is a pure, synchronous,
// single-threaded function over an already-validated graph description: it
// owns no goroutines, performs no I/O, and holds no package-level state.
// Parsing of input files, CLI argument handling, and telemetry are host
// concerns; see the sibling cmd/layoutctl and service packages for one way
// to provide them.
package layered
