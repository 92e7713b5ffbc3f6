// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layered

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadWire parses the comma-separated wire format:
//
//	numRanks,numNodes,maxId,numEdges
//	<rank 0 vertex ids, comma-separated>
//	<rank 1 vertex ids, comma-separated>
//	...
//	<from,to,weight triples, one per remaining line, for edges into ranks 1..numRanks-1>
//
// numNodes and maxId are recorded by the format for the writer's benefit but
// are not needed to parse it; ReadWire derives everything else from the
// rank lines and edge triples and ignores them beyond a basic header
// arity check. Parsing input files is a host concern, not the optimizer's,
// so this stays here rather than in the core; it is kept to the standard
// library since no third-party delimited-text library appears anywhere in
// the example pack (see DESIGN.md).
func ReadWire(r io.Reader) (*Description, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("layered: empty wire stream")
	}
	header, err := scanInts(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("layered: wire header: %w", err)
	}
	if len(header) != 4 {
		return nil, fmt.Errorf("layered: wire header: want 4 fields, got %d", len(header))
	}
	numRanks, _, _, numEdges := header[0], header[1], header[2], header[3]

	ranks := make([][]int, numRanks)
	for r := 0; r < numRanks; r++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("layered: wire stream truncated at rank %d", r)
		}
		ids, err := scanInts(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("layered: rank %d: %w", r, err)
		}
		ranks[r] = ids
	}

	edges := make([]Edge, 0, numEdges)
	for i := 0; i < numEdges; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("layered: wire stream truncated at edge %d", i)
		}
		fields, err := scanInts(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("layered: edge %d: %w", i, err)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("layered: edge %d: want 3 fields, got %d", i, len(fields))
		}
		edges = append(edges, Edge{From: fields[0], To: fields[1], Weight: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layered: reading wire stream: %w", err)
	}

	return &Description{Ranks: ranks, Edges: edges}, nil
}

// WriteWire serializes d in the wire format ReadWire parses, including the
// computed numNodes/maxId header fields.
func WriteWire(w io.Writer, d *Description) error {
	bw := bufio.NewWriter(w)

	numNodes, maxID := 0, -1
	for _, ids := range d.Ranks {
		numNodes += len(ids)
		for _, v := range ids {
			if v > maxID {
				maxID = v
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", len(d.Ranks), numNodes, maxID, len(d.Edges)); err != nil {
		return err
	}
	for _, ids := range d.Ranks {
		if err := writeInts(bw, ids); err != nil {
			return err
		}
	}
	for _, e := range d.Edges {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func scanInts(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	fields := strings.Split(line, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, f, err)
		}
		out[i] = v
	}
	return out, nil
}

func writeInts(w *bufio.Writer, ids []int) error {
	for i, v := range ids {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
