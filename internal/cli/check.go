// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thleu-ethz-ch/ngp-dag-layout/layered"
)

// checkCommand runs Optimize and then verifies the properties that are
// cheap to check at CLI scale: orders remain permutations of their inputs,
// the reported per-bilayer counts and total match a fresh recount of the
// final orders by layered.Evaluate (the same accumulator-tree counter, not
// a separate brute-force count), and the final total never exceeds the
// initial one.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <wire-file>",
		Short: "Verify the optimizer's testable properties on a wire-format graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}
	return cmd
}

func (c *CLI) runCheck(inPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	desc, err := layered.ReadWire(in)
	if err != nil {
		return fmt.Errorf("read wire: %w", err)
	}

	initial, err := layered.Evaluate(desc.Ranks, desc.Edges)
	if err != nil {
		return fmt.Errorf("evaluate initial: %w", err)
	}

	orders, report, err := layered.Optimize(desc.Ranks, desc.Edges, layered.Options{})
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	var failures []string

	for r, order := range orders {
		if !isPermutationOf(order, desc.Ranks[r]) {
			failures = append(failures, fmt.Sprintf("rank %d: output is not a permutation of the input", r))
		}
	}

	recount, err := layered.Evaluate(orders, desc.Edges)
	if err != nil {
		failures = append(failures, fmt.Sprintf("recount: %v", err))
	} else {
		for r, want := range recount.PerBilayer {
			if report.PerBilayer[r] != want {
				failures = append(failures, fmt.Sprintf("rank %d: reported crossings %d do not match recount %d", r, report.PerBilayer[r], want))
			}
		}
		if recount.Total != report.Total {
			failures = append(failures, fmt.Sprintf("reported total %d does not match recount %d", report.Total, recount.Total))
		}
	}

	if report.Total > initial.Total {
		failures = append(failures, fmt.Sprintf("final total %d exceeds initial total %d", report.Total, initial.Total))
	}

	if len(failures) == 0 {
		fmt.Println(styleSuccess.Render(fmt.Sprintf("PASS: %d -> %d crossings", initial.Total, report.Total)))
		return nil
	}

	fmt.Println(styleDim.Render("FAIL:"))
	for _, f := range failures {
		fmt.Printf("  - %s\n", f)
	}
	return fmt.Errorf("check failed: %d propert%s violated", len(failures), pluralSuffix(len(failures)))
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func isPermutationOf(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[int]int, len(want))
	for _, v := range want {
		seen[v]++
	}
	for _, v := range got {
		seen[v]--
		if seen[v] < 0 {
			return false
		}
	}
	return true
}
