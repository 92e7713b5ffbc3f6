// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("42")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
)

// summaryLine renders a one-line before/after crossing summary.
func summaryLine(before, after int64, elapsed string) string {
	delta := before - after
	return fmt.Sprintf(
		"%s %s -> %s  %s  %s",
		styleTitle.Render("crossings:"),
		styleValue.Render(fmt.Sprintf("%d", before)),
		styleSuccess.Render(fmt.Sprintf("%d", after)),
		styleDim.Render(fmt.Sprintf("(-%d)", delta)),
		styleDim.Render(fmt.Sprintf("in %s", elapsed)),
	)
}
