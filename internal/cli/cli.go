// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the layoutctl command-line interface: optimize,
// render, and check subcommands wrapping the layered package.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to stderr.
func New(level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logWriter, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with optimize/render/check
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "layoutctl",
		Short:        "layoutctl minimizes edge crossings in layered graph drawings",
		Long:         "layoutctl loads a layered (ranked) graph, runs the weighted barycenter crossing-minimization sweep, and writes the optimized orders, a rendering, or a pass/fail report.",
		SilenceUsage: true,
	}

	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())

	return root
}
