// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const wireFixture = `2,4,3,2
0,1
2,3
0,3,1
1,2,1
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.wire")
	if err := os.WriteFile(path, []byte(wireFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRootCommandCheck(t *testing.T) {
	c := New(LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"check", writeFixture(t)})
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		t.Errorf("check command error = %v", err)
	}
}

func TestRootCommandOptimizeWritesOut(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.wire")

	c := New(LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"optimize", writeFixture(t), "--out", outPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("optimize command error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Error("optimize wrote an empty output file")
	}
}

func TestRootCommandOptimizeJSONOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	configPath := filepath.Join(t.TempDir(), "layoutctl.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := New(LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"optimize", writeFixture(t), "--out", outPath, "--config", configPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("optimize command error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte(`"ranks"`)) {
		t.Errorf("optimize --config output.format=json wrote %q, want JSON containing \"ranks\"", data)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error = %v", err)
	}
	if cfg.Sweep.RejectWorseningSouth {
		t.Error("default RejectWorseningSouth = true, want false")
	}
	if cfg.Output.Format != "wire" {
		t.Errorf("default Output.Format = %q, want %q", cfg.Output.Format, "wire")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layoutctl.toml")
	contents := "[sweep]\nreject_worsening_south = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !cfg.Sweep.RejectWorseningSouth {
		t.Error("RejectWorseningSouth = false, want true")
	}
}
