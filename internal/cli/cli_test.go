package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with --config under dir and returns stdout.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand("test")
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCLIPaths(t *testing.T) {
	c := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo)
	c.configPath = filepath.Join("state", "config.json")

	if got := c.stateDir(); got != "state" {
		t.Errorf("stateDir() = %q, want %q", got, "state")
	}
	if got := c.inventoryFile(); got != filepath.Join("state", "inventory.json") {
		t.Errorf("inventoryFile() = %q", got)
	}
	if got := c.templatesFile(); got != filepath.Join("state", "templates.json") {
		t.Errorf("templatesFile() = %q", got)
	}
}

func TestCLIDefaultConfigFile(t *testing.T) {
	c := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo)
	got := c.configFile()
	if !strings.HasSuffix(got, filepath.Join(".binpack", "config.json")) {
		t.Errorf("configFile() = %q, want ~/.binpack/config.json", got)
	}
}

func TestHeuristicsCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "heuristics")
	if err != nil {
		t.Fatalf("heuristics: %v", err)
	}
	for _, want := range []string{
		"bintree", "shelf",
		"next_fit", "first_fit", "best_width_fit", "worst_width_fit",
		"best_height_fit", "worst_height_fit", "best_area_fit", "worst_area_fit",
		"max_side",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("heuristics output missing %q", want)
		}
	}
}

func TestRootCommandRejectsUnknownCommand(t *testing.T) {
	if _, err := runCLI(t, t.TempDir(), "unpack"); err == nil {
		t.Error("expected error for unknown command")
	}
}
