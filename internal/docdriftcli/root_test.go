package docdriftcli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpContainsSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	for _, want := range []string{"docdrift", "check", "ranges", "history"} {
		if !strings.Contains(s, want) {
			t.Fatalf("help missing %q: %s", want, s)
		}
	}
}

func writeCalcFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.py")
	src := "def calculate(a, b):\n" +
		"    \"\"\"Add two numbers.\"\"\"\n" +
		"    return a + b\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRangesCommand(t *testing.T) {
	path := writeCalcFile(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"ranges", path, "calculate"})
	out, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, want := range []string{
		"definition  1-3",
		"signature   1-1",
		"docstring   2-2",
		"body        1-1, 3-3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRangesCommandUnknownName(t *testing.T) {
	path := writeCalcFile(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"ranges", path, "missing"})
	out, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "definition  (none)") {
		t.Fatalf("output=%q", out)
	}
}

func TestRangesCommandJSONL(t *testing.T) {
	path := writeCalcFile(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"ranges", path, "calculate", "--jsonl"})
	out, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `{"category":"signature","start":1,"end":1}`) {
		t.Fatalf("output=%q", out)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.py"), "calculate"})
	if _, _, err := ExecuteForTest(cmd); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// A file outside any repository produces per-range failure text, which
// parses to empty history, so the check reports no drift rather than
// failing.
func TestCheckCommandOutsideRepository(t *testing.T) {
	path := writeCalcFile(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"check", path, "calculate"})
	out, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "[+] no drift detected") {
		t.Fatalf("output=%q", out)
	}
}
