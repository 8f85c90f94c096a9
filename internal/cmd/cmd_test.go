package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// run executes the root command with argv and returns stdout.
func run(t *testing.T, argv ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(argv)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("refgenome %s: %v", strings.Join(argv, " "), err)
	}
	return out.String()
}

func TestLoadReportsContigTable(t *testing.T) {
	fa := write(t, "ref.fa", ">chr2\nACGT\n>chr1 description\nGG\n")

	out := run(t, "load", fa, "--padding", "5")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 table lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "chr1\t") || !strings.HasPrefix(lines[1], "chr2\t") {
		t.Fatalf("table not sorted by name:\n%s", out)
	}
	if !strings.HasSuffix(lines[0], "\t2") || !strings.HasSuffix(lines[1], "\t4") {
		t.Fatalf("lengths wrong:\n%s", out)
	}
}

func TestLoadJSON(t *testing.T) {
	fa := write(t, "ref.fa", ">c\nACGT\n")

	out := run(t, "load", fa, "--padding", "5", "--json")

	for _, want := range []string{`"name": "c"`, `"total_bases": 14`, `"padding": 5`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON report missing %s:\n%s", want, out)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	fa := write(t, "ref.fa", ">b desc\nacgt\n>a\nTTnn\n")
	outPath := filepath.Join(t.TempDir(), "out.fa")

	run(t, "export", fa, "--padding", "5", "--out", outPath, "--prefix", "x_")

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	want := ">x_a\nTTnn\n>x_b\nACGT\n"
	if string(data) != want {
		t.Fatalf("export = %q, want %q", data, want)
	}
}
