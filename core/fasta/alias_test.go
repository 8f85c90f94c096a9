package fasta

import (
	"testing"
)

func TestLoadAliasTable(t *testing.T) {
	path := write(t, "chrmap.tsv",
		"# comment line\n"+
			"chrI\tI\tchromosome1\n"+
			"chrII\tII\n"+
			"chrM\tMT\n"+
			"chrMT\tMT\n"+ // duplicate alias: last write wins
			"orphan\n") // canonical with no aliases contributes nothing

	aliases, err := LoadAliasTable(path)
	if err != nil {
		t.Fatalf("LoadAliasTable: %v", err)
	}

	want := map[string]string{
		"I":           "chrI",
		"chromosome1": "chrI",
		"II":          "chrII",
		"MT":          "chrMT",
	}
	if len(aliases) != len(want) {
		t.Fatalf("table has %d entries, want %d: %v", len(aliases), len(want), aliases)
	}
	for alias, canonical := range want {
		if got := aliases[alias]; got != canonical {
			t.Errorf("aliases[%q] = %q, want %q", alias, got, canonical)
		}
	}
}

func TestLoadAliasTableNoPath(t *testing.T) {
	aliases, err := LoadAliasTable("")
	if err != nil {
		t.Fatalf("empty path must not error: %v", err)
	}
	if len(aliases) != 0 {
		t.Fatalf("empty path yielded %d entries", len(aliases))
	}
}

func TestLoadAliasTableMissingFile(t *testing.T) {
	if _, err := LoadAliasTable("does-not-exist.tsv"); err == nil {
		t.Fatal("expected an error when a requested alias file cannot be opened")
	}
}
