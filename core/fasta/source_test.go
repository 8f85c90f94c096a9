package fasta

import (
	"io"
	"strings"
	"testing"
)

func TestCountContigsRewinds(t *testing.T) {
	rs := strings.NewReader(">a\nACGT\n>b\nGG\n>c\nTT\n")

	n, err := countContigs(rs)
	if err != nil {
		t.Fatalf("countContigs: %v", err)
	}
	if n != 3 {
		t.Fatalf("counted %d contigs, want 3", n)
	}

	// The assembler pass re-reads the same handle from the start; the
	// counter must leave it rewound.
	if pos, _ := rs.Seek(0, io.SeekCurrent); pos != 0 {
		t.Fatalf("source left at offset %d after counting", pos)
	}
	first := make([]byte, 2)
	if _, err := io.ReadFull(rs, first); err != nil || string(first) != ">a" {
		t.Fatalf("re-read after rewind got %q, %v", first, err)
	}
}

func TestOpenSourcePlainFileSize(t *testing.T) {
	const data = ">c\nACGT\n"
	path := write(t, "plain.fa", data)

	src, err := openSource(path)
	if err != nil {
		t.Fatalf("openSource: %v", err)
	}
	defer func() { _ = src.Close() }()

	if src.sizeBound != int64(len(data)) {
		t.Fatalf("sizeBound = %d, want %d", src.sizeBound, len(data))
	}
}
