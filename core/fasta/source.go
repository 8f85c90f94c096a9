// core/fasta/source.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// source is the uniquely owned input for one genome read. The reader
// makes two passes over it (contig count, then assembly), so it must be
// seekable: plain files seek in place, while gzip and stdin inputs are
// decompressed or slurped into memory up front.
type source struct {
	rs io.ReadSeeker
	// sizeBound is an upper bound on the base count: the raw byte size
	// of the input. Headers and newlines inflate it, never deflate it.
	sizeBound int64
	closer    io.Closer
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// openSource opens path for a two-pass read. "-" reads stdin. Gzip is
// detected by the 1F 8B magic bytes or a .gz suffix.
func openSource(path string) (*source, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return &source{rs: bytes.NewReader(data), sizeBound: int64(len(data))}, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		data, err := io.ReadAll(gr)
		_ = gr.Close()
		_ = fh.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "decompress %s", path)
		}
		return &source{rs: bytes.NewReader(data), sizeBound: int64(len(data))}, nil
	}

	st, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &source{rs: fh, sizeBound: st.Size(), closer: fh}, nil
}

// newLineScanner wraps r with a line scanner sized for very long
// single-line sequences (64 MiB).
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

// countContigs counts header lines, then rewinds the source so the
// assembler pass starts from the beginning again. The rewind is part of
// the contract, not an optimization.
func countContigs(rs io.ReadSeeker) (int, error) {
	sc := newLineScanner(rs)
	n := 0
	for sc.Scan() {
		b := sc.Bytes()
		if len(b) > 0 && b[0] == '>' {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, errors.Wrap(err, "counting contigs")
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "rewind after contig count")
	}
	return n, nil
}
