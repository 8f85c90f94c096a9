// core/fasta/name.go
package fasta

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// extractName implements delimiter mode: the name starts right after
// the '>' sigil and runs to the earliest of the configured terminator
// characters, space/tab when spaceEnds is set, or a stray line
// terminator. With no terminator the whole rest of the line is the
// name.
func extractName(header []byte, terminators string, spaceEnds bool) []byte {
	rest := header[1:]
	for i, c := range rest {
		switch {
		case c == '\n' || c == '\r':
			return rest[:i]
		case spaceEnds && (c == ' ' || c == '\t'):
			return rest[:i]
		case strings.IndexByte(terminators, c) >= 0:
			return rest[:i]
		}
	}
	return rest
}

// FindTagValue locates a tag in a header of the form >...|TAG|value|...
// and returns the value span. A match must be immediately preceded by
// '>' or '|' and immediately followed by '|'; earlier unqualified
// occurrences of the tag text are skipped. A qualified tag with no
// closing '|' after its value is ErrMalformedTag; no qualified
// occurrence at all is ErrTagNotFound.
func FindTagValue(header []byte, tag string) ([]byte, error) {
	t := []byte(tag)
	for off := 0; ; {
		i := bytes.Index(header[off:], t)
		if i < 0 {
			return nil, errors.Wrapf(ErrTagNotFound, "tag %q in header %q", tag, header)
		}
		i += off
		preceded := i > 0 && (header[i-1] == '>' || header[i-1] == '|')
		followed := i+len(t) < len(header) && header[i+len(t)] == '|'
		if !preceded || !followed {
			off = i + 1
			continue
		}
		start := i + len(t) + 1
		end := bytes.IndexByte(header[start:], '|')
		if end < 0 {
			return nil, errors.Wrapf(ErrMalformedTag, "tag %q in header %q", tag, header)
		}
		return header[start : start+end], nil
	}
}
