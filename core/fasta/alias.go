// core/fasta/alias.go
package fasta

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadAliasTable parses an optional contig-name remap file into an
// alias → canonical-name table. An empty path is not an error and
// yields an empty table. Lines beginning with '#' are comments; the
// rest are tab-delimited: the first token is the canonical name, every
// later token is an alias for it. Duplicate aliases resolve
// last-write-wins, with no diagnostic.
func LoadAliasTable(path string) (map[string]string, error) {
	aliases := make(map[string]string)
	if path == "" {
		return aliases, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open alias file %s", path)
	}
	defer func() { _ = fh.Close() }()

	sc := newLineScanner(fh)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == '\t' || r == '\r' || r == '\n'
		})
		if len(tokens) == 0 {
			continue
		}
		canonical := tokens[0]
		for _, alias := range tokens[1:] {
			aliases[alias] = canonical
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading alias file %s", path)
	}
	return aliases, nil
}
