// core/altmap/altmap.go

// Package altmap tracks alternate-locus (alt/haplotype) contigs for a
// genome read. It satisfies the reader's ContigSink contract: it is
// told about every contig as it is parsed and then marks the known alt
// contigs on the finished genome.
package altmap

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"refgenome/core/genome"
)

// Map relates alternate-locus contig names to the primary contigs they
// are alternates of.
type Map struct {
	parents map[string]string // alt contig name -> parent contig name
	seen    map[string]string // resolved name -> raw header line
}

// Load reads an alternate-locus map file: '#' lines are comments, the
// rest are "alt-name<TAB>parent-name". Entries naming contigs that
// never appear in the FASTA are allowed and ignored at adjust time.
func Load(path string) (*Map, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open alt-contig map %s", path)
	}
	defer func() { _ = fh.Close() }()

	m := &Map{
		parents: make(map[string]string),
		seen:    make(map[string]string),
	}
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		m.parents[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading alt-contig map %s", path)
	}
	return m, nil
}

// OnContig records a contig observed during parsing, keyed by its
// resolved name, keeping an owned copy of the raw header line.
func (m *Map) OnContig(header []byte, name string) {
	m.seen[name] = string(header)
}

// PostAdjust marks every known alt contig that actually occurred in the
// parse as an alternate locus of its parent.
func (m *Map) PostAdjust(g *genome.Genome) error {
	for alt, parent := range m.parents {
		if _, ok := m.seen[alt]; !ok {
			continue
		}
		if !g.MarkAlternate(alt, parent) {
			return errors.Errorf("alt contig %s was observed but is missing from the genome", alt)
		}
	}
	return nil
}

// Header returns the raw header line recorded for a contig, if the
// contig was seen during the parse.
func (m *Map) Header(name string) (string, bool) {
	h, ok := m.seen[name]
	return h, ok
}
