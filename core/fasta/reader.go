// core/fasta/reader.go
package fasta

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"refgenome/core/genome"
)

// Options configures one genome read.
type Options struct {
	// NameTerminators lists characters (besides whitespace and line
	// ends) that end a contig name in delimiter mode.
	NameTerminators string
	// SpaceEndsName makes space and tab terminate the name too.
	SpaceEndsName bool
	// Padding is the number of 'n' filler bases inserted before every
	// contig and once more after the last one.
	Padding int
	// Tag, when non-empty, switches name extraction to tag mode:
	// the name is the value of the >...|TAG|value|... header field.
	Tag string
	// AliasFile optionally remaps extracted names; see LoadAliasTable.
	AliasFile string
	// AltSink, when non-nil, observes every contig during the parse and
	// gets one post-build pass over the finished genome.
	AltSink ContigSink
}

// ContigSink is the alternate-contig collaborator. OnContig receives
// the raw header line (without its trailing newline) and the resolved
// contig name; PostAdjust runs once after contig lengths are filled in,
// before the table is sorted.
type ContigSink interface {
	OnContig(header []byte, name string)
	PostAdjust(g *genome.Genome) error
}

// Failure classes callers can branch on with errors.Is.
var (
	ErrNoHeader     = errors.New("file does not begin with a contig header")
	ErrTagNotFound  = errors.New("tag not found in header")
	ErrMalformedTag = errors.New("malformed tag: no closing '|'")
)

// validBase marks the byte values allowed into the genome buffer.
var validBase = func() (t [256]bool) {
	for _, c := range []byte("ATCGNatcgn") {
		t[c] = true
	}
	return
}()

// ReadGenome parses a FASTA file into a flat padded genome in one
// streaming pass, after two cheap pre-passes: the raw file size bounds
// the base count (headers and newlines only ever over-estimate), and a
// header-line count sizes the contig table. Fatal format errors return
// no genome; unrecognized base characters are coerced to 'N' with a
// single warning per read.
func ReadGenome(path string, opts Options) (*genome.Genome, error) {
	aliases, err := LoadAliasTable(opts.AliasFile)
	if err != nil {
		return nil, err
	}

	src, err := openSource(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open FASTA %s", path)
	}
	defer func() { _ = src.Close() }()

	nContigs, err := countContigs(src.rs)
	if err != nil {
		return nil, err
	}

	// One padding run per contig plus the trailing one.
	estimate := src.sizeBound + int64(nContigs+1)*int64(opts.Padding)
	g := genome.New(estimate, nContigs+1, opts.Padding)

	if err := assemble(src, g, aliases, opts); err != nil {
		return nil, err
	}
	return g, nil
}

// assemble is the main pass: a two-state machine (before the first
// contig, inside a contig) that emits padding, contig boundaries, and
// normalized bases into g, then finalizes lengths and sort order.
func assemble(src *source, g *genome.Genome, aliases map[string]string, opts Options) error {
	pad := bytes.Repeat([]byte{'n'}, opts.Padding)
	inContig := false
	warned := false
	var seq []byte // reused normalization buffer

	sc := newLineScanner(src.rs)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			inContig = true

			// Padding goes in ahead of the header so every contig,
			// including the first, starts right after a filler run.
			g.Append(pad)

			name, err := resolveName(line, aliases, opts)
			if err != nil {
				return err
			}
			if opts.AltSink != nil {
				opts.AltSink.OnContig(line, name)
			}
			g.BeginContig(name)
			continue
		}
		if !inContig {
			return errors.Wrapf(ErrNoHeader, "first content line %q", line)
		}
		seq = normalizeInto(seq[:0], line, &warned)
		g.Append(seq)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading FASTA")
	}

	g.Append(pad)
	g.FillInContigLengths()
	if opts.AltSink != nil {
		if err := opts.AltSink.PostAdjust(g); err != nil {
			return err
		}
	}
	g.SortContigsByName()
	return nil
}

// normalizeInto appends the normalized form of line to dst: bases are
// uppercased, then 'N' is re-lowercased so stored unknown positions
// never text-match a literal N in a read, and anything outside the
// alphabet becomes 'N'. The first coercion of a read logs a warning;
// the rest are silent.
func normalizeInto(dst, line []byte, warned *bool) []byte {
	for _, c := range line {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == 'N' {
			c = 'n'
		}
		if !validBase[c] {
			if !*warned {
				log.Warn("FASTA contains a character that is not a valid base; converting to 'N' (repeats will not be warned about)",
					"char", string(c), "line", string(line))
				*warned = true
			}
			c = 'N'
		}
		dst = append(dst, c)
	}
	return dst
}

// resolveName extracts the contig name from a header line by exactly
// one of the two strategies, then applies the alias table. The result
// is an owned copy, never a view into the scanner's buffer.
func resolveName(header []byte, aliases map[string]string, opts Options) (string, error) {
	var raw []byte
	if opts.Tag != "" {
		v, err := FindTagValue(header, opts.Tag)
		if err != nil {
			return "", err
		}
		raw = v
	} else {
		raw = extractName(header, opts.NameTerminators, opts.SpaceEndsName)
	}
	name := string(raw)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if name == "" {
		return "", errors.Errorf("empty contig name in header %q", header)
	}
	return name, nil
}
