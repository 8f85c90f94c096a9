// core/genome/genome.go
package genome

import "sort"

// Contig is one named sequence record inside the flat genome buffer.
// Begin is the offset of its first real base; the padding run that
// separates contigs sits immediately before it. Length excludes padding
// and is zero until FillInContigLengths runs.
type Contig struct {
	Name   string
	Begin  int64
	Length int64

	// Alternate-locus bookkeeping, filled in by an external contig map
	// after the genome is built.
	IsAlternate bool
	Parent      string
}

// Genome owns a single flat byte buffer of normalized bases plus an
// ordered contig table. Contigs are laid out contiguously in buffer
// order, each preceded by a fixed-size run of 'n' filler, with one more
// run after the last contig. The parser is the sole writer during
// construction; afterwards the genome is read-only.
type Genome struct {
	bases   []byte
	contigs []Contig
	padding int
	sorted  bool
}

// New pre-sizes the buffer for estimatedBases bases and the table for
// contigCapacity entries. estimatedBases <= 0 means the size is unknown
// and the buffer grows as needed.
func New(estimatedBases int64, contigCapacity, padding int) *Genome {
	if estimatedBases < 0 {
		estimatedBases = 0
	}
	if contigCapacity < 0 {
		contigCapacity = 0
	}
	return &Genome{
		bases:   make([]byte, 0, estimatedBases),
		contigs: make([]Contig, 0, contigCapacity),
		padding: padding,
	}
}

// Append adds bases at the current end of the buffer.
func (g *Genome) Append(data []byte) {
	g.bases = append(g.bases, data...)
}

// BeginContig records a new contig starting at the current write
// offset. The caller must already have appended the padding run that
// precedes it. Offsets are monotonically non-decreasing in creation
// order until SortContigsByName reorders the table.
func (g *Genome) BeginContig(name string) {
	g.contigs = append(g.contigs, Contig{Name: name, Begin: int64(len(g.bases))})
}

// FillInContigLengths derives each contig's length from the next
// contig's offset (or the end of the buffer for the last one), minus
// the padding run that separates them.
func (g *Genome) FillInContigLengths() {
	for i := range g.contigs {
		end := int64(len(g.bases))
		if i+1 < len(g.contigs) {
			end = g.contigs[i+1].Begin
		}
		g.contigs[i].Length = end - int64(g.padding) - g.contigs[i].Begin
	}
}

// SortContigsByName reorders the lookup table only; Begin offsets keep
// pointing into the buffer, which stays in file order.
func (g *Genome) SortContigsByName() {
	sort.Slice(g.contigs, func(i, j int) bool {
		return g.contigs[i].Name < g.contigs[j].Name
	})
	g.sorted = true
}

func (g *Genome) NumContigs() int   { return len(g.contigs) }
func (g *Genome) TotalBases() int64 { return int64(len(g.bases)) }
func (g *Genome) Padding() int      { return g.padding }

// Contigs exposes the contig table. The returned slice aliases internal
// state; callers must treat it as read-only.
func (g *Genome) Contigs() []Contig {
	return g.contigs
}

// Substring returns the bases in [offset, offset+length), or nil when
// the span falls outside the buffer. The result aliases the genome
// buffer and must not be modified.
func (g *Genome) Substring(offset, length int64) []byte {
	if offset < 0 || length < 0 || offset+length > int64(len(g.bases)) {
		return nil
	}
	return g.bases[offset : offset+length]
}

// ContigByName looks a contig up by name. Binary search once the table
// has been sorted, linear scan before that.
func (g *Genome) ContigByName(name string) (Contig, bool) {
	if g.sorted {
		i := sort.Search(len(g.contigs), func(i int) bool {
			return g.contigs[i].Name >= name
		})
		if i < len(g.contigs) && g.contigs[i].Name == name {
			return g.contigs[i], true
		}
		return Contig{}, false
	}
	for _, c := range g.contigs {
		if c.Name == name {
			return c, true
		}
	}
	return Contig{}, false
}

// MarkAlternate flags the named contig as an alternate locus of parent.
// It reports whether the contig exists.
func (g *Genome) MarkAlternate(name, parent string) bool {
	for i := range g.contigs {
		if g.contigs[i].Name == name {
			g.contigs[i].IsAlternate = true
			g.contigs[i].Parent = parent
			return true
		}
	}
	return false
}
