// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"refgenome/core/genome"
)

// Write renders a completed genome back to FASTA, one record per contig
// in table order: a '>' + prefix + name header, then the contig's bases
// as a single unwrapped line. Padding never appears in the output.
//
// Sequences are deliberately not wrapped at a fixed column width.
func Write(g *genome.Genome, w io.Writer, prefix string) error {
	for _, c := range g.Contigs() {
		bases := g.Substring(c.Begin, c.Length)
		if bases == nil {
			return errors.Errorf("contig %s spans outside the genome buffer", c.Name)
		}
		if _, err := fmt.Fprintf(w, ">%s%s\n", prefix, c.Name); err != nil {
			return errors.Wrapf(err, "write header for contig %s", c.Name)
		}
		if _, err := w.Write(bases); err != nil {
			return errors.Wrapf(err, "write bases for contig %s", c.Name)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrapf(err, "write bases for contig %s", c.Name)
		}
	}
	return nil
}
