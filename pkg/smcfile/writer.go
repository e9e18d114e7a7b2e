package smcfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/popgenlab/smcprep/pkg/smcprep"
)

// Writer writes one contig back out in SMC++ format, gzip-compressed.
type Writer struct {
	path   string
	header Header
}

// NewWriter prepares a writer for the given output path. The header is
// usually carried over from the file the contig was loaded from.
func NewWriter(path string, header Header) *Writer {
	return &Writer{path: path, header: header}
}

// WriteContig writes the header line and all observation rows.
func (w *Writer) WriteContig(c *smcprep.Contig) error {
	hdr, err := json.Marshal(w.header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	gz := gzip.NewWriter(f)
	bw := bufio.NewWriter(gz)

	write := func() error {
		if _, err := fmt.Fprintf(bw, "%s %s\n", headerMagic, hdr); err != nil {
			return err
		}
		var line []byte
		for _, row := range c.Data {
			line = line[:0]
			for i, v := range row {
				if i > 0 {
					line = append(line, ' ')
				}
				line = strconv.AppendInt(line, int64(v), 10)
			}
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	werr := write()
	if err := gz.Close(); werr == nil {
		werr = err
	}
	if err := f.Close(); werr == nil {
		werr = err
	}
	if werr != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, werr)
	}
	return nil
}
