// Package smcfile reads and writes the SMC++ observation file format: a
// "# SMC++" header line carrying a JSON payload, followed by
// whitespace-separated int32 observation rows. Files may be plain text,
// gzip-compressed, or bgzf-compressed (the VCF converter bgzips its
// output); compression is detected automatically.
package smcfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"

	"github.com/popgenlab/smcprep/pkg/smcprep"
)

const headerMagic = "# SMC++"

// Header is the JSON payload on the first line of a data file. The
// distinguished and undistinguished entries list sample names per
// population; only their lengths matter to the core.
type Header struct {
	Pids   []string   `json:"pids"`
	Dist   [][]string `json:"dist"`
	Undist [][]string `json:"undist"`
}

// Reader holds one parsed data file.
type Reader struct {
	path   string
	header Header
	contig *smcprep.Contig
}

// Open reads and parses an SMC++ data file.
func Open(path string) (*Reader, error) {
	rc, err := openDecoded(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rc.Close()

	r := &Reader{path: path}
	if err := r.parse(rc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header { return r.header }

// Contig returns the parsed contig. The distinguished-lineage population
// is always first; two-population files stored the other way around are
// swapped on read.
func (r *Reader) Contig() *smcprep.Contig { return r.contig }

func (r *Reader) parse(src io.Reader) error {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return err
		}
		return fmt.Errorf("missing header: %w", smcprep.ErrFormat)
	}
	first := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(first, headerMagic) {
		return fmt.Errorf("not an SMC++ data file: %w", smcprep.ErrFormat)
	}
	if err := json.Unmarshal([]byte(first[len(headerMagic):]), &r.header); err != nil {
		return fmt.Errorf("bad header: %v: %w", err, smcprep.ErrFormat)
	}
	if len(r.header.Pids) == 0 {
		return fmt.Errorf("header lacks population ids, data format is too old (re-run vcf2smc): %w", smcprep.ErrFormat)
	}

	width := 1 + 3*len(r.header.Pids)
	var data [][]int32
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseRow(line, width)
		if err != nil {
			return err
		}
		data = append(data, row)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("no observations: %w", smcprep.ErrEmptyInput)
	}

	c := &smcprep.Contig{
		Data: data,
		PID:  r.header.Pids,
		N:    make([]int, len(r.header.Pids)),
		A:    make([]int, len(r.header.Pids)),
		FN:   r.path,
	}
	for i := range r.header.Pids {
		if i < len(r.header.Dist) {
			c.A[i] = len(r.header.Dist[i])
		}
		if i < len(r.header.Undist) {
			c.N[i] = len(r.header.Undist[i])
		}
	}
	r.swapPopulations(c)
	r.contig = c
	return nil
}

func parseRow(line string, width int) ([]int32, error) {
	fields := strings.Fields(line)
	if len(fields) != width {
		return nil, fmt.Errorf("row has %d fields, want %d: %w", len(fields), width, smcprep.ErrFormat)
	}
	row := make([]int32, width)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f, smcprep.ErrFormat)
		}
		row[i] = int32(v)
	}
	if row[0] < 1 {
		return nil, fmt.Errorf("row has span %d: %w", row[0], smcprep.ErrFormat)
	}
	return row, nil
}

// swapPopulations puts the population holding the distinguished lineages
// first, permuting the observation columns to match.
func (r *Reader) swapPopulations(c *smcprep.Contig) {
	if len(c.A) != 2 || c.A[0] != 0 || c.A[1] != 2 {
		return
	}
	c.PID = []string{c.PID[1], c.PID[0]}
	c.N = []int{c.N[1], c.N[0]}
	c.A = []int{c.A[1], c.A[0]}
	reverse2(r.header.Pids)
	if len(r.header.Dist) == 2 {
		reverseStrs(r.header.Dist)
	}
	if len(r.header.Undist) == 2 {
		reverseStrs(r.header.Undist)
	}
	perm := []int{0, 4, 5, 6, 1, 2, 3}
	for i, row := range c.Data {
		swapped := make([]int32, len(row))
		for j, p := range perm {
			swapped[j] = row[p]
		}
		c.Data[i] = swapped
	}
}

func reverse2(s []string)      { s[0], s[1] = s[1], s[0] }
func reverseStrs(s [][]string) { s[0], s[1] = s[1], s[0] }

// openDecoded opens a data file, unwrapping bgzf or gzip compression.
func openDecoded(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var magic [2]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		if _, serr := f.Seek(0, io.SeekStart); serr != nil {
			f.Close()
			return nil, serr
		}
		return f, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	if magic[0] != 0x1f || magic[1] != 0x8b {
		return f, nil
	}
	if bz, err := bgzf.NewReader(f, 1); err == nil {
		return &decodedFile{Reader: bz, f: f}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	return &decodedFile{Reader: gz, f: f}, nil
}

// decodedFile closes both the decompressor and the underlying file.
type decodedFile struct {
	io.Reader
	f *os.File
}

func (d *decodedFile) Close() error {
	if c, ok := d.Reader.(io.Closer); ok {
		c.Close()
	}
	return d.f.Close()
}
