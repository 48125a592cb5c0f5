package phonindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/obadx/quran-transcript/internal/runeidx"
)

const (
	rowFileName   = "ph_index.bin"
	refNormFile   = "ref_norm_ph.txt"
	columnsPerRow = 7
)

// Save persists the index to dir as two files: a row-major u16 table
// (ph_index.bin, columnsPerRow columns per row, little-endian) and the
// normalized reference phoneme stream (ref_norm_ph.txt, UTF-8, no trailing
// newline). Spec §6 allows any binary layout with the same semantics; this
// is a flat binary encoding rather than .npy, traded for a stdlib-only
// writer.
func (idx *Index) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("phonindex: creating %s: %w", dir, err)
	}

	rowPath := filepath.Join(dir, rowFileName)
	f, err := os.Create(rowPath)
	if err != nil {
		return fmt.Errorf("phonindex: creating %s: %w", rowPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range idx.Rows {
		cols := [columnsPerRow]uint16{
			row.Sura, row.Aya, row.WordInAya,
			row.UthCharStart, row.UthCharEnd,
			row.PhStart, row.PhEnd,
		}
		for _, c := range cols {
			if err := binary.Write(w, binary.LittleEndian, c); err != nil {
				return fmt.Errorf("phonindex: writing row: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("phonindex: flushing %s: %w", rowPath, err)
	}

	refPath := filepath.Join(dir, refNormFile)
	if err := os.WriteFile(refPath, []byte(idx.RefNorm), 0o644); err != nil {
		return fmt.Errorf("phonindex: writing %s: %w", refPath, err)
	}

	return nil
}

// IndexCorruptError reports that a loaded index's row count disagrees with
// its reference-stream codepoint count (spec §7, IndexCorrupt).
type IndexCorruptError struct {
	Rows           int
	RefNormCPCount int
}

func (e *IndexCorruptError) Error() string {
	return fmt.Sprintf("phonindex: index corrupt: %d rows but ref_norm has %d codepoints", e.Rows, e.RefNormCPCount)
}

// Load reads a previously Saved index from dir and validates the
// rows/ref_norm codepoint-count invariant (spec §6, mandatory load-time
// check).
func Load(dir string) (*Index, error) {
	rowPath := filepath.Join(dir, rowFileName)
	f, err := os.Open(rowPath)
	if err != nil {
		return nil, fmt.Errorf("phonindex: opening %s: %w", rowPath, err)
	}
	defer f.Close()

	var rows []Row
	r := bufio.NewReader(f)
	for {
		var cols [columnsPerRow]uint16
		err := binary.Read(r, binary.LittleEndian, &cols)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("phonindex: reading %s: %w", rowPath, err)
		}
		rows = append(rows, Row{
			Sura: cols[0], Aya: cols[1], WordInAya: cols[2],
			UthCharStart: cols[3], UthCharEnd: cols[4],
			PhStart: cols[5], PhEnd: cols[6],
		})
	}

	refPath := filepath.Join(dir, refNormFile)
	refRaw, err := os.ReadFile(refPath)
	if err != nil {
		return nil, fmt.Errorf("phonindex: reading %s: %w", refPath, err)
	}
	refNorm := string(refRaw)

	cpCount := runeidx.CodepointCount(refNorm)
	if cpCount != len(rows) {
		return nil, &IndexCorruptError{Rows: len(rows), RefNormCPCount: cpCount}
	}

	return &Index{Rows: rows, RefNorm: refNorm}, nil
}
