// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package unicode_data

import (
	"archive/tar"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/termcells/termcells/tools/utils"
	"github.com/ulikunitz/xz"
)

var _ = fmt.Print

//go:embed data/unicode-data.tar.xz
var compressed_tables []byte

// WidthRange maps the codepoints Start..End (inclusive) to Width cells. A
// Width of -1 marks control characters, which are measured as zero cells.
type WidthRange struct {
	Start, End rune
	Width      int8
}

// CellTable holds the data needed to measure cell widths for one Unicode
// version. Tables are immutable once built.
type CellTable struct {
	Name    string
	Version Version
	// Sorted, disjoint ranges. Codepoints not covered are one cell wide.
	Widths []WidthRange
	// Codepoints that become two cells wide when followed by U+FE0F
	NarrowToWide *utils.Set[rune]
}

func (self *CellTable) String() string {
	return fmt.Sprintf("CellTable{%s, %d ranges}", self.Name, len(self.Widths))
}

func (self *CellTable) IsNarrowToWide(ch rune) bool {
	return self.NarrowToWide.Has(ch)
}

var table_sources = sync.OnceValues(func() (map[string][]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(compressed_tables))
	if err != nil {
		return nil, err
	}
	tr := tar.NewReader(r)
	ans := make(map[string][]byte, len(VERSIONS))
	for {
		hdr, err := tr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, err
		}
		ans[strings.TrimSuffix(hdr.Name, ".txt")] = data
	}
	return ans, nil
})

func parse_hex_rune(x string) (rune, error) {
	n, err := strconv.ParseUint(x, 16, 32)
	return rune(n), err
}

func parse_range(val string, want_width bool) (r WidthRange, err error) {
	fields := strings.Fields(val)
	expected := 2
	if want_width {
		expected = 3
	}
	if len(fields) != expected {
		return r, fmt.Errorf("expected %d fields, got: %#v", expected, val)
	}
	if r.Start, err = parse_hex_rune(fields[0]); err != nil {
		return
	}
	if r.End, err = parse_hex_rune(fields[1]); err != nil {
		return
	}
	if r.End < r.Start {
		return r, fmt.Errorf("range end before start: %#v", val)
	}
	if want_width {
		w, werr := strconv.Atoi(fields[2])
		if werr != nil {
			return r, werr
		}
		if w < -1 || w > 2 {
			return r, fmt.Errorf("invalid width %d", w)
		}
		r.Width = int8(w)
	}
	return
}

func parse_table(name string, raw []byte) (*CellTable, error) {
	v, err := ParseVersion(name)
	if err != nil {
		return nil, err
	}
	ans := &CellTable{Name: name, Version: v, NarrowToWide: utils.NewSet[rune](128), Widths: make([]WidthRange, 0, 512)}
	err = utils.ParseConfData(bytes.NewReader(raw), func(key, val string, line int) error {
		switch key {
		case "w":
			r, err := parse_range(val, true)
			if err != nil {
				return err
			}
			if n := len(ans.Widths); n > 0 && ans.Widths[n-1].End >= r.Start {
				return fmt.Errorf("range %#v is not after the previous range", val)
			}
			ans.Widths = append(ans.Widths, r)
		case "n":
			r, err := parse_range(val, false)
			if err != nil {
				return err
			}
			for ch := r.Start; ch <= r.End; ch++ {
				ans.NarrowToWide.Add(ch)
			}
		default:
			return fmt.Errorf("unknown record type: %#v", key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse cell widths for unicode %s: %w", name, err)
	}
	return ans, nil
}

func load_table(name string) (*CellTable, error) {
	sources, err := table_sources()
	if err != nil {
		return nil, fmt.Errorf("failed to decompress unicode width tables: %w", err)
	}
	raw, found := sources[name]
	if !found {
		return nil, fmt.Errorf("no cell width table for unicode %s", name)
	}
	return parse_table(name, raw)
}
