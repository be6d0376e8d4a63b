package huffman

import (
	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/internal/cerr"
)

// Table is a canonical Huffman table: parallel Codes/Lengths arrays
// indexed by symbol (spec §3's Huffman table entity), plus a decode
// index built eagerly by NewTable.
type Table struct {
	Codes     []uint16
	Lengths   []int
	MaxLength int

	decode map[uint32]int
}

// NewTable builds a Table from a vector of code lengths, indexed by
// symbol (0 = symbol absent from the alphabet). The decode index is
// built eagerly so a Table can be shared read-only across concurrent
// Decode calls (DEFLATE's fixed tables are package-level singletons
// decoded from multiple goroutines — spec §5 permits concurrent calls on
// disjoint inputs).
func NewTable(lengths []int) Table {
	codes := Canonical(lengths)
	maxLen := 0
	decode := make(map[uint32]int, len(lengths))
	for sym, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
		if l > 0 {
			decode[decodeKey(l, uint32(codes[sym]))] = sym
		}
	}
	return Table{Codes: codes, Lengths: lengths, MaxLength: maxLen, decode: decode}
}

func decodeKey(length int, code uint32) uint32 {
	return uint32(length)<<24 | code
}

// NewTableFromCodes builds a Table from an already-computed lengths/codes
// pair instead of deriving codes via Canonical. DEFLATE's fixed
// literal/length table needs this: its canonical codes are only correct
// when computed over the full 288-slot alphabet (including two unused
// phantom symbols), then truncated — Canonical(lengths) over the
// truncated 286-symbol slice alone would get a different length-8
// population and produce the wrong codes.
func NewTableFromCodes(lengths []int, codes []uint16) Table {
	maxLen := 0
	decode := make(map[uint32]int, len(lengths))
	for sym, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
		if l > 0 {
			decode[decodeKey(l, uint32(codes[sym]))] = sym
		}
	}
	return Table{Codes: codes, Lengths: lengths, MaxLength: maxLen, decode: decode}
}

// Decode reads one symbol from r: bits are accumulated MSB-first into a
// growing integer, and after each bit the table is checked for a code of
// that length matching the accumulated value (spec §4.E). Returns
// ErrCorrupt if the bit stream is exhausted before any code matches.
func (t *Table) Decode(r *bitio.Reader) (int, error) {
	var c uint32
	for length := 1; length <= t.MaxLength; length++ {
		c = (c << 1) | r.ReadBits(1, bitio.MSBFirst)
		if sym, ok := t.decode[decodeKey(length, c)]; ok {
			return sym, nil
		}
		if r.Exhausted() {
			break
		}
	}
	return 0, cerr.ErrCorrupt
}

// Encode writes symbol sym's canonical code to w, MSB-first. It is the
// caller's responsibility to ensure sym is present in the table
// (Lengths[sym] > 0).
func (t *Table) Encode(w *bitio.Writer, sym int) {
	w.WriteBits(uint32(t.Codes[sym]), t.Lengths[sym], bitio.MSBFirst)
}
