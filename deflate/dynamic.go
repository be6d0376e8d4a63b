package deflate

import (
	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/huffman"
	"github.com/flatebench/codec/internal/cerr"
)

// clToken is one symbol of the code-length alphabet stream: either a
// literal length value (0..15) or one of the three RLE escapes
// (16/17/18), each carrying its extra-bit field (spec §4.G).
type clToken struct {
	symbol    int
	extra     uint32
	extraBits int
}

// packLengths turns a concatenated literal/length + distance code-length
// vector into the RLE token stream spec §4.G describes: runs of equal
// non-zero lengths collapse through symbol 16, runs of zeros collapse
// through symbols 17/18.
func packLengths(lengths []int) []clToken {
	var tokens []clToken
	for i := 0; i < len(lengths); {
		l := lengths[i]
		run := 1
		for i+run < len(lengths) && lengths[i+run] == l {
			run++
		}

		if l == 0 {
			remaining := run
			for remaining >= 11 {
				n := remaining
				if n > 138 {
					n = 138
				}
				tokens = append(tokens, clToken{symbol: 18, extra: uint32(n - 11), extraBits: 7})
				remaining -= n
			}
			for remaining >= 3 {
				n := remaining
				if n > 10 {
					n = 10
				}
				tokens = append(tokens, clToken{symbol: 17, extra: uint32(n - 3), extraBits: 3})
				remaining -= n
			}
			for ; remaining > 0; remaining-- {
				tokens = append(tokens, clToken{symbol: 0})
			}
		} else {
			tokens = append(tokens, clToken{symbol: l})
			remaining := run - 1
			for remaining >= 3 {
				n := remaining
				if n > 6 {
					n = 6
				}
				tokens = append(tokens, clToken{symbol: 16, extra: uint32(n - 3), extraBits: 2})
				remaining -= n
			}
			for ; remaining > 0; remaining-- {
				tokens = append(tokens, clToken{symbol: l})
			}
		}

		i += run
	}
	return tokens
}

// writeDynamicHeader emits the HLIT/HDIST/HCLEN fields, the 19
// code-length-alphabet lengths in their permuted transmission order, and
// the RLE-packed literal/length+distance code lengths (spec §4.G). The
// emitter always transmits the full alphabets, so HLIT=29, HDIST=29 and
// HCLEN=15 unconditionally.
func writeDynamicHeader(w *bitio.Writer, litLengths, distLengths []int) {
	w.WriteBits(uint32(len(litLengths)-257), 5, bitio.LSBFirst)
	w.WriteBits(uint32(len(distLengths)-1), 5, bitio.LSBFirst)
	w.WriteBits(uint32(clAlphabetSize-4), 4, bitio.LSBFirst)

	combined := make([]int, 0, len(litLengths)+len(distLengths))
	combined = append(combined, litLengths...)
	combined = append(combined, distLengths...)
	tokens := packLengths(combined)

	var clFreq [clAlphabetSize]int
	for _, t := range tokens {
		clFreq[t.symbol]++
	}
	clTree := huffman.BuildTree(clFreq[:])
	clLengths := huffman.CodeLengths(clTree, clAlphabetSize)
	clLengths = limitLengths(clLengths, clFreq[:], clMaxCodeLen)
	clTable := huffman.NewTable(clLengths)

	for _, sym := range codeLengthOrder {
		w.WriteBits(uint32(clLengths[sym]), 3, bitio.LSBFirst)
	}

	for _, t := range tokens {
		clTable.Encode(w, t.symbol)
		if t.extraBits > 0 {
			w.WriteBits(t.extra, t.extraBits, bitio.LSBFirst)
		}
	}
}

// readDynamicHeader is the inverse of writeDynamicHeader: it reads the
// header fields and RLE-packed length sequence and reconstructs the two
// per-block canonical tables.
func readDynamicHeader(r *bitio.Reader) (litTable, distTable huffman.Table, err error) {
	hlit := int(r.ReadBits(5, bitio.LSBFirst)) + 257
	hdist := int(r.ReadBits(5, bitio.LSBFirst)) + 1
	hclen := int(r.ReadBits(4, bitio.LSBFirst)) + 4

	if hlit > litAlphabetSize || hdist > distAlphabetSize || hclen > clAlphabetSize {
		return huffman.Table{}, huffman.Table{}, cerr.ErrCorrupt
	}

	clLengths := make([]int, clAlphabetSize)
	for i := 0; i < hclen; i++ {
		clLengths[codeLengthOrder[i]] = int(r.ReadBits(3, bitio.LSBFirst))
	}
	clTable := huffman.NewTable(clLengths)

	total := hlit + hdist
	seq := make([]int, 0, total)
	for len(seq) < total {
		sym, derr := clTable.Decode(r)
		if derr != nil {
			return huffman.Table{}, huffman.Table{}, derr
		}
		switch {
		case sym < 16:
			seq = append(seq, sym)
		case sym == 16:
			if len(seq) == 0 {
				return huffman.Table{}, huffman.Table{}, cerr.ErrCorrupt
			}
			n := int(r.ReadBits(2, bitio.LSBFirst)) + 3
			prev := seq[len(seq)-1]
			for i := 0; i < n; i++ {
				seq = append(seq, prev)
			}
		case sym == 17:
			n := int(r.ReadBits(3, bitio.LSBFirst)) + 3
			for i := 0; i < n; i++ {
				seq = append(seq, 0)
			}
		case sym == 18:
			n := int(r.ReadBits(7, bitio.LSBFirst)) + 11
			for i := 0; i < n; i++ {
				seq = append(seq, 0)
			}
		default:
			return huffman.Table{}, huffman.Table{}, cerr.ErrCorrupt
		}
	}
	if len(seq) != total {
		return huffman.Table{}, huffman.Table{}, cerr.ErrCorrupt
	}

	litTable = huffman.NewTable(seq[:hlit])
	distTable = huffman.NewTable(seq[hlit : hlit+hdist])
	return litTable, distTable, nil
}
