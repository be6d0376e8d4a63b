package deflate

import (
	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/huffman"
	"github.com/flatebench/codec/internal/cerr"
	"github.com/flatebench/codec/lz77"
)

const (
	blockStored  = 0
	blockFixed   = 1
	blockDynamic = 2
)

// writeBlockHeader writes the 3-bit block header (spec §3 block
// descriptor): a last-block flag followed by a 2-bit type, both LSB-first
// per the block-header convention in spec §4.A.
func writeBlockHeader(w *bitio.Writer, final bool, blockType int) {
	var v uint32
	if final {
		v |= 1
	}
	v |= uint32(blockType) << 1
	w.WriteBits(v, 3, bitio.LSBFirst)
}

func readBlockHeader(r *bitio.Reader) (final bool, blockType int) {
	v := r.ReadBits(3, bitio.LSBFirst)
	return v&1 != 0, int((v >> 1) & 0x3)
}

// encodeStoredBlock writes a byte-aligned stored (uncompressed) block
// (spec §4.H): after the block header, the writer flushes to a byte
// boundary, then emits a 16-bit LSB-first length, its one's complement,
// and the raw bytes.
func encodeStoredBlock(w *bitio.Writer, final bool, data []byte) {
	writeBlockHeader(w, final, blockStored)
	w.Flush()

	n := uint16(len(data))
	w.WriteBits(uint32(n), 16, bitio.LSBFirst)
	w.WriteBits(uint32(^n), 16, bitio.LSBFirst)
	for _, b := range data {
		w.WriteBits(uint32(b), 8, bitio.LSBFirst)
	}
}

func decodeStoredBlock(r *bitio.Reader, dst []byte) ([]byte, error) {
	r.Flush()
	length := r.ReadBits(16, bitio.LSBFirst)
	complement := r.ReadBits(16, bitio.LSBFirst)
	if uint16(length) != ^uint16(complement) {
		return nil, cerr.ErrCorrupt
	}
	for i := uint32(0); i < length; i++ {
		dst = append(dst, byte(r.ReadBits(8, bitio.LSBFirst)))
	}
	return dst, nil
}

// encodeHuffmanBlock writes the common body of a fixed- or dynamic-
// Huffman block: the token stream encoded with litTable/distTable,
// followed by the end-of-block symbol. writeHeader, when non-nil, emits
// the dynamic table header (spec §4.G) after the block header and
// before the token stream; fixed blocks pass nil since the tables are
// implicit.
func encodeHuffmanBlock(w *bitio.Writer, final bool, blockType int, tokens []lz77.Token, litTable, distTable huffman.Table, writeHeader func()) {
	writeBlockHeader(w, final, blockType)
	if writeHeader != nil {
		writeHeader()
	}

	for _, t := range tokens {
		if t.IsLiteral {
			litTable.Encode(w, int(t.Literal))
			continue
		}

		lc := lengthCodeFor(t.Match.Length)
		litTable.Encode(w, 257+lc)
		w.WriteBits(uint32(t.Match.Length-int(lengthBase[lc])), int(lengthExtraBits[lc]), bitio.LSBFirst)

		dc := distanceCodeFor(t.Match.Distance)
		distTable.Encode(w, dc)
		w.WriteBits(uint32(t.Match.Distance-int(distanceBase[dc])), int(distanceExtraBits[dc]), bitio.LSBFirst)
	}

	litTable.Encode(w, endOfBlock)
}

// decodeHuffmanBlock decodes a fixed- or dynamic-Huffman block body,
// appending literal output to dst until the end-of-block symbol.
func decodeHuffmanBlock(r *bitio.Reader, dst []byte, litTable, distTable *huffman.Table) ([]byte, error) {
	for {
		sym, err := litTable.Decode(r)
		if err != nil {
			return nil, err
		}
		if sym == endOfBlock {
			return dst, nil
		}
		if sym < 256 {
			dst = append(dst, byte(sym))
			continue
		}

		lc := sym - 257
		if lc < 0 || lc >= len(lengthBase) {
			return nil, cerr.ErrCorrupt
		}
		length := int(lengthBase[lc]) + int(r.ReadBits(int(lengthExtraBits[lc]), bitio.LSBFirst))

		dsym, err := distTable.Decode(r)
		if err != nil {
			return nil, err
		}
		if dsym < 0 || dsym >= len(distanceBase) {
			return nil, cerr.ErrCorrupt
		}
		distance := int(distanceBase[dsym]) + int(r.ReadBits(int(distanceExtraBits[dsym]), bitio.LSBFirst))

		if distance < 1 || distance > len(dst) {
			return nil, cerr.ErrCorrupt
		}
		start := len(dst) - distance
		for i := 0; i < length; i++ {
			dst = append(dst, dst[start+i])
		}
	}
}
