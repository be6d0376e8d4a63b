package huffman

import (
	"encoding/binary"

	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/internal/cerr"
)

const alphabetSize = 256

// Compress implements the standalone static-Huffman codec named in
// spec.md: a single canonical Huffman table is built from the whole
// input's byte frequencies and transmitted as a 256-entry code-length
// header ahead of the encoded bit stream. Unlike DEFLATE there is no
// block splitting and no end-of-block symbol — the header carries the
// original length instead, so the decoder knows exactly how many
// symbols to decode.
func Compress(src []byte) []byte {
	out := make([]byte, 4+alphabetSize)
	binary.LittleEndian.PutUint32(out, uint32(len(src)))

	if len(src) == 0 {
		return out
	}

	var freq [alphabetSize]int
	for _, b := range src {
		freq[b]++
	}

	tree := BuildTree(freq[:])
	lengths := CodeLengths(tree, alphabetSize)
	for sym, l := range lengths {
		out[4+sym] = byte(l)
	}
	table := NewTable(lengths)

	w := bitio.NewWriterSize(len(src))
	for _, b := range src {
		table.Encode(w, int(b))
	}
	w.Flush()

	return append(out, w.Bytes()...)
}

// Uncompress reverses Compress.
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 4+alphabetSize {
		return nil, cerr.ErrShortInput
	}
	origLen := binary.LittleEndian.Uint32(src)
	if origLen == 0 {
		return []byte{}, nil
	}

	lengths := make([]int, alphabetSize)
	for sym := range lengths {
		lengths[sym] = int(src[4+sym])
	}
	table := NewTable(lengths)

	r := bitio.NewReader(src[4+alphabetSize:])
	dst := make([]byte, 0, origLen)
	for i := uint32(0); i < origLen; i++ {
		sym, err := table.Decode(r)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(sym))
	}

	return dst, nil
}
