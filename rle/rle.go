// Package rle implements the simplest of the standalone codecs: runs of
// up to 255 identical bytes are stored as a (count, value) pair.
// Grounded on original_source/rle/rle.c.
package rle

import (
	"encoding/binary"

	"github.com/flatebench/codec/internal/cerr"
)

// Compress run-length encodes src: a 4-byte little-endian original
// length, then a sequence of (count byte, value byte) pairs.
func Compress(src []byte) []byte {
	out := make([]byte, 4, 4+len(src))
	binary.LittleEndian.PutUint32(out, uint32(len(src)))

	for i := 0; i < len(src); {
		j := 1
		for j < 255 && i+j < len(src) && src[i+j] == src[i] {
			j++
		}
		out = append(out, byte(j), src[i])
		i += j
	}
	return out
}

// Uncompress reverses Compress.
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 4 {
		return nil, cerr.ErrShortInput
	}
	origLen := binary.LittleEndian.Uint32(src)
	dst := make([]byte, 0, origLen)

	body := src[4:]
	for i := 0; i < len(body); i += 2 {
		if i+1 >= len(body) {
			return nil, cerr.ErrCorrupt
		}
		count, value := body[i], body[i+1]
		for n := byte(0); n < count; n++ {
			dst = append(dst, value)
		}
	}

	if uint32(len(dst)) != origLen {
		return nil, cerr.ErrFrameMismatch
	}
	return dst, nil
}
