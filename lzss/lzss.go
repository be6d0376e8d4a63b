// Package lzss implements LZSS: an LZ77 variant with a fixed 255-byte
// lookback window and single-byte offset/length fields, so a match is
// only emitted when it actually shrinks the output (the minimum match
// length is long enough relative to the 2-byte match encoding).
// Grounded on original_source/lzss/lzss.c.
package lzss

import (
	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/internal/cerr"
)

const (
	windowSize  = 255
	minMatchLen = 3
)

// Compress writes a 32-bit MSB-first original length, then the first
// min(windowSize, len(src)) bytes verbatim, then a tag bit per remaining
// position: 1 followed by an (offset, length) byte pair for a match, or
// 0 followed by a literal byte.
func Compress(src []byte) []byte {
	w := bitio.NewWriterSize(len(src))
	w.WriteBits(uint32(len(src)), 32, bitio.MSBFirst)

	prefix := len(src)
	if prefix > windowSize {
		prefix = windowSize
	}
	for i := 0; i < prefix; i++ {
		w.WriteBits(uint32(src[i]), 8, bitio.MSBFirst)
	}

	winPos, pos := 0, prefix
	for pos < len(src) {
		remaining := len(src) - pos
		bestLen, bestOff := 0, 0

		for i := 0; i < windowSize; i++ {
			maxLen := windowSize - i
			if remaining < maxLen {
				maxLen = remaining
			}
			j := 0
			for j < maxLen && src[winPos+i+j] == src[pos+j] {
				j++
			}
			if j > bestLen {
				bestLen, bestOff = j, windowSize-i
			}
		}

		if bestLen >= minMatchLen {
			w.WriteBits(1, 1, bitio.MSBFirst)
			w.WriteBits(uint32(bestOff), 8, bitio.MSBFirst)
			w.WriteBits(uint32(bestLen), 8, bitio.MSBFirst)
			winPos += bestLen
			pos += bestLen
			continue
		}

		w.WriteBits(0, 1, bitio.MSBFirst)
		w.WriteBits(uint32(src[pos]), 8, bitio.MSBFirst)
		winPos++
		pos++
	}

	w.Flush()
	return w.Bytes()
}

// Uncompress reverses Compress.
func Uncompress(src []byte) ([]byte, error) {
	r := bitio.NewReader(src)
	origLen := r.ReadBits(32, bitio.MSBFirst)

	prefix := int(origLen)
	if prefix > windowSize {
		prefix = windowSize
	}

	dst := make([]byte, 0, origLen)
	for i := 0; i < prefix; i++ {
		dst = append(dst, byte(r.ReadBits(8, bitio.MSBFirst)))
	}

	for uint32(len(dst)) < origLen {
		tag := r.ReadBits(1, bitio.MSBFirst)
		if tag == 1 {
			off := int(r.ReadBits(8, bitio.MSBFirst))
			length := int(r.ReadBits(8, bitio.MSBFirst))
			if off < 1 || off > len(dst) {
				return nil, cerr.ErrCorrupt
			}
			start := len(dst) - off
			for k := 0; k < length; k++ {
				dst = append(dst, dst[start+k])
			}
			continue
		}
		dst = append(dst, byte(r.ReadBits(8, bitio.MSBFirst)))
	}

	return dst, nil
}
