package lz77

import (
	"encoding/binary"

	"github.com/flatebench/codec/internal/cerr"
)

const (
	tagLiteral = 0
	tagMatch   = 1
)

// Compress runs the match finder over the whole of src and frames the
// resulting tokens directly, without an entropy-coding stage: each token
// is a one-byte tag followed by its payload (a literal byte, or a 2-byte
// little-endian distance and a 1-byte length-minus-MinMatchLength). This
// is the standalone LZ77 codec named in spec.md — a thinner sibling of
// the DEFLATE encoder in package deflate, which adds Huffman entropy
// coding on top of the same match finder.
func Compress(src []byte) []byte {
	tokens := FindMatches(src, 0, len(src))

	out := make([]byte, 4, 4+len(tokens)*4)
	binary.LittleEndian.PutUint32(out, uint32(len(src)))

	for _, t := range tokens {
		if t.IsLiteral {
			out = append(out, tagLiteral, t.Literal)
			continue
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(t.Match.Distance))
		out = append(out, tagMatch, buf[0], buf[1], byte(t.Match.Length-MinMatchLength))
	}

	return out
}

// Uncompress reverses Compress.
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 4 {
		return nil, cerr.ErrShortInput
	}
	origLen := binary.LittleEndian.Uint32(src)
	src = src[4:]

	dst := make([]byte, 0, origLen)
	for i := 0; i < len(src); {
		switch src[i] {
		case tagLiteral:
			if i+1 >= len(src) {
				return nil, cerr.ErrShortInput
			}
			dst = append(dst, src[i+1])
			i += 2
		case tagMatch:
			if i+4 > len(src) {
				return nil, cerr.ErrShortInput
			}
			distance := int(binary.LittleEndian.Uint16(src[i+1 : i+3]))
			length := int(src[i+3]) + MinMatchLength
			if distance < 1 || distance > len(dst) {
				return nil, cerr.ErrCorrupt
			}
			start := len(dst) - distance
			for j := 0; j < length; j++ {
				dst = append(dst, dst[start+j])
			}
			i += 4
		default:
			return nil, cerr.ErrCorrupt
		}
	}

	if uint32(len(dst)) != origLen {
		return nil, cerr.ErrFrameMismatch
	}
	return dst, nil
}
