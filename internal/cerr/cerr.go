// Package cerr holds the error taxonomy shared by every codec in this
// module, so that errors.Is comparisons are consistent whether the caller
// is decoding RLE, LZW, or DEFLATE.
package cerr

import "errors"

// ErrCorrupt reports malformed input that cannot be decoded: an unknown
// block type, an invalid Huffman code, a back-reference before the start
// of the output, or similar.
var ErrCorrupt = errors.New("cerr: corrupt input")

// ErrFrameMismatch reports a decoded stream whose trailer (length, CRC-32,
// or equivalent framing field) disagrees with the data actually decoded.
var ErrFrameMismatch = errors.New("cerr: frame mismatch")

// ErrShortInput reports an input buffer too small to contain a valid
// encoding of any length (missing header, truncated trailer, and so on).
var ErrShortInput = errors.New("cerr: input too short")
