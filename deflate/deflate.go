// Package deflate implements the DEFLATE encoder/decoder: block
// segmentation, LZ77 match finding, fixed and dynamic Huffman coding,
// stored blocks, and the CRC-32 + length trailer (spec component I, "the
// core"). Compress builds a block's three candidate encodings
// concurrently via errgroup, matching the "three candidate bit streams
// in parallel" requirement, and keeps the smallest.
package deflate

import (
	"encoding/binary"

	"golang.org/x/sync/errgroup"

	"github.com/flatebench/codec/bitio"
	"github.com/flatebench/codec/huffman"
	"github.com/flatebench/codec/internal/cerr"
	"github.com/flatebench/codec/lz77"
)

// BlockSize is the number of source bytes per block, except the last.
const BlockSize = 65535

// tokenFreqs returns literal/length and distance symbol frequencies over
// a block's tokens, with the end-of-block symbol (256) pre-seeded so the
// dynamic table always has at least two distinct literal/length codes.
func tokenFreqs(tokens []lz77.Token) (litFreq [litAlphabetSize]int, distFreq [distAlphabetSize]int) {
	litFreq[endOfBlock] = 1
	for _, t := range tokens {
		if t.IsLiteral {
			litFreq[t.Literal]++
			continue
		}
		litFreq[257+lengthCodeFor(t.Match.Length)]++
		distFreq[distanceCodeFor(t.Match.Distance)]++
	}
	return
}

func buildDynamicTables(tokens []lz77.Token) (litTable, distTable huffman.Table, litLengths, distLengths []int) {
	litFreq, distFreq := tokenFreqs(tokens)

	litTree := huffman.BuildTree(litFreq[:])
	litLengths = huffman.CodeLengths(litTree, litAlphabetSize)
	litLengths = limitLengths(litLengths, litFreq[:], maxCodeLen)

	// A block with no back-references at all has every distance
	// frequency at zero; BuildTree returns nil and CodeLengths yields an
	// all-zero length vector. The distance alphabet still needs to be
	// transmitted, so fall back to a single-symbol table in that case —
	// it is never actually used to encode a distance.
	distTree := huffman.BuildTree(distFreq[:])
	if distTree == nil {
		distFreq[0] = 1
		distTree = huffman.BuildTree(distFreq[:])
	}
	distLengths = huffman.CodeLengths(distTree, distAlphabetSize)
	distLengths = limitLengths(distLengths, distFreq[:], maxCodeLen)

	return huffman.NewTable(litLengths), huffman.NewTable(distLengths), litLengths, distLengths
}

// encodeBlock runs the three candidate encodings of one block
// concurrently, each forked from base's current bit position, and
// returns the smallest.
func encodeBlock(base *bitio.Writer, final bool, src []byte, start, end int) (*bitio.Writer, error) {
	tokens := lz77.FindMatches(src, start, end)

	candidates := make([]*bitio.Writer, 3)
	var g errgroup.Group

	g.Go(func() error {
		w := base.Clone()
		encodeStoredBlock(w, final, src[start:end])
		candidates[0] = w
		return nil
	})
	g.Go(func() error {
		w := base.Clone()
		encodeHuffmanBlock(w, final, blockFixed, tokens, fixedLit, fixedDist, nil)
		candidates[1] = w
		return nil
	})
	g.Go(func() error {
		w := base.Clone()
		litTable, distTable, litLengths, distLengths := buildDynamicTables(tokens)
		encodeHuffmanBlock(w, final, blockDynamic, tokens, litTable, distTable, func() {
			writeDynamicHeader(w, litLengths, distLengths)
		})
		candidates[2] = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Len() < best.Len() {
			best = c
		}
	}
	return best, nil
}

// Compress encodes src into a complete DEFLATE stream: one or more
// blocks followed by a CRC-32 + uncompressed-length trailer (spec §6).
// It never fails on well-formed input.
func Compress(src []byte) []byte {
	w := bitio.NewWriterSize(len(src)/2 + 16)

	for start := 0; ; start += BlockSize {
		end := start + BlockSize
		if end > len(src) {
			end = len(src)
		}
		final := end == len(src)

		next, err := encodeBlock(w, final, src, start, end)
		if err != nil {
			// encodeBlock's goroutines never return an error; this is
			// unreachable for well-formed input.
			panic(err)
		}
		w = next

		if final {
			break
		}
	}

	out := w.Bytes()
	trailer := make([]byte, 8)
	binary.LittleEndian.PutUint32(trailer, CRC32(src))
	binary.LittleEndian.PutUint32(trailer[4:], uint32(len(src)))
	return append(append([]byte(nil), out...), trailer...)
}

// Uncompress reverses Compress, validating the trailer's length and
// CRC-32 against the decoded output (spec §4.I, §7).
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 8 {
		return nil, cerr.ErrShortInput
	}
	body := src[:len(src)-8]
	trailer := src[len(src)-8:]
	wantCRC := binary.LittleEndian.Uint32(trailer)
	wantLen := binary.LittleEndian.Uint32(trailer[4:])

	r := bitio.NewReader(body)
	var dst []byte
	for {
		final, blockType := readBlockHeader(r)

		var err error
		switch blockType {
		case blockStored:
			dst, err = decodeStoredBlock(r, dst)
		case blockFixed:
			dst, err = decodeHuffmanBlock(r, dst, &fixedLit, &fixedDist)
		case blockDynamic:
			var litTable, distTable huffman.Table
			litTable, distTable, err = readDynamicHeader(r)
			if err == nil {
				dst, err = decodeHuffmanBlock(r, dst, &litTable, &distTable)
			}
		default:
			err = cerr.ErrCorrupt
		}
		if err != nil {
			return nil, err
		}
		if final {
			break
		}
	}

	if uint32(len(dst)) != wantLen {
		return nil, cerr.ErrFrameMismatch
	}
	if CRC32(dst) != wantCRC {
		return nil, cerr.ErrFrameMismatch
	}
	return dst, nil
}
