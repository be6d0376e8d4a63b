package deflate

import "github.com/flatebench/codec/huffman"

// fixedLit and fixedDist hold the DEFLATE default literal/length and distance
// tables (spec §4.F, block type 1), built once and reused by every
// fixed-Huffman block.
var fixedLit, fixedDist = buildFixedTables()

func buildFixedTables() (huffman.Table, huffman.Table) {
	// The canonical code for symbols 0..285 depends on the code-length
	// histogram of the *whole* fixed alphabet, which historically
	// includes two further 8-bit codes for symbols 286 and 287 that are
	// defined but never emitted. Build the canonical codes over all 288
	// slots so the length-8 class has the right population (152, not
	// 144+6), matching the classic fixed-code values in spec §4.F
	// (symbols 0..143 get codes 48..191, 144..255 get 400..511,
	// 256..279 get 0..23, 280..285 get 192..197), then keep only the
	// first litAlphabetSize entries.
	const ghostSlots = 288
	lengths := make([]int, ghostSlots)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}

	litLengths := append([]int(nil), lengths[:litAlphabetSize]...)
	fullCodes := huffman.Canonical(lengths)
	lit := huffman.NewTableFromCodes(litLengths, append([]uint16(nil), fullCodes[:litAlphabetSize]...))

	distLengths := make([]int, distAlphabetSize)
	for i := range distLengths {
		distLengths[i] = 5
	}
	dist := huffman.NewTable(distLengths)

	return lit, dist
}
