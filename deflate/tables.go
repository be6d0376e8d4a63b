package deflate

// Alphabet sizes (spec §3 invariants).
const (
	litAlphabetSize  = 286
	distAlphabetSize = 30
	clAlphabetSize   = 19

	endOfBlock = 256

	maxCodeLen = 15 // spec §3: "the longest code length is ≤ 15 bits"

	// clMaxCodeLen bounds the code-length alphabet's own Huffman codes:
	// writeDynamicHeader transmits each of the 19 code-length-alphabet
	// lengths in a fixed 3-bit field, so a code longer than 7 bits would
	// silently truncate.
	clMaxCodeLen = 7
)

// lengthBase and lengthExtraBits implement the 29 length codes (257..285)
// covering match lengths 3..258 (spec §4.F).
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distanceBase and distanceExtraBits implement the 30 distance codes
// (0..29) covering distances 1..32768 (spec §4.F).
var distanceBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
	8193, 12289, 16385, 24577,
}

var distanceExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the permuted order in which code-length alphabet
// code lengths are transmitted in a dynamic block header (spec §4.G).
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthCodeFor returns the length-code index (0..28, to be biased by
// +257 for the literal/length alphabet) covering the given match length.
func lengthCodeFor(length int) int {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= int(lengthBase[i]) {
			return i
		}
	}
	return 0
}

// distanceCodeFor returns the distance-code index (0..29) covering the
// given match distance.
func distanceCodeFor(distance int) int {
	for i := len(distanceBase) - 1; i >= 0; i-- {
		if distance >= int(distanceBase[i]) {
			return i
		}
	}
	return 0
}
