package huffman

// Canonical derives the canonical Huffman codes from a vector of code
// lengths (spec §4.E): for each length L from 1 upward, symbols of that
// length receive consecutive code values in increasing symbol order,
// and the running code is left-shifted by one between lengths. Symbols
// with length 0 are absent (code left as 0, never looked up).
//
// The codes are returned as plain integers in the usual "high bit first"
// sense — writing one to a bit stream with bitio.MSBFirst reproduces the
// canonical DEFLATE bit pattern.
func Canonical(lengths []int) []uint16 {
	maxLen := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen == 0 {
		return make([]uint16, len(lengths))
	}

	blCount := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}

	nextCode := make([]int, maxLen+1)
	code := 0
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	codes := make([]uint16, len(lengths))
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		codes[sym] = uint16(nextCode[l])
		nextCode[l]++
	}
	return codes
}
