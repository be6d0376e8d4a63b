package deflate

import (
	"testing"

	"github.com/flatebench/codec/bitio"
)

func TestPackLengthsRunsOfZeros(t *testing.T) {
	lengths := make([]int, 20)
	lengths[0] = 3
	// lengths[1:20] are all zero: a run of 19 zeros fits a single
	// 18-escape (which covers 11..138 zeros), with no zeros left over.
	tokens := packLengths(lengths)
	if tokens[0].symbol != 3 {
		t.Fatalf("first token = %d, want 3", tokens[0].symbol)
	}
	sawEscape := false
	for _, tok := range tokens[1:] {
		if tok.symbol == 17 || tok.symbol == 18 {
			sawEscape = true
		}
	}
	if !sawEscape {
		t.Fatalf("expected a zero-run escape symbol in %v", tokens)
	}
}

func TestPackLengthsRunsOfRepeatedNonZero(t *testing.T) {
	lengths := []int{5, 5, 5, 5, 5}
	tokens := packLengths(lengths)
	if tokens[0].symbol != 5 {
		t.Fatalf("first token = %d, want 5", tokens[0].symbol)
	}
	sawRepeat := false
	for _, tok := range tokens[1:] {
		if tok.symbol == 16 {
			sawRepeat = true
		}
	}
	if !sawRepeat {
		t.Fatalf("expected a repeat-previous-length escape in %v", tokens)
	}
}

func TestWriteReadDynamicHeaderRoundTrip(t *testing.T) {
	litLengths := make([]int, litAlphabetSize)
	for i := range litLengths {
		switch {
		case i < 100:
			litLengths[i] = 8
		case i < 200:
			litLengths[i] = 9
		case i == endOfBlock:
			litLengths[i] = 7
		default:
			litLengths[i] = 0
		}
	}
	distLengths := make([]int, distAlphabetSize)
	for i := 0; i < 10; i++ {
		distLengths[i] = 5
	}

	w := bitio.NewWriter()
	writeDynamicHeader(w, litLengths, distLengths)

	r := bitio.NewReader(w.Bytes())
	litTable, distTable, err := readDynamicHeader(r)
	if err != nil {
		t.Fatalf("readDynamicHeader: %v", err)
	}

	for sym, want := range litLengths {
		if got := litTable.Lengths[sym]; got != want {
			t.Fatalf("lit symbol %d length = %d, want %d", sym, got, want)
		}
	}
	for sym, want := range distLengths {
		if got := distTable.Lengths[sym]; got != want {
			t.Fatalf("dist symbol %d length = %d, want %d", sym, got, want)
		}
	}
}
