package deflate

import (
	"testing"

	"github.com/flatebench/codec/bitio"
)

// TestFixedLitCodeLengthsMatchRFC1951 checks the documented per-symbol
// length classes: 0-143 get 8 bits, 144-255 get 9, 256-279 get 7,
// 280-287 get 8 (but only 286 literal/length symbols are ever emitted).
func TestFixedLitCodeLengthsMatchRFC1951(t *testing.T) {
	for sym := 0; sym < litAlphabetSize; sym++ {
		want := 0
		switch {
		case sym < 144:
			want = 8
		case sym < 256:
			want = 9
		case sym < 280:
			want = 7
		default:
			want = 8
		}
		if got := fixedLit.Lengths[sym]; got != want {
			t.Fatalf("fixedLit length[%d] = %d, want %d", sym, got, want)
		}
	}
}

// TestFixedLitCode400At9Bits checks the canonical construction's known
// value: the first 9-bit code (symbol 144) is 0b110010000 = 400, which
// only comes out right when codes are derived over the full 288-slot
// alphabet including the two phantom symbols.
func TestFixedLitCode400At9Bits(t *testing.T) {
	if got := fixedLit.Codes[144]; got != 400 {
		t.Fatalf("fixedLit.Codes[144] = %d, want 400", got)
	}
}

func TestFixedTablesRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	symbols := []int{0, 100, 143, 144, 200, 255, 256, 260, 279, 285}
	for _, sym := range symbols {
		fixedLit.Encode(w, sym)
	}

	r := bitio.NewReader(w.Bytes())
	for _, want := range symbols {
		got, err := fixedLit.Decode(r)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != want {
			t.Fatalf("Decode() = %d, want %d", got, want)
		}
	}
}

func TestFixedDistTableIsFiveBitsFlat(t *testing.T) {
	for sym := 0; sym < distAlphabetSize; sym++ {
		if fixedDist.Lengths[sym] != 5 {
			t.Fatalf("fixedDist length[%d] = %d, want 5", sym, fixedDist.Lengths[sym])
		}
	}
}
