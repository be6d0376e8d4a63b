package rle

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestCompressUncompressRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("a"),
		[]byte("aaaaaaaaaa"),
		[]byte("abcabcabc"),
		bytes.Repeat([]byte{7}, 1000), // exceeds the 255-byte run cap
	}
	for _, src := range cases {
		got, err := Uncompress(Compress(src))
		if err != nil {
			t.Fatalf("Uncompress(len=%d): %v", len(src), err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip mismatch for %q", src)
		}
	}
}

func TestCompressCapsRunsAt255(t *testing.T) {
	src := bytes.Repeat([]byte{9}, 300)
	out := Compress(src)
	// header (4 bytes) + first run (255,9) + second run (45,9)
	if len(out) != 4+2+2 {
		t.Fatalf("Compress(300 identical bytes) len = %d, want 8", len(out))
	}
}

func TestUncompressRejectsShortInput(t *testing.T) {
	if _, err := Uncompress([]byte{1, 2}); err == nil {
		t.Fatal("expected error for input shorter than the length header")
	}
}

func TestUncompressRejectsOddBody(t *testing.T) {
	src := Compress([]byte("ab"))
	truncated := src[:len(src)-1]
	if _, err := Uncompress(truncated); err == nil {
		t.Fatal("expected error for a truncated (count,value) pair")
	}
}

func TestCompressUncompressRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.SliceOfN(rapid.Byte(), 0, 500).Draw(t, "src")
		got, err := Uncompress(Compress(src))
		if err != nil {
			t.Fatalf("Uncompress: %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip mismatch for %v", src)
		}
	})
}
