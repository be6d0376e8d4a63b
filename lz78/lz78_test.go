package lz78

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestCompressUncompressRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("a"),
		[]byte("ababababab"),
		[]byte("abcabcabcabcabc"),
		bytes.Repeat([]byte("mississippi"), 30),
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

func TestCompressHandlesTrailingPartialMatch(t *testing.T) {
	// "a" and "b" each emit a record; the final "a" is already in the
	// trie, so the input ends mid-match, exercising the lone trailing
	// node-id record.
	src := []byte("aba")
	got, err := Uncompress(Compress(src))
	if err != nil {
		t.Fatalf("Uncompress: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch for %q: got %q", src, got)
	}
}

func TestUncompressRejectsShortInput(t *testing.T) {
	if _, err := Uncompress([]byte{1, 2}); err == nil {
		t.Fatal("expected error for input shorter than the length header")
	}
}

func TestUncompressRejectsUnknownID(t *testing.T) {
	src := make([]byte, 8)
	// length header = 0, then a single (id=99) record referencing a
	// dictionary entry that was never defined.
	src[4] = 99
	if _, err := Uncompress(src); err == nil {
		t.Fatal("expected error for an undefined dictionary id")
	}
}

func TestCompressUncompressRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(t, "src")
		got, err := Uncompress(Compress(src))
		if err != nil {
			t.Fatalf("Uncompress: %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip mismatch for %v", src)
		}
	})
}
