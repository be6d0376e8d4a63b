// Package lzw implements the classic dictionary-based LZW codec: the
// dictionary starts pre-populated with all 256 single-byte strings, and
// the output is purely a sequence of dictionary ids — no literal bytes
// are ever emitted once the initial 256 entries exist. Grounded on
// original_source/lzw/lzw.c, whose per-character trie dictionary is the
// same algorithm expressed with map-keyed strings here instead of
// parent-linked trie nodes.
package lzw

import (
	"encoding/binary"

	"github.com/flatebench/codec/internal/cerr"
)

const initialDictSize = 256

// Compress encodes src: a 4-byte little-endian original length, then a
// sequence of 4-byte little-endian dictionary ids.
func Compress(src []byte) []byte {
	out := make([]byte, 4, 4+4*len(src))
	binary.LittleEndian.PutUint32(out, uint32(len(src)))
	if len(src) == 0 {
		return out
	}

	dict := make(map[string]int, initialDictSize)
	for i := 0; i < initialDictSize; i++ {
		dict[string([]byte{byte(i)})] = i
	}
	nextID := initialDictSize

	emit := func(id int) {
		rec := make([]byte, 4)
		binary.LittleEndian.PutUint32(rec, uint32(id))
		out = append(out, rec...)
	}

	w := string(src[:1])
	for _, b := range src[1:] {
		wc := w + string(b)
		if _, ok := dict[wc]; ok {
			w = wc
			continue
		}
		emit(dict[w])
		dict[wc] = nextID
		nextID++
		w = string(b)
	}
	emit(dict[w])

	return out
}

// Uncompress reverses Compress, rebuilding the dictionary id-by-id as it
// reads the id stream (the classic LZW decoder, including the
// first-character-of-the-not-yet-defined-entry special case).
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 4 {
		return nil, cerr.ErrShortInput
	}
	origLen := binary.LittleEndian.Uint32(src)
	body := src[4:]
	if origLen == 0 {
		return []byte{}, nil
	}
	if len(body) < 4 || len(body)%4 != 0 {
		return nil, cerr.ErrCorrupt
	}

	dict := make(map[int]string, initialDictSize)
	for i := 0; i < initialDictSize; i++ {
		dict[i] = string([]byte{byte(i)})
	}
	nextID := initialDictSize

	readID := func(i int) int {
		return int(binary.LittleEndian.Uint32(body[i*4:]))
	}

	dst := make([]byte, 0, origLen)
	w, ok := dict[readID(0)]
	if !ok {
		return nil, cerr.ErrCorrupt
	}
	dst = append(dst, w...)

	n := len(body) / 4
	for i := 1; i < n; i++ {
		id := readID(i)
		entry, ok := dict[id]
		if !ok {
			if id != nextID {
				return nil, cerr.ErrCorrupt
			}
			entry = w + w[:1]
		}
		dst = append(dst, entry...)
		dict[nextID] = w + entry[:1]
		nextID++
		w = entry
	}

	if uint32(len(dst)) != origLen {
		return nil, cerr.ErrFrameMismatch
	}
	return dst, nil
}
