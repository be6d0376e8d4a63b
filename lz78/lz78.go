// Package lz78 implements the dictionary-trie variant of LZ78: the
// encoder walks a trie of previously-seen strings, emitting a (node id,
// next byte) pair each time it falls off the trie, then resets to the
// root. Grounded on original_source/lz78/lz78.c + trie.h, with the
// C trie's parent-linked nodes replaced by a map-keyed trie (no parent
// pointers needed since decode reconstructs dictionary entries directly
// rather than walking back up to the root).
package lz78

import (
	"encoding/binary"

	"github.com/flatebench/codec/internal/cerr"
)

type node struct {
	id       int
	children map[byte]*node
}

func newNode(id int) *node {
	return &node{id: id, children: make(map[byte]*node)}
}

// Compress encodes src: a 4-byte little-endian original length, then a
// sequence of (4-byte little-endian dictionary node id, next byte)
// records. A final lone id (no trailing byte) is written if the input
// ends mid-match.
func Compress(src []byte) []byte {
	out := make([]byte, 4, 4+len(src)*2)
	binary.LittleEndian.PutUint32(out, uint32(len(src)))

	root := newNode(0)
	cur := root
	id := 1

	for _, c := range src {
		if next, ok := cur.children[c]; ok {
			cur = next
			continue
		}

		rec := make([]byte, 4)
		binary.LittleEndian.PutUint32(rec, uint32(cur.id))
		out = append(out, rec...)
		out = append(out, c)

		cur.children[c] = newNode(id)
		id++
		cur = root
	}

	if cur != root {
		rec := make([]byte, 4)
		binary.LittleEndian.PutUint32(rec, uint32(cur.id))
		out = append(out, rec...)
	}
	return out
}

// Uncompress reverses Compress, rebuilding the dictionary as strings
// indexed by node id rather than walking parent pointers.
func Uncompress(src []byte) ([]byte, error) {
	if len(src) < 4 {
		return nil, cerr.ErrShortInput
	}
	origLen := binary.LittleEndian.Uint32(src)
	body := src[4:]

	dict := map[int][]byte{0: {}}
	nextID := 1
	dst := make([]byte, 0, origLen)

	for i := 0; i < len(body); {
		if i+4 > len(body) {
			return nil, cerr.ErrCorrupt
		}
		id := int(binary.LittleEndian.Uint32(body[i:]))
		i += 4

		seq, ok := dict[id]
		if !ok {
			return nil, cerr.ErrCorrupt
		}
		dst = append(dst, seq...)

		if i >= len(body) {
			break
		}
		c := body[i]
		i++

		entry := make([]byte, len(seq)+1)
		copy(entry, seq)
		entry[len(seq)] = c
		dict[nextID] = entry
		nextID++

		dst = append(dst, c)
	}

	if uint32(len(dst)) != origLen {
		return nil, cerr.ErrFrameMismatch
	}
	return dst, nil
}
