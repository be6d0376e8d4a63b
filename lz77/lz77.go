// Package lz77 implements the hash-chained sliding-window match finder
// that DEFLATE's compressor is built on (spec component D), plus a
// standalone LZ77 codec that frames the resulting tokens without an
// entropy-coding stage.
//
// The match finder is grounded on the classic three-byte rolling hash:
// hash chains are stored in a per-call arena indexed by int32, not by
// pointer, so there is no shared ownership or manual freeing to get
// wrong (see package heap for the analogous choice in Huffman tree
// construction).
package lz77

import "github.com/flatebench/codec/internal/cerr"

const (
	// MinMatchLength is the shortest back-reference the match finder
	// will ever emit.
	MinMatchLength = 3
	// MaxMatchLength is the longest back-reference length, fixed by
	// DEFLATE's 258-byte length alphabet.
	MaxMatchLength = 258
	// MaxDistance is the largest back-reference distance, fixed by
	// DEFLATE's 32768-byte window.
	MaxDistance = 32768
	// HashSize is the number of hash-chain buckets.
	HashSize = 32768
)

// Match is a back-reference: Length bytes starting Distance bytes before
// the current output position.
type Match struct {
	Distance int
	Length   int
}

// Token is either a literal byte or a Match.
type Token struct {
	Literal   byte
	Match     Match
	IsLiteral bool
}

// chainNode is one hash-chain entry: the source position it records, and
// the arena index of the next-older entry sharing the same hash bucket
// (or -1).
type chainNode struct {
	pos  int32
	next int32
}

// hash folds three bytes into a HashSize-sized bucket index. This is the
// same three-byte polynomial fold as the reference C lz77.c this package
// is grounded on: h1 = 31*b0 + b1, h2 = 31*h1 + b2.
func hash(b0, b1, b2 byte) uint32 {
	h := uint32(31)*uint32(b0) + uint32(b1)
	h = uint32(31)*h + uint32(b2)
	return h % HashSize
}

// FindMatches runs the match finder over src[start:end], returning the
// sequence of literal/match tokens that reconstructs src[start:end]
// exactly. end may be less than len(src); start and end must satisfy
// 0 <= start <= end <= len(src).
func FindMatches(src []byte, start, end int) []Token {
	blockLen := end - start
	tokens := make([]Token, 0, blockLen)
	if blockLen == 0 {
		return tokens
	}

	arena := make([]chainNode, 0, blockLen)
	head := make([]int32, HashSize)
	for i := range head {
		head[i] = -1
	}

	insert := func(pos int) int32 {
		h := hash(src[pos], src[pos+1], src[pos+2])
		prev := head[h]
		arena = append(arena, chainNode{pos: int32(pos), next: prev})
		head[h] = int32(len(arena) - 1)
		return prev
	}

	matchLimit := end - MinMatchLength + 1

	p := start
	for p < matchLimit {
		chain := insert(p)

		bestLen := 0
		bestPos := -1
		maxLen := end - p
		if maxLen > MaxMatchLength {
			maxLen = MaxMatchLength
		}

		for chain != -1 {
			node := arena[chain]
			q := int(node.pos)
			if p-q > MaxDistance {
				break
			}
			if bestLen < maxLen && src[q+bestLen] == src[p+bestLen] {
				n := 0
				for n < maxLen && src[q+n] == src[p+n] {
					n++
				}
				if n > bestLen {
					bestLen = n
					bestPos = q
				}
			}
			chain = node.next
		}

		if bestLen >= MinMatchLength {
			tokens = append(tokens, Token{Match: Match{Distance: p - bestPos, Length: bestLen}})
			// Hash (and chain) every position we skip over so later
			// positions can still match against them.
			for i := 1; i < bestLen && p+i < matchLimit; i++ {
				insert(p + i)
			}
			p += bestLen
		} else {
			tokens = append(tokens, Token{Literal: src[p], IsLiteral: true})
			p++
		}
	}

	for ; p < end; p++ {
		tokens = append(tokens, Token{Literal: src[p], IsLiteral: true})
	}

	return tokens
}

// Replay reconstructs the original bytes from a token sequence, appending
// to dst (which may be nil).
func Replay(tokens []Token, dst []byte) ([]byte, error) {
	for _, t := range tokens {
		if t.IsLiteral {
			dst = append(dst, t.Literal)
			continue
		}
		d, l := t.Match.Distance, t.Match.Length
		if d < 1 || d > len(dst) {
			return nil, cerr.ErrCorrupt
		}
		start := len(dst) - d
		for i := 0; i < l; i++ {
			dst = append(dst, dst[start+i])
		}
	}
	return dst, nil
}
