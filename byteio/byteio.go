// Package byteio implements the append-only growable byte buffer that
// codecs use to assemble their output once the bit-level work is done.
package byteio

import "encoding/binary"

// growSize is the minimum number of bytes a Buffer grows by when full.
const growSize = 256

// Buffer is a growable byte buffer with a size cursor. Unlike bytes.Buffer
// it exposes scalar writers tailored to this module's wire formats
// (little-endian u32 trailers) and grows geometrically rather than
// doubling the whole backing array on every write.
type Buffer struct {
	buf  []byte
	size int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferSize returns an empty Buffer preallocated to at least n bytes.
func NewBufferSize(n int) *Buffer {
	return &Buffer{buf: make([]byte, 0, n)}
}

func (b *Buffer) grow(extra int) {
	need := b.size + extra
	if need <= cap(b.buf) {
		b.buf = b.buf[:need]
		return
	}
	newCap := cap(b.buf)*2 + growSize
	if newCap < need {
		newCap = need + growSize
	}
	grown := make([]byte, need, newCap)
	copy(grown, b.buf[:b.size])
	b.buf = grown
}

// Write appends raw bytes.
func (b *Buffer) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	b.grow(len(p))
	copy(b.buf[b.size:], p)
	b.size += len(p)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(v byte) {
	b.grow(1)
	b.buf[b.size] = v
	b.size++
}

// WriteUint32LE appends a little-endian uint32.
func (b *Buffer) WriteUint32LE(v uint32) {
	b.grow(4)
	binary.LittleEndian.PutUint32(b.buf[b.size:b.size+4], v)
	b.size += 4
}

// Len reports the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.size
}

// Bytes returns the written bytes. The returned slice aliases the
// Buffer's internal array.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.size]
}
