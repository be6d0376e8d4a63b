// Package ranger reads a large file in bounded chunks instead of one
// giant ReadAt, so each underlying read stays at most chunkSize bytes.
// The benchmark driver still collects the whole file with io.ReadAll
// before handing it to a codec, since every codec takes a whole buffer.
// Generalized from an HTTP byte-range reader (the original
// contract issued one Range request per ReadAt) to a plain io.ReaderAt
// chunker: the range-splitting logic is the same, only the transport
// changed.
package ranger

import "io"

// Reader splits each ReadAt into chunkSize-bounded reads against an
// underlying io.ReaderAt.
type Reader struct {
	ra        io.ReaderAt
	chunkSize int64
}

// New wraps ra, reading at most chunkSize bytes per underlying ReadAt
// call.
func New(ra io.ReaderAt, chunkSize int64) *Reader {
	if chunkSize <= 0 {
		chunkSize = 1 << 20
	}
	return &Reader{ra: ra, chunkSize: chunkSize}
}

// ReadAt implements io.ReaderAt, issuing as many chunked reads against
// the underlying reader as needed to fill p.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	total := 0
	for total < len(p) {
		want := int64(len(p) - total)
		if want > r.chunkSize {
			want = r.chunkSize
		}

		n, err := r.ra.ReadAt(p[total:int64(total)+want], off+int64(total))
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrNoProgress
		}
	}
	return total, nil
}
