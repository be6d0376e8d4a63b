// Command bench reads a corpus (a .tar.gz archive, or a single large
// file), runs every codec in this module against each entry, times each
// run, and verifies round-trip equality.
package main

import (
	"bytes"
	"cmp"
	"compress/gzip"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/flatebench/codec/deflate"
	"github.com/flatebench/codec/huffman"
	"github.com/flatebench/codec/lz77"
	"github.com/flatebench/codec/lz78"
	"github.com/flatebench/codec/lzss"
	"github.com/flatebench/codec/lzw"
	"github.com/flatebench/codec/ranger"
	"github.com/flatebench/codec/rle"
	"github.com/flatebench/codec/tarfs"
)

type codec struct {
	name       string
	compress   func([]byte) []byte
	uncompress func([]byte) ([]byte, error)
}

var codecs = []codec{
	{"rle", rle.Compress, rle.Uncompress},
	{"lz77", lz77.Compress, lz77.Uncompress},
	{"lz78", lz78.Compress, lz78.Uncompress},
	{"lzss", lzss.Compress, lzss.Uncompress},
	{"lzw", lzw.Compress, lzw.Uncompress},
	{"huffman", huffman.Compress, huffman.Uncompress},
	{"deflate", deflate.Compress, deflate.Uncompress},
}

type result struct {
	file  string
	codec string
	srcN  int
	dstN  int
	took  time.Duration
	ok    bool
}

// cacheKey identifies one (content, codec) pair so identical file content
// appearing more than once in a corpus (vendored duplicates are common)
// is only compressed once.
type cacheKey struct {
	hash  uint64
	codec string
}

var cacheKeySeed = maphash.MakeSeed()

func hashCacheKey(k cacheKey) uint64 {
	return maphash.Comparable(cacheKeySeed, k)
}

func main() {
	corpus := flag.String("corpus", "", "path to a .tar.gz corpus archive")
	file := flag.String("file", "", "path to a single large file to benchmark instead of a corpus")
	chunkSize := flag.Int64("chunk", 1<<20, "chunk size for the single-file reader")
	cacheSize := flag.Int("cache-size", 256, "number of (content, codec) results to memoize")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *corpus == "" && *file == "" {
		logger.Fatal().Msg("one of -corpus or -file is required")
	}

	cache := tinylfu.New[cacheKey, result](*cacheSize, *cacheSize*10, hashCacheKey)

	var results []result
	var err error
	switch {
	case *corpus != "":
		results, err = runCorpus(logger, *corpus, cache)
	case *file != "":
		results, err = runFile(logger, *file, *chunkSize, cache)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("benchmark run failed")
	}

	slices.SortFunc(results, func(a, b result) int {
		ra := float64(a.dstN) / float64(max(a.srcN, 1))
		rb := float64(b.dstN) / float64(max(b.srcN, 1))
		return cmp.Compare(ra, rb)
	})

	fmt.Printf("%-40s %-10s %10s %10s %8s %6s\n", "file", "codec", "src", "dst", "ratio", "ok")
	for _, r := range results {
		ratio := float64(r.dstN) / float64(max(r.srcN, 1))
		fmt.Printf("%-40s %-10s %10d %10d %7.2f%% %6v\n", r.file, r.codec, r.srcN, r.dstN, ratio*100, r.ok)
	}
}

func runCorpus(logger zerolog.Logger, path string, cache *tinylfu.T[cacheKey, result]) ([]result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening %s as gzip: %w", path, err)
	}

	tmp, err := os.CreateTemp("", "bench-corpus-*.tar")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	size, err := io.Copy(tmp, gzr)
	if err != nil {
		return nil, fmt.Errorf("inflating %s: %w", path, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	fsys, err := tarfs.New(tmp, size)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}

	var results []result
	for _, entry := range fsys.Files() {
		fh, err := fsys.Open(entry.Filename)
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Filename).Msg("skipping unreadable entry")
			continue
		}
		content, err := io.ReadAll(fh)
		fh.Close()
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Filename).Msg("skipping unreadable entry")
			continue
		}

		results = append(results, benchmarkFile(logger, entry.Filename, content, cache)...)
	}
	return results, nil
}

func runFile(logger zerolog.Logger, path string, chunkSize int64, cache *tinylfu.T[cacheKey, result]) ([]result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	chunked := ranger.New(f, chunkSize)
	content, err := io.ReadAll(io.NewSectionReader(chunked, 0, info.Size()))
	if err != nil {
		return nil, err
	}

	return benchmarkFile(logger, path, content, cache), nil
}

func benchmarkFile(logger zerolog.Logger, name string, content []byte, cache *tinylfu.T[cacheKey, result]) []result {
	contentHash := xxhash.Sum64(content)
	results := make([]result, 0, len(codecs))

	for _, c := range codecs {
		key := cacheKey{hash: contentHash, codec: c.name}
		if cached, ok := cache.Get(key); ok {
			cached.file = name
			results = append(results, cached)
			continue
		}

		start := time.Now()
		compressed := c.compress(content)
		decoded, err := c.uncompress(compressed)
		took := time.Since(start)

		ok := err == nil && bytes.Equal(decoded, content)
		if !ok {
			logger.Error().Str("codec", c.name).Str("file", name).Err(err).Msg("round-trip mismatch")
		}

		r := result{file: name, codec: c.name, srcN: len(content), dstN: len(compressed), took: took, ok: ok}
		cache.Add(key, r)
		results = append(results, r)
	}
	return results
}
