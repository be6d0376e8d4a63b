// Copyright 2023 Chainguard, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tarfs presents a .tar archive's regular-file entries as an
// io/fs.FS, so the benchmark driver in cmd/bench can walk a corpus
// archive without ever unpacking it to disk. Trimmed from a general
// tar-backed filesystem down to what a corpus reader needs: symlink
// resolution and an on-disk TOC cache are dropped since a benchmark run
// reads every regular file exactly once.
package tarfs

import (
	"archive/tar"
	"bufio"
	"cmp"
	"errors"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"
)

// Entry is one tar member, plus the byte offset of its content in the
// backing io.ReaderAt.
type Entry struct {
	Header   tar.Header
	Offset   int64
	Filename string
	dir      string
	fi       fs.FileInfo
}

func (e *Entry) Name() string               { return e.fi.Name() }
func (e *Entry) Size() int64                { return e.Header.Size }
func (e *Entry) Type() fs.FileMode          { return e.fi.Mode().Type() }
func (e *Entry) Info() (fs.FileInfo, error) { return e.fi, nil }
func (e *Entry) IsDir() bool                { return e.fi.IsDir() }

// File is an open handle onto one Entry's content.
type File struct {
	Entry *Entry
	fsys  *FS
	sr    *io.SectionReader

	cursor int
}

func (f *File) Stat() (fs.FileInfo, error) { return f.Entry.fi, nil }
func (f *File) Read(p []byte) (int, error) { return f.sr.Read(p) }
func (f *File) Close() error                { return nil }

func (f *File) ReadDir(n int) ([]fs.DirEntry, error) {
	dir, err := f.fsys.ReadDir(f.Entry.Filename)
	if err != nil {
		return nil, err
	}
	if f.cursor >= len(dir) {
		if n < 0 {
			return nil, nil
		}
		return nil, io.EOF
	}
	if n > 0 && len(dir)-f.cursor > n {
		ret := dir[f.cursor : f.cursor+n]
		f.cursor += n
		return ret, nil
	}
	ret := dir[f.cursor:]
	f.cursor = len(dir)
	return ret, nil
}

// FS is a read-only view of a tar archive's regular files.
type FS struct {
	ra    io.ReaderAt
	files []*Entry
	index map[string]int
	dirs  map[string][]fs.DirEntry
}

// Open implements fs.FS.
func (fsys *FS) Open(name string) (fs.File, error) {
	if name == "." {
		return &File{
			Entry: &Entry{Filename: ".", fi: rootInfo{}},
			fsys:  fsys,
			sr:    io.NewSectionReader(nil, 0, 0),
		}, nil
	}

	e, err := fsys.Entry(name)
	if err != nil {
		return nil, err
	}
	return &File{Entry: e, fsys: fsys, sr: io.NewSectionReader(fsys.ra, e.Offset, e.Header.Size)}, nil
}

func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	if i, ok := fsys.index[name]; ok {
		return fsys.files[i].fi, nil
	}
	if name == "." {
		return rootInfo{}, nil
	}
	return nil, fs.ErrNotExist
}

func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fsys.dirs[name], nil
}

// Entry looks up a tar member by its normalized path.
func (fsys *FS) Entry(name string) (*Entry, error) {
	i, ok := fsys.index[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fsys.files[i], nil
}

// Files returns every regular-file entry, in archive order — the corpus
// list the benchmark driver iterates over.
func (fsys *FS) Files() []*Entry {
	out := make([]*Entry, 0, len(fsys.files))
	for _, e := range fsys.files {
		if e.Type().IsRegular() {
			out = append(out, e)
		}
	}
	return out
}

type countReader struct {
	r io.Reader
	n int64
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// New indexes a tar archive read through ra (size bytes long) into an FS.
func New(ra io.ReaderAt, size int64) (*FS, error) {
	fsys := &FS{ra: ra, index: map[string]int{}, dirs: map[string][]fs.DirEntry{}}
	dirCount := map[string]int{}

	if size < 0 {
		size = 1<<63 - 1
	}

	cr := &countReader{bufio.NewReaderSize(io.NewSectionReader(ra, 0, size), 1<<20), 0}
	tr := tar.NewReader(cr)

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		normalized := normalize(hdr.Name)
		dir := path.Dir(normalized)

		fsys.index[normalized] = len(fsys.files)
		fsys.files = append(fsys.files, &Entry{
			Header:   *hdr,
			Offset:   cr.n,
			Filename: normalized,
			dir:      dir,
			fi:       hdr.FileInfo(),
		})
		dirCount[dir]++
	}

	for dir, count := range dirCount {
		fsys.dirs[dir] = make([]fs.DirEntry, 0, count)
	}
	for _, f := range fsys.files {
		fsys.dirs[f.dir] = append(fsys.dirs[f.dir], f)
	}
	for _, files := range fsys.dirs {
		slices.SortFunc(files, func(a, b fs.DirEntry) int {
			return cmp.Compare(a.Name(), b.Name())
		})
	}

	return fsys, nil
}

type rootInfo struct{}

func (rootInfo) Name() string       { return "." }
func (rootInfo) Size() int64        { return 0 }
func (rootInfo) Mode() fs.FileMode  { return fs.ModeDir }
func (rootInfo) ModTime() time.Time { return time.Unix(0, 0) }
func (rootInfo) IsDir() bool        { return true }
func (rootInfo) Sys() any           { return nil }

func normalize(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(strings.TrimSuffix(s, "/"), "/"), "./")
}
