// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package byteslicereader offers R, a slice-backed cursor with zero-copy
// reads.
//
// Standard io.Reader methods require that data be copied into a target buffer.
// Next instead returns a slice of R's underlying Buffer, so embedded records
// can be carved out of a frame payload without copying.
//
// Holding a slice returned by Next keeps the whole Buffer alive, and writes
// through it are visible to every other holder. Set AlwaysCopy when returned
// data must be independent of Buffer.
package byteslicereader

import (
	"io"
)

// R is a cursor over a byte slice.
//
// R implements io.Reader and io.ByteReader, so varints can be read from it
// directly. R can be copied, creating a snapshot of its current position.
type R struct {
	// Buffer is the backing buffer for this reader.
	Buffer []byte

	// AlwaysCopy, if true, causes Next to return copies of its backing data
	// instead of direct references.
	AlwaysCopy bool

	// pos is the R's position within Buffer.
	pos int
}

var _ interface {
	io.Reader
	io.ByteReader
} = (*R)(nil)

func (r *R) remainingSlice() []byte {
	if r.pos >= len(r.Buffer) {
		return nil
	}
	return r.Buffer[r.pos:]
}

// Offset returns the number of bytes consumed so far.
func (r *R) Offset() int64 { return int64(r.pos) }

// Remaining returns the number of bytes remaining in the reader, from the
// current position.
func (r *R) Remaining() int { return len(r.remainingSlice()) }

// Read implements io.Reader.
func (r *R) Read(b []byte) (amt int, err error) {
	remaining := r.remainingSlice()
	if len(remaining) == 0 && len(b) > 0 {
		return 0, io.EOF
	}
	amt = copy(b, remaining)
	r.pos += amt
	return
}

// ReadByte implements io.ByteReader.
func (r *R) ReadByte() (b byte, err error) {
	if r.pos >= len(r.Buffer) {
		return 0, io.EOF
	}

	b, r.pos = r.Buffer[r.pos], r.pos+1
	return
}

// Next returns the next n bytes in r, advancing r.
//
// If fewer than n bytes remain, Next consumes nothing and returns
// io.ErrUnexpectedEOF along with the number of bytes that were available.
func (r *R) Next(n int) ([]byte, error) {
	v := r.remainingSlice()
	if n < 0 || n > len(v) {
		return nil, io.ErrUnexpectedEOF
	}
	v = v[:n]

	if r.AlwaysCopy {
		v = append([]byte(nil), v...)
	}

	r.pos += n
	return v, nil
}
