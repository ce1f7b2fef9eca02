// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dataio

import (
	"io"
)

// Reader represents a Reader that can read both individual bytes and
// sequences of bytes.
type Reader interface {
	io.Reader
	io.ByteReader
}

// MakeReader returns a Reader for the specified Reader.
func MakeReader(r io.Reader) Reader {
	if dr, ok := r.(Reader); ok {
		return dr
	}
	return &simulatedReader{r}
}

type simulatedReader struct {
	io.Reader
}

func (r *simulatedReader) ReadByte() (v byte, err error) {
	var d [1]byte
	var amt int

	amt, err = r.Read(d[:])
	if amt == 1 {
		v, err = d[0], nil
	} else if err == nil {
		err = io.ErrNoProgress
	}
	return
}

// OffsetReader is a Reader that tracks how many bytes have been consumed from
// its underlying source.
//
// Offsets are used to attribute decode errors to a position in the input.
type OffsetReader struct {
	r      Reader
	offset int64
}

var _ Reader = (*OffsetReader)(nil)

// NewOffsetReader wraps r. Offsets begin at zero.
func NewOffsetReader(r io.Reader) *OffsetReader {
	return &OffsetReader{r: MakeReader(r)}
}

// Offset returns the number of bytes read so far.
func (or *OffsetReader) Offset() int64 { return or.offset }

// Read implements io.Reader.
func (or *OffsetReader) Read(b []byte) (int, error) {
	amt, err := or.r.Read(b)
	or.offset += int64(amt)
	return amt, err
}

// ReadByte implements io.ByteReader.
func (or *OffsetReader) ReadByte() (byte, error) {
	b, err := or.r.ReadByte()
	if err == nil {
		or.offset++
	}
	return b, err
}
