// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package varint reads and writes the base-128 variable-length unsigned
// integers that prefix every frame and embedded message in a capture.
//
// Each byte contributes its low 7 bits to the result, least significant group
// first. A set high bit means that another byte follows.
package varint

import (
	"io"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// MaxLen is the maximum number of bytes a uint64 varint may occupy.
const MaxLen = 10

// ErrMalformed is returned when a varint does not terminate within MaxLen
// bytes, or when its terminating byte overflows 64 bits.
var ErrMalformed = errors.New("malformed varint")

// Reader reads varints from a byte source.
//
// A Reader holds a small scratch buffer and may be reused. Its zero value is
// ready to use.
type Reader struct {
	buf [MaxLen]byte
}

// bufferNext reads byte-by-byte until a byte without the continuation bit is
// found. The returned slice aliases r's scratch buffer.
func (r *Reader) bufferNext(br io.ByteReader) ([]byte, error) {
	buf := r.buf[:0]
	for len(buf) < MaxLen {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				err = io.ErrUnexpectedEOF
			}
			return buf, err
		}

		buf = append(buf, b)
		if (b & 0x80) == 0 {
			return buf, nil
		}
	}
	return buf, ErrMalformed
}

// Read reads the next varint from br, returning its value and the number of
// bytes consumed.
//
// If br is exhausted before the first byte, Read returns io.EOF. If it is
// exhausted partway through a varint, Read returns io.ErrUnexpectedEOF.
func (r *Reader) Read(br io.ByteReader) (uint64, int, error) {
	buf, err := r.bufferNext(br)
	if err != nil {
		return 0, len(buf), err
	}

	// buf holds a complete, terminated varint. DecodeVarint only rejects it if
	// the final group overflows 64 bits.
	v, amt := proto.DecodeVarint(buf)
	if amt != len(buf) {
		return 0, len(buf), ErrMalformed
	}
	return v, amt, nil
}

// Read is a convenience wrapper around a temporary Reader.
func Read(br io.ByteReader) (uint64, int, error) {
	var r Reader
	return r.Read(br)
}

// Append appends the varint encoding of v to b.
func Append(b []byte, v uint64) []byte {
	return append(b, proto.EncodeVarint(v)...)
}

// Size returns the number of bytes needed to encode v.
func Size(v uint64) int { return proto.SizeVarint(v) }
