// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package bitreader reads little-endian, least-significant-bit-first
// bitstreams, the encoding used by string table entry data.
package bitreader

import (
	"github.com/pkg/errors"
)

// ErrOverrun is returned when a read extends past the end of the buffer.
var ErrOverrun = errors.New("read past end of bitstream")

// R reads bits from Buffer. Its zero value reads an empty stream.
type R struct {
	// Buffer is the backing buffer for this reader.
	Buffer []byte

	pos int // in bits
}

// New returns an R over buf.
func New(buf []byte) *R { return &R{Buffer: buf} }

// Position returns the bit offset of the next read.
func (r *R) Position() int { return r.pos }

// RemainingBits returns the number of unread bits.
func (r *R) RemainingBits() int { return len(r.Buffer)*8 - r.pos }

// ReadBits reads n (<= 64) bits and returns them as the low bits of a uint64.
func (r *R) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, errors.Errorf("invalid bit count %d", n)
	}
	if n > r.RemainingBits() {
		return 0, ErrOverrun
	}

	var v uint64
	for i := 0; i < n; {
		cur := r.Buffer[r.pos>>3]
		shift := uint(r.pos & 7)

		// Take as many bits as remain in the current byte.
		take := 8 - int(shift)
		if take > n-i {
			take = n - i
		}
		bits := (uint64(cur) >> shift) & ((1 << uint(take)) - 1)
		v |= bits << uint(i)

		i += take
		r.pos += take
	}
	return v, nil
}

// ReadBool reads a single bit.
func (r *R) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v != 0, err
}

// ReadByte reads eight bits. R does not need to be byte-aligned.
func (r *R) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// ReadBytes reads n whole bytes.
func (r *R) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n*8 > r.RemainingBits() {
		return nil, ErrOverrun
	}
	buf := make([]byte, n)
	for i := range buf {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// ReadBitsAsBytes reads n bits into a byte slice, packing them the same way
// they were laid out in the stream. A trailing partial byte holds the
// remaining bits in its low positions.
func (r *R) ReadBitsAsBytes(n int) ([]byte, error) {
	if n < 0 || n > r.RemainingBits() {
		return nil, ErrOverrun
	}
	buf, err := r.ReadBytes(n / 8)
	if err != nil {
		return nil, err
	}
	if rem := n % 8; rem > 0 {
		v, err := r.ReadBits(rem)
		if err != nil {
			return nil, err
		}
		buf = append(buf, byte(v))
	}
	return buf, nil
}

// ReadString reads bytes up to and excluding a NUL terminator, consuming the
// terminator. At most limit bytes are read; if no terminator is found within
// limit bytes, the read fails.
func (r *R) ReadString(limit int) (string, error) {
	buf := make([]byte, 0, 32)
	for len(buf) < limit {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
	return "", errors.Errorf("string exceeds %d bytes", limit)
}

// Log2 returns the number of bits needed to address n entries, the floor of
// log2(n). Log2(0) and Log2(1) are 0.
func Log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}
