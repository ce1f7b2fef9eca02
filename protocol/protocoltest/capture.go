// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocoltest

import (
	"bytes"
	"encoding/binary"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/support/varint"

	"github.com/golang/snappy"
)

// Capture builds a synthetic capture.
type Capture struct {
	buf bytes.Buffer
	enc varint.Encoder
}

// NewCapture returns a Capture with a valid header already written.
//
// reserved is written into the header's 4-byte reserved field.
func NewCapture(reserved uint32) *Capture {
	var c Capture
	c.buf.WriteString(protocol.Signature)

	var rb [4]byte
	binary.LittleEndian.PutUint32(rb[:], reserved)
	c.buf.Write(rb[:])
	return &c
}

// Frame appends an uncompressed frame.
func (c *Capture) Frame(k protocol.Kind, tick uint64, payload []byte) *Capture {
	_, _ = c.enc.WriteFrame(&c.buf, uint64(k), tick, payload)
	return c
}

// CompressedFrame appends a snappy-compressed frame.
func (c *Capture) CompressedFrame(k protocol.Kind, tick uint64, payload []byte) *Capture {
	_, _ = c.enc.WriteFrame(&c.buf, uint64(k)|protocol.CompressedMask, tick, snappy.Encode(nil, payload))
	return c
}

// Raw appends raw bytes, for building malformed captures.
func (c *Capture) Raw(b ...byte) *Capture {
	c.buf.Write(b)
	return c
}

// Bytes returns the capture built so far.
func (c *Capture) Bytes() []byte { return c.buf.Bytes() }

// Record is a single embedded message.
type Record struct {
	Kind    protocol.EmbeddedKind
	Payload []byte
}

// Embedded encodes records as a carrier data blob.
func Embedded(records ...Record) []byte {
	var (
		buf bytes.Buffer
		enc varint.Encoder
	)
	for _, r := range records {
		_, _ = enc.WriteRecord(&buf, uint64(r.Kind), r.Payload)
	}
	return buf.Bytes()
}

// UserInfo encodes a UserInfo record.
func UserInfo(xuid uint64, name string, userID int32) []byte {
	buf := make([]byte, protocol.UserInfoSize)
	binary.LittleEndian.PutUint64(buf[0:], xuid)
	copy(buf[8:40], name)
	binary.LittleEndian.PutUint32(buf[40:], uint32(userID))
	return buf
}
