// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package varint

import (
	"io"
)

// Encoder writes varint-prefixed records to an io.Writer.
//
// It is used to synthesize captures: a top-level frame is written with
// WriteFrame, and an embedded message with WriteRecord.
type Encoder struct {
	buf []byte
}

// WriteFrame writes a top-level frame header (kind, tick, size) followed by
// payload.
func (e *Encoder) WriteFrame(w io.Writer, kind, tick uint64, payload []byte) (int, error) {
	e.buf = e.buf[:0]
	e.buf = Append(e.buf, kind)
	e.buf = Append(e.buf, tick)
	e.buf = Append(e.buf, uint64(len(payload)))
	e.buf = append(e.buf, payload...)
	return w.Write(e.buf)
}

// WriteRecord writes an embedded record header (kind, size) followed by
// payload.
func (e *Encoder) WriteRecord(w io.Writer, kind uint64, payload []byte) (int, error) {
	e.buf = e.buf[:0]
	e.buf = Append(e.buf, kind)
	e.buf = Append(e.buf, uint64(len(payload)))
	e.buf = append(e.buf, payload...)
	return w.Write(e.buf)
}
