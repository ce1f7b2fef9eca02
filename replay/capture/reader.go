// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package capture decodes the framing of a demo capture.
//
// A capture is a fixed header (protocol.Signature and a 4-byte reserved
// field) followed by a sequence of frames:
//
//	varint(kind) varint(tick) varint(size) byte[size]
//
// If kind carries protocol.CompressedMask, the payload is snappy-compressed
// and the mask is removed to recover the true kind.
//
// Carrier payloads hold a second layer of framing, decoded by
// ExtractEmbedded:
//
//	varint(kind) varint(size) byte[size]
package capture

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/support/bufferpool"
	"github.com/danjacques/godem/support/dataio"
	"github.com/danjacques/godem/support/fmtutil"
	"github.com/danjacques/godem/support/logging"
	"github.com/danjacques/godem/support/varint"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

const (
	// Read buffer size (1MB), good for reading a capture file.
	readBufferSize = 1024 * 1024

	// maxPreallocSize caps how much of a frame's declared size is allocated
	// before its bytes actually arrive.
	maxPreallocSize = 1024 * 1024
)

// Frame is a single undecoded top-level frame.
//
// Payload is always uncompressed; Compressed reports how it was stored.
type Frame struct {
	// Kind is the resolved frame kind, with the compression bit removed.
	Kind protocol.Kind
	// Tick is the server tick of the frame.
	Tick uint64
	// Size is the stored payload size.
	Size uint64
	// Payload is the uncompressed payload.
	Payload []byte
	// Compressed is true if the payload was stored compressed.
	Compressed bool

	// Offset is the byte offset of the frame within the capture.
	Offset int64
}

// Reader reads frames from a capture.
//
// Reader must be instantiated using NewReader. After instantiation, its
// exported fields may be modified to control its behavior.
//
// Reader is not safe for concurrent use.
type Reader struct {
	// Codec decodes frame payloads. If nil, protocol.WireCodec will be used.
	Codec protocol.Codec

	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	// Buffers, if not nil, supplies scratch buffers for compressed payloads.
	Buffers *bufferpool.Pool

	// Reserved is the capture header's reserved field.
	Reserved uint32

	r  *dataio.OffsetReader
	vr varint.Reader
}

// NewReader reads and validates the capture header from r, and returns a
// Reader positioned at the first frame.
//
// If the header does not begin with protocol.Signature, NewReader returns an
// InvalidSignature Error without reading any frame.
func NewReader(r io.Reader) (*Reader, error) {
	cr := Reader{
		r: dataio.NewOffsetReader(bufio.NewReaderSize(r, readBufferSize)),
	}

	var header [protocol.HeaderSize]byte
	if _, err := dataio.ReadFull(cr.r, header[:]); err != nil {
		return nil, &Error{Code: InvalidSignature, Err: errors.Wrap(err, "reading header")}
	}

	sig := header[:len(protocol.Signature)]
	if string(sig) != protocol.Signature {
		return nil, &Error{
			Code: InvalidSignature,
			Err:  errors.Errorf("got %s", fmtutil.HexSlice(sig)),
		}
	}
	cr.Reserved = binary.LittleEndian.Uint32(header[len(protocol.Signature):])

	return &cr, nil
}

// Offset returns the number of capture bytes consumed.
func (cr *Reader) Offset() int64 { return cr.r.Offset() }

func (cr *Reader) codec() protocol.Codec {
	if cr.Codec != nil {
		return cr.Codec
	}
	return protocol.WireCodec{}
}

// readVarint reads a frame header varint. atStart is true for the first
// varint of a frame, where a clean end of input means end of capture.
func (cr *Reader) readVarint(start int64, atStart bool) (uint64, error) {
	v, amt, err := cr.vr.Read(cr.r)
	switch {
	case err == nil:
		return v, nil
	case err == io.EOF && atStart && amt == 0:
		return 0, io.EOF
	case err == varint.ErrMalformed:
		return 0, &Error{Code: MalformedVarInt, Offset: start, Err: err}
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return 0, &Error{Code: TruncatedFrame, Offset: start, Err: io.ErrUnexpectedEOF}
	default:
		return 0, errors.Wrapf(err, "reading frame at offset %d", start)
	}
}

// ReadFrame reads the next frame.
//
// If the capture is exhausted at a frame boundary, ReadFrame returns io.EOF.
func (cr *Reader) ReadFrame() (*Frame, error) {
	f := Frame{Offset: cr.r.Offset()}

	kind, err := cr.readVarint(f.Offset, true)
	if err != nil {
		return nil, err
	}
	if f.Tick, err = cr.readVarint(f.Offset, false); err != nil {
		return nil, err
	}
	if f.Size, err = cr.readVarint(f.Offset, false); err != nil {
		return nil, err
	}

	if kind&protocol.CompressedMask != 0 {
		f.Compressed = true
		kind -= protocol.CompressedMask
	}
	f.Kind = protocol.Kind(kind)

	if !f.Kind.Valid() {
		// The payload is not read; nothing after an unknown kind is trusted.
		return nil, &Error{Code: UnknownMessageKind, Offset: f.Offset, Kind: f.Kind.String()}
	}

	if f.Compressed {
		if f.Payload, err = cr.readCompressed(&f); err != nil {
			return nil, err
		}
	} else {
		var buf bytes.Buffer
		if err := cr.readPayload(&buf, &f); err != nil {
			return nil, err
		}
		f.Payload = buf.Bytes()
	}

	framesRead.WithLabelValues(f.Kind.String()).Inc()
	frameBytes.Add(float64(f.Size))
	return &f, nil
}

// readPayload reads f's stored payload into buf.
func (cr *Reader) readPayload(buf *bytes.Buffer, f *Frame) error {
	grow := f.Size
	if grow > maxPreallocSize {
		grow = maxPreallocSize
	}
	buf.Grow(int(grow))

	lr := io.LimitedReader{
		R: cr.r,
		N: int64(f.Size),
	}
	amt, err := buf.ReadFrom(&lr)
	if err != nil {
		return errors.Wrapf(err, "reading payload at offset %d", f.Offset)
	}
	if uint64(amt) != f.Size {
		return &Error{
			Code:   TruncatedFrame,
			Offset: f.Offset,
			Kind:   f.Kind.String(),
			Err:    errors.Errorf("declared %d bytes, %d available", f.Size, amt),
		}
	}
	return nil
}

// readCompressed reads f's compressed payload into a scratch buffer and
// returns its inflated contents.
func (cr *Reader) readCompressed(f *Frame) ([]byte, error) {
	var buf *bytes.Buffer
	if cr.Buffers != nil {
		pb := cr.Buffers.Get()
		defer pb.Release()
		buf = &pb.Buffer
	} else {
		buf = &bytes.Buffer{}
	}

	if err := cr.readPayload(buf, f); err != nil {
		return nil, err
	}

	payload, err := snappy.Decode(nil, buf.Bytes())
	if err != nil {
		logging.Must(cr.Logger).Debugf("Could not inflate %s at offset %d:\n%s",
			f.Kind, f.Offset, fmtutil.Hex(buf.Bytes()))
		return nil, &Error{Code: CorruptPayload, Offset: f.Offset, Kind: f.Kind.String(), Err: err}
	}

	compressedFrames.Inc()
	return payload, nil
}

// Decode decodes f's payload into a Message.
//
// The Message's Embedded field is left nil; see ExtractEmbedded.
func (cr *Reader) Decode(f *Frame) (*protocol.Message, error) {
	body, err := cr.codec().DecodeDemo(f.Kind, f.Payload)
	if err != nil {
		code := CorruptPayload
		if errors.Cause(err) == protocol.ErrUnknownKind {
			code = UnknownMessageKind
		}
		logging.Must(cr.Logger).Debugf("Could not decode %s at offset %d:\n%s",
			f.Kind, f.Offset, fmtutil.Hex(f.Payload))
		return nil, &Error{Code: code, Offset: f.Offset, Kind: f.Kind.String(), Err: err}
	}

	return &protocol.Message{
		Kind:       f.Kind,
		Tick:       f.Tick,
		Offset:     f.Offset,
		Size:       f.Size,
		Compressed: f.Compressed,
		Body:       body,
	}, nil
}

// Next reads and decodes the next frame.
//
// If the capture is exhausted at a frame boundary, Next returns io.EOF.
func (cr *Reader) Next() (*protocol.Message, error) {
	f, err := cr.ReadFrame()
	if err != nil {
		return nil, err
	}

	logging.Must(cr.Logger).Debugf("Read %s at offset %d (tick=%d, size=%d, compressed=%v)",
		f.Kind, f.Offset, f.Tick, f.Size, f.Compressed)
	return cr.Decode(f)
}
