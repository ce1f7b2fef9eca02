// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies a structural capture error.
type Code int

const (
	// InvalidSignature means the capture did not begin with
	// protocol.Signature.
	InvalidSignature Code = iota + 1
	// MalformedVarInt means a varint did not terminate within 10 bytes.
	MalformedVarInt
	// TruncatedFrame means the capture ended inside a frame.
	TruncatedFrame
	// TruncatedEmbedded means a carrier's data blob ended inside an embedded
	// message.
	TruncatedEmbedded
	// UnknownMessageKind means a frame or embedded kind was not in its type
	// table.
	UnknownMessageKind
	// CorruptPayload means a payload failed to inflate or to decode.
	CorruptPayload
)

func (c Code) String() string {
	switch c {
	case InvalidSignature:
		return "invalid signature"
	case MalformedVarInt:
		return "malformed varint"
	case TruncatedFrame:
		return "truncated frame"
	case TruncatedEmbedded:
		return "truncated embedded message"
	case UnknownMessageKind:
		return "unknown message kind"
	case CorruptPayload:
		return "corrupt payload"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is a fatal structural error encountered while decoding a capture.
//
// There is no resynchronization: a capture that produces an Error cannot be
// decoded further.
type Error struct {
	// Code classifies the error.
	Code Code

	// Offset is the byte offset at which the failing frame or embedded
	// message began. For embedded messages it is relative to the start of the
	// carrier's data blob.
	Offset int64

	// Kind describes the kind being decoded, if it was known.
	Kind string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
	if e.Kind != "" {
		msg += fmt.Sprintf(" (%s)", e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
//
// Error has no Cause method, so errors.Cause stops here and returns the Error
// itself.
func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the Code of the capture Error at the root of err's Cause
// chain, or 0 if there is none.
func CodeOf(err error) Code {
	if ce, ok := errors.Cause(err).(*Error); ok {
		return ce.Code
	}
	return 0
}

// IsCode returns true if err's chain contains a capture Error with code c.
func IsCode(err error, c Code) bool { return CodeOf(err) == c }
