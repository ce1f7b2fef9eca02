// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"io"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/support/byteslicereader"
	"github.com/danjacques/godem/support/varint"

	"github.com/pkg/errors"
)

// ExtractEmbedded decodes every embedded message in a carrier's data blob,
// in order.
//
// The returned messages may reference data. If codec is nil,
// protocol.WireCodec is used.
func ExtractEmbedded(codec protocol.Codec, data []byte) ([]*protocol.EmbeddedMessage, error) {
	if codec == nil {
		codec = protocol.WireCodec{}
	}

	var (
		r   = byteslicereader.R{Buffer: data}
		vr  varint.Reader
		out []*protocol.EmbeddedMessage
	)
	for r.Remaining() > 0 {
		start := r.Offset()

		readVarint := func() (uint64, error) {
			v, _, err := vr.Read(&r)
			switch err {
			case nil:
				return v, nil
			case varint.ErrMalformed:
				return 0, &Error{Code: MalformedVarInt, Offset: start, Err: err}
			default:
				return 0, &Error{Code: TruncatedEmbedded, Offset: start, Err: io.ErrUnexpectedEOF}
			}
		}

		rawKind, err := readVarint()
		if err != nil {
			return nil, err
		}
		kind := protocol.EmbeddedKind(rawKind)

		size, err := readVarint()
		if err != nil {
			return nil, err
		}

		if !kind.Valid() {
			return nil, &Error{Code: UnknownMessageKind, Offset: start, Kind: kind.String()}
		}

		if size > uint64(r.Remaining()) {
			return nil, &Error{
				Code:   TruncatedEmbedded,
				Offset: start,
				Kind:   kind.String(),
				Err:    errors.Errorf("declared %d bytes, %d available", size, r.Remaining()),
			}
		}
		payload, err := r.Next(int(size))
		if err != nil {
			return nil, &Error{Code: TruncatedEmbedded, Offset: start, Kind: kind.String(), Err: err}
		}

		body, err := codec.DecodeEmbedded(kind, payload)
		if err != nil {
			code := CorruptPayload
			if errors.Cause(err) == protocol.ErrUnknownKind {
				code = UnknownMessageKind
			}
			return nil, &Error{Code: code, Offset: start, Kind: kind.String(), Err: err}
		}

		out = append(out, &protocol.EmbeddedMessage{
			Kind: kind,
			Size: size,
			Body: body,
		})
	}

	embeddedMessages.Add(float64(len(out)))
	return out, nil
}
