// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// ErrUnknownKind is returned by a Codec when asked to decode a kind that is
// not in its type table.
var ErrUnknownKind = errors.New("unknown message kind")

// Codec decodes message payloads given their kind.
type Codec interface {
	// DecodeDemo decodes the payload of a top-level frame of kind k.
	DecodeDemo(k Kind, data []byte) (DemoBody, error)
	// DecodeEmbedded decodes the payload of an embedded message of kind k.
	DecodeEmbedded(k EmbeddedKind, data []byte) (EmbeddedBody, error)
	// DecodeModifier decodes an "activemodifiers" row value.
	DecodeModifier(data []byte) (*ModifierBuffTableEntry, error)
}

// WireCodec is a Codec for the protobuf wire format. Each kind's body is
// constructed by NewDemoBody or NewEmbeddedBody and filled by proto.Unmarshal.
//
// Fields a body does not declare are retained as unrecognized fields.
type WireCodec struct{}

var _ Codec = WireCodec{}

// DecodeDemo implements Codec.
func (WireCodec) DecodeDemo(k Kind, data []byte) (DemoBody, error) {
	body, ok := NewDemoBody(k)
	if !ok {
		return nil, ErrUnknownKind
	}
	if err := proto.Unmarshal(data, body); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", k)
	}
	return body, nil
}

// DecodeEmbedded implements Codec.
func (WireCodec) DecodeEmbedded(k EmbeddedKind, data []byte) (EmbeddedBody, error) {
	body, ok := NewEmbeddedBody(k)
	if !ok {
		return nil, ErrUnknownKind
	}
	if err := proto.Unmarshal(data, body); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", k)
	}
	return body, nil
}

// DecodeModifier implements Codec.
func (WireCodec) DecodeModifier(data []byte) (*ModifierBuffTableEntry, error) {
	var e ModifierBuffTableEntry
	if err := proto.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrap(err, "decoding modifier entry")
	}
	return &e, nil
}
