// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package protocol defines the messages found in a Source engine demo
// capture, and a Codec to decode them.
//
// A capture holds two layers of messages. Top-level frames carry a Kind and a
// DemoBody. Some of those bodies ("carriers") hold a blob of embedded
// messages, each carrying an EmbeddedKind and an EmbeddedBody.
//
// Both body sets are closed. Consumers are expected to type switch over the
// concrete body types.
package protocol

import (
	"fmt"
)

// Message is a decoded top-level frame.
type Message struct {
	// Kind is the resolved frame kind, with the compression bit cleared.
	Kind Kind
	// Tick is the server tick the frame was recorded at.
	Tick uint64
	// Offset is the byte offset of the frame within its capture.
	Offset int64
	// Size is the size of the frame's payload as stored.
	Size uint64
	// Compressed is true if the payload was stored compressed.
	Compressed bool

	// Body is the decoded payload.
	Body DemoBody

	// Embedded holds the decoded embedded messages of a carrier, in order.
	//
	// It is nil for messages whose Kind is not a carrier.
	Embedded []*EmbeddedMessage
}

func (m *Message) String() string {
	return fmt.Sprintf("%s{tick=%d, size=%d, compressed=%v, embedded=%d}",
		m.Kind, m.Tick, m.Size, m.Compressed, len(m.Embedded))
}

// EmbeddedMessage is a decoded message from a carrier's data blob.
type EmbeddedMessage struct {
	// Kind is the embedded kind.
	Kind EmbeddedKind
	// Size is the size of the encoded payload.
	Size uint64

	// Body is the decoded payload.
	Body EmbeddedBody
}

func (m *EmbeddedMessage) String() string {
	return fmt.Sprintf("%s{size=%d}", m.Kind, m.Size)
}
