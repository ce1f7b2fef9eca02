// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"github.com/golang/protobuf/proto"
)

// EmbeddedBody is the decoded payload of an embedded message.
//
// The set of EmbeddedBody implementations is closed: there is exactly one per
// EmbeddedKind, constructed by NewEmbeddedBody.
type EmbeddedBody interface {
	proto.Message

	// Kind returns the embedded kind this body decodes.
	Kind() EmbeddedKind
}

// NewEmbeddedBody returns an empty body for kind k, or false if k is not in
// the embedded kind table.
func NewEmbeddedBody(k EmbeddedKind) (EmbeddedBody, bool) {
	switch k {
	case EmbeddedTick:
		return &NetTick{}, true
	case EmbeddedSetConVar:
		return &NetSetConVar{}, true
	case EmbeddedSignonState:
		return &NetSignonState{}, true
	case EmbeddedServerInfo:
		return &SVCServerInfo{}, true
	case EmbeddedSendTable:
		return &SVCSendTable{}, true
	case EmbeddedClassInfo:
		return &SVCClassInfo{}, true
	case EmbeddedCreateStringTable:
		return &SVCCreateStringTable{}, true
	case EmbeddedUpdateStringTable:
		return &SVCUpdateStringTable{}, true
	case EmbeddedVoiceInit:
		return &SVCVoiceInit{}, true
	case EmbeddedVoiceData:
		return &SVCVoiceData{}, true
	case EmbeddedSounds:
		return &SVCSounds{}, true
	case EmbeddedSetView:
		return &SVCSetView{}, true
	case EmbeddedUserMessage:
		return &SVCUserMessage{}, true
	case EmbeddedEntityMessage:
		return &SVCEntityMessage{}, true
	case EmbeddedGameEvent:
		return &SVCGameEvent{}, true
	case EmbeddedPacketEntities:
		return &SVCPacketEntities{}, true
	case EmbeddedTempEntities:
		return &SVCTempEntities{}, true
	case EmbeddedGameEventList:
		return &SVCGameEventList{}, true
	default:
		return nil, false
	}
}

// Kind implements EmbeddedBody.
func (*NetTick) Kind() EmbeddedKind { return EmbeddedTick }

// Kind implements EmbeddedBody.
func (*NetSetConVar) Kind() EmbeddedKind { return EmbeddedSetConVar }

// Kind implements EmbeddedBody.
func (*NetSignonState) Kind() EmbeddedKind { return EmbeddedSignonState }

// Kind implements EmbeddedBody.
func (*SVCServerInfo) Kind() EmbeddedKind { return EmbeddedServerInfo }

// Kind implements EmbeddedBody.
func (*SVCSendTable) Kind() EmbeddedKind { return EmbeddedSendTable }

// Kind implements EmbeddedBody.
func (*SVCClassInfo) Kind() EmbeddedKind { return EmbeddedClassInfo }

// Kind implements EmbeddedBody.
func (*SVCCreateStringTable) Kind() EmbeddedKind { return EmbeddedCreateStringTable }

// Kind implements EmbeddedBody.
func (*SVCUpdateStringTable) Kind() EmbeddedKind { return EmbeddedUpdateStringTable }

// Kind implements EmbeddedBody.
func (*SVCVoiceInit) Kind() EmbeddedKind { return EmbeddedVoiceInit }

// Kind implements EmbeddedBody.
func (*SVCVoiceData) Kind() EmbeddedKind { return EmbeddedVoiceData }

// Kind implements EmbeddedBody.
func (*SVCSounds) Kind() EmbeddedKind { return EmbeddedSounds }

// Kind implements EmbeddedBody.
func (*SVCSetView) Kind() EmbeddedKind { return EmbeddedSetView }

// Kind implements EmbeddedBody.
func (*SVCUserMessage) Kind() EmbeddedKind { return EmbeddedUserMessage }

// Kind implements EmbeddedBody.
func (*SVCEntityMessage) Kind() EmbeddedKind { return EmbeddedEntityMessage }

// Kind implements EmbeddedBody.
func (*SVCGameEvent) Kind() EmbeddedKind { return EmbeddedGameEvent }

// Kind implements EmbeddedBody.
func (*SVCPacketEntities) Kind() EmbeddedKind { return EmbeddedPacketEntities }

// Kind implements EmbeddedBody.
func (*SVCTempEntities) Kind() EmbeddedKind { return EmbeddedTempEntities }

// Kind implements EmbeddedBody.
func (*SVCGameEventList) Kind() EmbeddedKind { return EmbeddedGameEventList }
