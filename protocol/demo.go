// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"github.com/golang/protobuf/proto"
)

// DemoBody is the decoded payload of a top-level frame.
//
// The set of DemoBody implementations is closed: there is exactly one per
// Kind, constructed by NewDemoBody.
type DemoBody interface {
	proto.Message

	// Kind returns the frame kind this body decodes.
	Kind() Kind
}

// NewDemoBody returns an empty body for kind k, or false if k is not in the
// top-level kind table.
func NewDemoBody(k Kind) (DemoBody, bool) {
	switch k {
	case KindStop:
		return &DemoStop{}, true
	case KindFileHeader:
		return &DemoFileHeader{}, true
	case KindFileInfo:
		return &DemoFileInfo{}, true
	case KindSyncTick:
		return &DemoSyncTick{}, true
	case KindSendTables:
		return &DemoSendTables{}, true
	case KindClassInfo:
		return &DemoClassInfo{}, true
	case KindStringTables:
		return &DemoStringTables{}, true
	case KindPacket:
		return &DemoPacket{}, true
	case KindSignonPacket:
		return &DemoSignonPacket{}, true
	case KindConsoleCmd:
		return &DemoConsoleCmd{}, true
	case KindCustomData:
		return &DemoCustomData{}, true
	case KindCustomDataCallbacks:
		return &DemoCustomDataCallbacks{}, true
	case KindUserCmd:
		return &DemoUserCmd{}, true
	case KindFullPacket:
		return &DemoFullPacket{}, true
	case KindSaveGame:
		return &DemoSaveGame{}, true
	default:
		return nil, false
	}
}

// CarrierData returns the embedded message blob held by a carrier body.
//
// If body is not a carrier, CarrierData returns false.
//
// DemoFullPacket is not a carrier: it restates state that the incremental
// stream already built.
func CarrierData(body DemoBody) ([]byte, bool) {
	switch m := body.(type) {
	case *DemoPacket:
		return m.GetData(), true
	case *DemoSignonPacket:
		return m.GetData(), true
	case *DemoSendTables:
		return m.GetData(), true
	default:
		return nil, false
	}
}

// Dota returns the Dota match summary, or nil if none was recorded.
func (m *DemoFileInfo) Dota() *DotaGameInfo { return m.GetGameInfo().GetDota() }

// Kind implements DemoBody.
func (*DemoStop) Kind() Kind { return KindStop }

// Kind implements DemoBody.
func (*DemoFileHeader) Kind() Kind { return KindFileHeader }

// Kind implements DemoBody.
func (*DemoFileInfo) Kind() Kind { return KindFileInfo }

// Kind implements DemoBody.
func (*DemoSyncTick) Kind() Kind { return KindSyncTick }

// Kind implements DemoBody.
func (*DemoSendTables) Kind() Kind { return KindSendTables }

// Kind implements DemoBody.
func (*DemoClassInfo) Kind() Kind { return KindClassInfo }

// Kind implements DemoBody.
func (*DemoStringTables) Kind() Kind { return KindStringTables }

// Kind implements DemoBody.
func (*DemoPacket) Kind() Kind { return KindPacket }

// Kind implements DemoBody.
func (*DemoSignonPacket) Kind() Kind { return KindSignonPacket }

// Kind implements DemoBody.
func (*DemoConsoleCmd) Kind() Kind { return KindConsoleCmd }

// Kind implements DemoBody.
func (*DemoCustomData) Kind() Kind { return KindCustomData }

// Kind implements DemoBody.
func (*DemoCustomDataCallbacks) Kind() Kind { return KindCustomDataCallbacks }

// Kind implements DemoBody.
func (*DemoUserCmd) Kind() Kind { return KindUserCmd }

// Kind implements DemoBody.
func (*DemoFullPacket) Kind() Kind { return KindFullPacket }

// Kind implements DemoBody.
func (*DemoSaveGame) Kind() Kind { return KindSaveGame }
