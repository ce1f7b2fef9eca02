// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"fmt"
)

// CompressedMask is the bit range of a frame's kind that flags a
// snappy-compressed payload.
const CompressedMask = 0x70

// Kind is the tag of a top-level demo frame.
type Kind uint64

// Top-level frame kinds.
const (
	KindStop                Kind = 0
	KindFileHeader          Kind = 1
	KindFileInfo            Kind = 2
	KindSyncTick            Kind = 3
	KindSendTables          Kind = 4
	KindClassInfo           Kind = 5
	KindStringTables        Kind = 6
	KindPacket              Kind = 7
	KindSignonPacket        Kind = 8
	KindConsoleCmd          Kind = 9
	KindCustomData          Kind = 10
	KindCustomDataCallbacks Kind = 11
	KindUserCmd             Kind = 12
	KindFullPacket          Kind = 13
	KindSaveGame            Kind = 14

	// NumKinds is the size of the top-level kind table.
	NumKinds = 15
)

var kindNames = [NumKinds]string{
	"DEM_Stop",
	"DEM_FileHeader",
	"DEM_FileInfo",
	"DEM_SyncTick",
	"DEM_SendTables",
	"DEM_ClassInfo",
	"DEM_StringTables",
	"DEM_Packet",
	"DEM_SignonPacket",
	"DEM_ConsoleCmd",
	"DEM_CustomData",
	"DEM_CustomDataCallbacks",
	"DEM_UserCmd",
	"DEM_FullPacket",
	"DEM_SaveGame",
}

// Valid returns true if k is in the top-level kind table.
func (k Kind) Valid() bool { return k < NumKinds }

// IsCarrier returns true if messages of kind k hold a blob of embedded
// messages.
func (k Kind) IsCarrier() bool {
	switch k {
	case KindPacket, KindSignonPacket, KindSendTables:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("DEM_UNKNOWN(%d)", uint64(k))
}

// EmbeddedKind is the tag of a message embedded in a carrier's data blob.
type EmbeddedKind uint64

// Embedded message kinds. The numbering is sparse.
const (
	EmbeddedTick              EmbeddedKind = 4
	EmbeddedSetConVar         EmbeddedKind = 6
	EmbeddedSignonState       EmbeddedKind = 7
	EmbeddedServerInfo        EmbeddedKind = 8
	EmbeddedSendTable         EmbeddedKind = 9
	EmbeddedClassInfo         EmbeddedKind = 10
	EmbeddedCreateStringTable EmbeddedKind = 12
	EmbeddedUpdateStringTable EmbeddedKind = 13
	EmbeddedVoiceInit         EmbeddedKind = 14
	EmbeddedVoiceData         EmbeddedKind = 15
	EmbeddedSounds            EmbeddedKind = 17
	EmbeddedSetView           EmbeddedKind = 18
	EmbeddedUserMessage       EmbeddedKind = 23
	EmbeddedEntityMessage     EmbeddedKind = 24
	EmbeddedGameEvent         EmbeddedKind = 25
	EmbeddedPacketEntities    EmbeddedKind = 26
	EmbeddedTempEntities      EmbeddedKind = 27
	EmbeddedGameEventList     EmbeddedKind = 30
)

var embeddedKindNames = map[EmbeddedKind]string{
	EmbeddedTick:              "net_Tick",
	EmbeddedSetConVar:         "net_SetConVar",
	EmbeddedSignonState:       "net_SignonState",
	EmbeddedServerInfo:        "svc_ServerInfo",
	EmbeddedSendTable:         "svc_SendTable",
	EmbeddedClassInfo:         "svc_ClassInfo",
	EmbeddedCreateStringTable: "svc_CreateStringTable",
	EmbeddedUpdateStringTable: "svc_UpdateStringTable",
	EmbeddedVoiceInit:         "svc_VoiceInit",
	EmbeddedVoiceData:         "svc_VoiceData",
	EmbeddedSounds:            "svc_Sounds",
	EmbeddedSetView:           "svc_SetView",
	EmbeddedUserMessage:       "svc_UserMessage",
	EmbeddedEntityMessage:     "svc_EntityMessage",
	EmbeddedGameEvent:         "svc_GameEvent",
	EmbeddedPacketEntities:    "svc_PacketEntities",
	EmbeddedTempEntities:      "svc_TempEntities",
	EmbeddedGameEventList:     "svc_GameEventList",
}

// Valid returns true if k is in the embedded kind table.
func (k EmbeddedKind) Valid() bool {
	_, ok := embeddedKindNames[k]
	return ok
}

func (k EmbeddedKind) String() string {
	if name, ok := embeddedKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("svc_UNKNOWN(%d)", uint64(k))
}

// Signature is the fixed magic that begins every capture.
const Signature = "PBUFDEM\x00"

// HeaderSize is the size of the capture header: the signature followed by a
// 4-byte little-endian reserved field.
const HeaderSize = len(Signature) + 4
