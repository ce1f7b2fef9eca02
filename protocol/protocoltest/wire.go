// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package protocoltest builds encoded messages and synthetic captures for
// tests.
package protocoltest

import (
	"github.com/danjacques/godem/protocol"

	"github.com/golang/protobuf/proto"
)

// Marshal encodes m, panicking if it cannot be encoded.
func Marshal(m proto.Message) []byte {
	data, err := proto.Marshal(m)
	if err != nil {
		panic(err)
	}
	return data
}

// FileHeader encodes a DemoFileHeader.
func FileHeader(stamp, mapName string, networkProtocol int32) []byte {
	return Marshal(&protocol.DemoFileHeader{
		DemoFileStamp:   proto.String(stamp),
		NetworkProtocol: proto.Int32(networkProtocol),
		MapName:         proto.String(mapName),
	})
}

// Empty encodes a message with no fields, such as DemoSyncTick or DemoStop.
func Empty() []byte { return []byte{} }

// Packet encodes a DemoPacket holding data. DemoSignonPacket shares its
// layout.
func Packet(data []byte) []byte {
	return Marshal(&protocol.DemoPacket{
		SequenceIn: proto.Int32(1),
		Data:       data,
	})
}

// FileInfo encodes a DemoFileInfo with a Dota summary.
func FileInfo(playbackTicks int32, matchID uint32, winner int32) []byte {
	return Marshal(&protocol.DemoFileInfo{
		PlaybackTime:  proto.Float32(float32(playbackTicks) / 30),
		PlaybackTicks: proto.Int32(playbackTicks),
		GameInfo: &protocol.GameInfo{
			Dota: &protocol.DotaGameInfo{
				MatchId:    proto.Uint32(matchID),
				GameWinner: proto.Int32(winner),
			},
		},
	})
}

// Tick encodes a NetTick.
func Tick(tick uint32) []byte {
	return Marshal(&protocol.NetTick{Tick: proto.Uint32(tick)})
}

// SetView encodes an SVCSetView.
func SetView(entityIndex int32) []byte {
	return Marshal(&protocol.SVCSetView{EntityIndex: proto.Int32(entityIndex)})
}

// CreateStringTable encodes an SVCCreateStringTable whose entries are
// encoded by Entries.
func CreateStringTable(name string, maxEntries int, entries *Entries) []byte {
	msg := protocol.SVCCreateStringTable{
		Name:       proto.String(name),
		MaxEntries: proto.Int32(int32(maxEntries)),
		NumEntries: proto.Int32(int32(entries.Len())),
		StringData: entries.Bytes(),
	}
	if entries.fixedBits > 0 {
		msg.UserDataFixedSize = proto.Bool(true)
		msg.UserDataSize = proto.Int32(int32((entries.fixedBits + 7) / 8))
		msg.UserDataSizeBits = proto.Int32(int32(entries.fixedBits))
	}
	return Marshal(&msg)
}

// UpdateStringTable encodes an SVCUpdateStringTable addressed to the table
// at position tableID.
func UpdateStringTable(tableID int, entries *Entries) []byte {
	return Marshal(&protocol.SVCUpdateStringTable{
		TableId:           proto.Int32(int32(tableID)),
		NumChangedEntries: proto.Int32(int32(entries.Len())),
		StringData:        entries.Bytes(),
	})
}

// Modifier encodes an active ModifierBuffTableEntry.
func Modifier(parent, index, serial int32, class int32) []byte {
	return Marshal(&protocol.ModifierBuffTableEntry{
		EntryType:     protocol.ModifierEntryType_ACTIVE.Enum(),
		Parent:        proto.Int32(parent),
		Index:         proto.Int32(index),
		SerialNum:     proto.Int32(serial),
		ModifierClass: proto.Int32(class),
	})
}
