// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol_test

import (
	"testing"

	. "github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/protocol/protocoltest"

	"github.com/golang/protobuf/proto"
	"github.com/lunixbochs/struc"
	"google.golang.org/protobuf/encoding/protowire"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("WireCodec", func() {
	var codec WireCodec

	It("decodes a file header", func() {
		body, err := codec.DecodeDemo(KindFileHeader, protocoltest.FileHeader("PBUFDEM", "dota", 40))
		Expect(err).ToNot(HaveOccurred())

		h := body.(*DemoFileHeader)
		Expect(h.GetDemoFileStamp()).To(Equal("PBUFDEM"))
		Expect(h.GetNetworkProtocol()).To(Equal(int32(40)))
		Expect(h.GetMapName()).To(Equal("dota"))
		Expect(h.ServerName).To(BeNil())
	})

	It("decodes empty markers", func() {
		body, err := codec.DecodeDemo(KindSyncTick, protocoltest.Empty())
		Expect(err).ToNot(HaveOccurred())
		Expect(body).To(BeAssignableToTypeOf(&DemoSyncTick{}))

		body, err = codec.DecodeDemo(KindStop, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(body.Kind()).To(Equal(KindStop))
	})

	It("decodes a file info summary", func() {
		body, err := codec.DecodeDemo(KindFileInfo, protocoltest.FileInfo(9000, 12345, 2))
		Expect(err).ToNot(HaveOccurred())

		fi := body.(*DemoFileInfo)
		Expect(fi.GetPlaybackTicks()).To(Equal(int32(9000)))
		Expect(fi.Dota()).ToNot(BeNil())
		Expect(fi.Dota().GetMatchId()).To(Equal(uint32(12345)))
		Expect(fi.Dota().GetGameWinner()).To(Equal(int32(2)))
	})

	It("has no Dota summary when none was recorded", func() {
		body, err := codec.DecodeDemo(KindFileInfo, protocoltest.Marshal(&DemoFileInfo{
			PlaybackTicks: proto.Int32(1),
		}))
		Expect(err).ToNot(HaveOccurred())
		Expect(body.(*DemoFileInfo).Dota()).To(BeNil())
	})

	It("exposes carrier data for packets", func() {
		blob := []byte{0x04, 0x00}
		body, err := codec.DecodeDemo(KindPacket, protocoltest.Packet(blob))
		Expect(err).ToNot(HaveOccurred())

		data, ok := CarrierData(body)
		Expect(ok).To(BeTrue())
		Expect(data).To(Equal(blob))
		Expect(body.(*DemoPacket).GetSequenceIn()).To(Equal(int32(1)))
	})

	It("exposes carrier data for sign-on packets", func() {
		blob := []byte{0x04, 0x00}
		body, err := codec.DecodeDemo(KindSignonPacket, protocoltest.Packet(blob))
		Expect(err).ToNot(HaveOccurred())
		Expect(body).To(BeAssignableToTypeOf(&DemoSignonPacket{}))

		data, ok := CarrierData(body)
		Expect(ok).To(BeTrue())
		Expect(data).To(Equal(blob))
	})

	It("does not expose carrier data for non-carriers", func() {
		body, err := codec.DecodeDemo(KindStop, nil)
		Expect(err).ToNot(HaveOccurred())

		_, ok := CarrierData(body)
		Expect(ok).To(BeFalse())
	})

	It("does not treat a full packet as a carrier", func() {
		body, err := codec.DecodeDemo(KindFullPacket, protocoltest.Marshal(&DemoFullPacket{
			Packet: &DemoPacket{Data: []byte{0x04, 0x00}},
		}))
		Expect(err).ToNot(HaveOccurred())
		Expect(body.(*DemoFullPacket).GetPacket().GetData()).To(Equal([]byte{0x04, 0x00}))

		_, ok := CarrierData(body)
		Expect(ok).To(BeFalse())
	})

	It("decodes a negative int32 field", func() {
		body, err := codec.DecodeEmbedded(EmbeddedSetView, protocoltest.SetView(-1))
		Expect(err).ToNot(HaveOccurred())
		Expect(body.(*SVCSetView).GetEntityIndex()).To(Equal(int32(-1)))
	})

	It("decodes a string table creation", func() {
		entries := protocoltest.NewEntries(64).Add(0, "a", []byte{1})
		body, err := codec.DecodeEmbedded(EmbeddedCreateStringTable,
			protocoltest.CreateStringTable("userinfo", 64, entries))
		Expect(err).ToNot(HaveOccurred())

		ct := body.(*SVCCreateStringTable)
		Expect(ct.GetName()).To(Equal("userinfo"))
		Expect(ct.GetMaxEntries()).To(Equal(int32(64)))
		Expect(ct.GetNumEntries()).To(Equal(int32(1)))
		Expect(ct.GetUserDataFixedSize()).To(BeFalse())
		Expect(ct.GetStringData()).To(Equal(entries.Bytes()))
	})

	It("decodes nested console variables", func() {
		data := protocoltest.Marshal(&NetSetConVar{
			Convars: &ConVars{
				Cvars: []*ConVars_Var{{Name: proto.String("sv_cheats"), Value: proto.String("0")}},
			},
		})
		body, err := codec.DecodeEmbedded(EmbeddedSetConVar, data)
		Expect(err).ToNot(HaveOccurred())

		vars := body.(*NetSetConVar).GetConvars().GetCvars()
		Expect(vars).To(HaveLen(1))
		Expect(vars[0].GetName()).To(Equal("sv_cheats"))
		Expect(vars[0].GetValue()).To(Equal("0"))
	})

	It("keeps fields it does not declare", func() {
		unknown := protowire.AppendTag(nil, 99, protowire.VarintType)
		unknown = protowire.AppendVarint(unknown, 1)
		data := append(unknown, protocoltest.Tick(77)...)

		body, err := codec.DecodeEmbedded(EmbeddedTick, data)
		Expect(err).ToNot(HaveOccurred())

		tick := body.(*NetTick)
		Expect(tick.GetTick()).To(Equal(uint32(77)))
		Expect(tick.XXX_unrecognized).To(Equal(unknown))
	})

	It("rejects a malformed field tag", func() {
		_, err := codec.DecodeEmbedded(EmbeddedTick, []byte{0x80})
		Expect(err).To(HaveOccurred())
	})

	It("rejects truncated payloads", func() {
		data := protocoltest.FileHeader("PBUFDEM", "dota", 40)
		_, err := codec.DecodeDemo(KindFileHeader, data[:3])
		Expect(err).To(MatchError(ContainSubstring("DEM_FileHeader")))
	})

	It("rejects unknown kinds", func() {
		_, err := codec.DecodeDemo(Kind(15), nil)
		Expect(err).To(Equal(ErrUnknownKind))

		_, err = codec.DecodeEmbedded(EmbeddedKind(11), nil)
		Expect(err).To(Equal(ErrUnknownKind))
	})

	It("decodes a modifier, applying defaults", func() {
		e, err := codec.DecodeModifier(protocoltest.Marshal(&ModifierBuffTableEntry{
			Parent: proto.Int32(100),
			Index:  proto.Int32(7),
		}))
		Expect(err).ToNot(HaveOccurred())
		Expect(e.GetEntryType()).To(Equal(ModifierEntryType_ACTIVE))
		Expect(e.GetEntryType().String()).To(Equal("ACTIVE"))
		Expect(e.GetDuration()).To(Equal(float32(-1)))
		Expect(e.GetParent()).To(Equal(int32(100)))
		Expect(e.GetIndex()).To(Equal(int32(7)))
	})

	It("decodes a modifier with vectors", func() {
		data := protocoltest.Marshal(&ModifierBuffTableEntry{
			EntryType:     ModifierEntryType_REMOVED.Enum(),
			ModifierClass: proto.Int32(4),
			VStart:        &Vector{X: proto.Float32(1.5), Y: proto.Float32(-2), Z: proto.Float32(0)},
			Aura:          proto.Bool(true),
		})
		e, err := codec.DecodeModifier(data)
		Expect(err).ToNot(HaveOccurred())
		Expect(e.GetEntryType()).To(Equal(ModifierEntryType_REMOVED))
		Expect(e.GetModifierClass()).To(Equal(int32(4)))
		Expect(e.GetVStart().GetX()).To(Equal(float32(1.5)))
		Expect(e.GetVStart().GetY()).To(Equal(float32(-2)))
		Expect(e.GetVEnd()).To(BeNil())
		Expect(e.GetAura()).To(BeTrue())
	})

	It("rejects a modifier that is not a protobuf message", func() {
		_, err := codec.DecodeModifier([]byte{0xFF})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Kinds", func() {
	DescribeTable("top-level kinds",
		func(k Kind, name string, carrier bool) {
			Expect(k.Valid()).To(BeTrue())
			Expect(k.String()).To(Equal(name))
			Expect(k.IsCarrier()).To(Equal(carrier))
		},
		Entry("stop", KindStop, "DEM_Stop", false),
		Entry("sync tick", KindSyncTick, "DEM_SyncTick", false),
		Entry("send tables", KindSendTables, "DEM_SendTables", true),
		Entry("packet", KindPacket, "DEM_Packet", true),
		Entry("signon packet", KindSignonPacket, "DEM_SignonPacket", true),
		Entry("full packet", KindFullPacket, "DEM_FullPacket", false),
		Entry("save game", KindSaveGame, "DEM_SaveGame", false),
	)

	It("has a body for every top-level kind", func() {
		for k := Kind(0); k < NumKinds; k++ {
			body, ok := NewDemoBody(k)
			Expect(ok).To(BeTrue(), "kind %s", k)
			Expect(body.Kind()).To(Equal(k))
		}
		_, ok := NewDemoBody(NumKinds)
		Expect(ok).To(BeFalse())
	})

	It("has a body for every embedded kind", func() {
		count := 0
		for k := EmbeddedKind(0); k < 64; k++ {
			body, ok := NewEmbeddedBody(k)
			Expect(ok).To(Equal(k.Valid()), "kind %s", k)
			if ok {
				Expect(body.Kind()).To(Equal(k))
				count++
			}
		}
		Expect(count).To(Equal(18))
	})

	It("names unknown kinds", func() {
		Expect(Kind(99).String()).To(Equal("DEM_UNKNOWN(99)"))
		Expect(EmbeddedKind(5).String()).To(Equal("svc_UNKNOWN(5)"))
	})
})

var _ = Describe("UserInfo", func() {
	It("has the expected encoded size", func() {
		size, err := struc.Sizeof(&UserInfo{})
		Expect(err).ToNot(HaveOccurred())
		Expect(size).To(Equal(UserInfoSize))
	})

	It("parses a record", func() {
		ui, err := ParseUserInfo(protocoltest.UserInfo(76561197960265728, "Puppey", 3))
		Expect(err).ToNot(HaveOccurred())
		Expect(ui.XUID).To(Equal(uint64(76561197960265728)))
		Expect(ui.Name()).To(Equal("Puppey"))
		Expect(ui.UserID).To(Equal(int32(3)))
		Expect(ui.GUID()).To(BeEmpty())
	})

	It("parses the fields after alignment padding", func() {
		data := protocoltest.UserInfo(1, "a", 1)
		data[80] = 0x2A // friendsID
		copy(data[84:], "friend")
		data[117] = 1 // ishltv
		data[136] = 9 // filesDownloaded

		ui, err := ParseUserInfo(data)
		Expect(err).ToNot(HaveOccurred())
		Expect(ui.FriendsID).To(Equal(uint32(0x2A)))
		Expect(ui.FriendsName()).To(Equal("friend"))
		Expect(ui.FakePlayer).To(BeFalse())
		Expect(ui.IsHLTV).To(BeTrue())
		Expect(ui.FilesDownloaded).To(Equal(uint8(9)))
	})

	It("rejects a short record", func() {
		_, err := ParseUserInfo(make([]byte, UserInfoSize-1))
		Expect(err).To(HaveOccurred())
	})
})

func TestProtocol(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing protocol")
}
