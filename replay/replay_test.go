// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/danjacques/godem/replay"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/protocol/protocoltest"
	"github.com/danjacques/godem/replay/capture"
	"github.com/danjacques/godem/stringtable"
	"github.com/danjacques/godem/support/bufferpool"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func kinds(msgs []*protocol.Message) []protocol.Kind {
	out := make([]protocol.Kind, len(msgs))
	for i, msg := range msgs {
		out[i] = msg.Kind
	}
	return out
}

func packet(records ...protocoltest.Record) []byte {
	return protocoltest.Packet(protocoltest.Embedded(records...))
}

func createTable(name string, maxEntries int, e *protocoltest.Entries) protocoltest.Record {
	return protocoltest.Record{
		Kind:    protocol.EmbeddedCreateStringTable,
		Payload: protocoltest.CreateStringTable(name, maxEntries, e),
	}
}

func updateTable(position int, e *protocoltest.Entries) protocoltest.Record {
	return protocoltest.Record{
		Kind:    protocol.EmbeddedUpdateStringTable,
		Payload: protocoltest.UpdateStringTable(position, e),
	}
}

var _ = Describe("Parser", func() {
	var p *Parser

	BeforeEach(func() {
		p = &Parser{}
	})

	parse := func(c *protocoltest.Capture) (*Result, error) {
		return p.Parse(bytes.NewReader(c.Bytes()))
	}

	It("files header, sync tick, and stop into their phases", func() {
		res, err := parse(protocoltest.NewCapture(7).
			Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
			Frame(protocol.KindSyncTick, 0, protocoltest.Empty()).
			Frame(protocol.KindStop, 100, protocoltest.Empty()))
		Expect(err).ToNot(HaveOccurred())

		Expect(res.Reserved).To(Equal(uint32(7)))
		Expect(res.Phases).To(HaveLen(3))
		Expect(kinds(res.Phases[Prologue])).To(Equal([]protocol.Kind{protocol.KindFileHeader}))
		Expect(kinds(res.Phases[Match])).To(Equal([]protocol.Kind{protocol.KindSyncTick}))
		Expect(kinds(res.Phases[Epilogue])).To(Equal([]protocol.Kind{protocol.KindStop}))

		Expect(res.Header.GetMapName()).To(Equal("dota"))
		Expect(res.Tables.Len()).To(Equal(0))
		Expect(res.Modifiers).To(BeEmpty())
		Expect(res.LastTick).To(Equal(uint64(100)))
	})

	It("files the sync tick message itself under Match", func() {
		res, err := parse(protocoltest.NewCapture(0).
			Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
			Frame(protocol.KindPacket, 1, packet()).
			Frame(protocol.KindSyncTick, 2, protocoltest.Empty()).
			Frame(protocol.KindPacket, 3, packet()))
		Expect(err).ToNot(HaveOccurred())

		Expect(res.Phases).ToNot(HaveKey(Epilogue))
		Expect(res.Phases[Prologue]).To(HaveLen(2))
		Expect(res.Phases[Match][0].Kind).To(Equal(protocol.KindSyncTick))
		Expect(res.Phases[Match][0].Tick).To(Equal(uint64(2)))
	})

	It("only opens the Prologue when there are no triggers", func() {
		res, err := parse(protocoltest.NewCapture(0).
			Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)))
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Phases).To(HaveLen(1))
		Expect(res.Phases).To(HaveKey(Prologue))
	})

	It("produces an empty Prologue for a capture with no frames", func() {
		res, err := parse(protocoltest.NewCapture(0))
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Phases).To(HaveKeyWithValue(Prologue, BeEmpty()))
		Expect(res.Messages()).To(BeEmpty())
	})

	It("never moves back to an earlier phase", func() {
		res, err := parse(protocoltest.NewCapture(0).
			Frame(protocol.KindSyncTick, 1, protocoltest.Empty()).
			Frame(protocol.KindPacket, 2, packet()).
			Frame(protocol.KindSyncTick, 3, protocoltest.Empty()).
			Frame(protocol.KindStop, 4, protocoltest.Empty()).
			Frame(protocol.KindSyncTick, 5, protocoltest.Empty()).
			Frame(protocol.KindFileInfo, 6, protocoltest.FileInfo(9000, 123456, 2)))
		Expect(err).ToNot(HaveOccurred())

		Expect(res.Phases[Prologue]).To(BeEmpty())
		Expect(kinds(res.Phases[Match])).To(Equal([]protocol.Kind{
			protocol.KindSyncTick, protocol.KindPacket, protocol.KindSyncTick,
		}))
		Expect(kinds(res.Phases[Epilogue])).To(Equal([]protocol.Kind{
			protocol.KindStop, protocol.KindSyncTick, protocol.KindFileInfo,
		}))

		Expect(res.FileInfo.GetPlaybackTicks()).To(Equal(int32(9000)))
		Expect(res.FileInfo.Dota().GetMatchId()).To(Equal(uint32(123456)))
	})

	It("reproduces capture order when phase logs are concatenated", func() {
		c := protocoltest.NewCapture(0).
			Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
			Frame(protocol.KindSignonPacket, 0, packet()).
			Frame(protocol.KindSyncTick, 0, protocoltest.Empty())
		for tick := uint64(1); tick <= 20; tick++ {
			if tick%5 == 0 {
				c.CompressedFrame(protocol.KindPacket, tick, packet(protocoltest.Record{
					Kind: protocol.EmbeddedTick, Payload: protocoltest.Tick(uint32(tick)),
				}))
			} else {
				c.Frame(protocol.KindPacket, tick, packet())
			}
		}
		c.Frame(protocol.KindStop, 21, protocoltest.Empty()).
			Frame(protocol.KindFileInfo, 21, protocoltest.FileInfo(21, 1, 2))

		p.Buffers = &bufferpool.Pool{}
		res, err := parse(c)
		Expect(err).ToNot(HaveOccurred())

		msgs := res.Messages()
		Expect(msgs).To(HaveLen(25))
		for i := 1; i < len(msgs); i++ {
			Expect(msgs[i].Offset).To(BeNumerically(">", msgs[i-1].Offset))
		}
		Expect(msgs[7].Compressed).To(BeTrue())
		Expect(msgs[7].Embedded).To(HaveLen(1))
		Expect(msgs[7].Embedded[0].Body.(*protocol.NetTick).GetTick()).To(Equal(uint32(5)))
	})

	Context("string tables", func() {
		It("addresses updates by creation position", func() {
			res, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindSignonPacket, 0, packet(
					createTable("A", 16, protocoltest.NewEntries(16)),
					createTable("B", 16, protocoltest.NewEntries(16)),
					createTable("C", 16, protocoltest.NewEntries(16).Add(0, "c0", []byte("x"))),
				)).
				Frame(protocol.KindPacket, 1, packet(
					updateTable(1, protocoltest.NewEntries(16).Add(4, "b4", []byte("y"))),
				)))
			Expect(err).ToNot(HaveOccurred())

			var names []string
			for _, t := range res.Tables.Tables() {
				names = append(names, t.Name)
			}
			Expect(names).To(Equal([]string{"A", "B", "C"}))

			b, ok := res.Tables.Get("B")
			Expect(ok).To(BeTrue())
			Expect(b.Row(4)).To(Equal(&stringtable.Row{Index: 4, Key: "b4", Value: []byte("y")}))

			c, _ := res.Tables.Get("C")
			Expect(c.Indices()).To(Equal([]int{0}))
		})

		It("rejects an update that precedes its table's creation", func() {
			_, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindPacket, 1, packet(
					updateTable(0, protocoltest.NewEntries(16).Add(0, "k", nil)),
				)))
			Expect(stringtable.IsCode(err, stringtable.UnknownTablePosition)).To(BeTrue())
			Expect(err.Error()).To(HaveSuffix("unknown table position 0"))

			cause, ok := errors.Cause(err).(*stringtable.Error)
			Expect(ok).To(BeTrue(), "cause: %#v", errors.Cause(err))
			Expect(cause.Position).To(Equal(0))
		})

		It("rejects a duplicate table name", func() {
			_, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindSignonPacket, 0, packet(
					createTable("userinfo", 64, protocoltest.NewEntries(64)),
					createTable("userinfo", 64, protocoltest.NewEntries(64)),
				)))
			Expect(stringtable.IsCode(err, stringtable.DuplicateTableName)).To(BeTrue())
		})

		It("accumulates active modifiers across phases and skips empty rows", func() {
			res, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindSignonPacket, 0, packet(
					createTable("ActiveModifiers", 1024, protocoltest.NewEntries(1024).
						Add(0, "", protocoltest.Modifier(1, 0, 0, 10)).
						Add(1, "", []byte{})),
				)).
				Frame(protocol.KindSyncTick, 0, protocoltest.Empty()).
				Frame(protocol.KindPacket, 30, packet(
					updateTable(0, protocoltest.NewEntries(1024).
						Add(7, "", protocoltest.Modifier(2, 0, 0, 11)).
						Add(8, "", nil)),
				)).
				Frame(protocol.KindStop, 60, protocoltest.Empty()))
			Expect(err).ToNot(HaveOccurred())

			Expect(res.Modifiers).To(HaveLen(2))
			Expect(res.Modifiers[0].GetModifierClass()).To(Equal(int32(10)))
			Expect(res.Modifiers[1].GetModifierClass()).To(Equal(int32(11)))

			t, _ := res.Tables.Get("ActiveModifiers")
			Expect(t.Row(1).Specialized()).To(BeFalse())
			Expect(t.Row(7).Modifier).To(BeIdenticalTo(res.Modifiers[1]))
		})

		It("decodes userinfo rows", func() {
			res, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindSignonPacket, 0, packet(
					createTable("userinfo", 64, protocoltest.NewEntries(64).
						Add(3, "3", protocoltest.UserInfo(42, "radiant_carry", 7))),
				)))
			Expect(err).ToNot(HaveOccurred())

			t, _ := res.Tables.Get("userinfo")
			Expect(t.Row(3).UserInfo.Name()).To(Equal("radiant_carry"))
			Expect(t.Row(3).UserInfo.XUID).To(Equal(uint64(42)))
		})

		Context("with a row that fails to specialize", func() {
			var c *protocoltest.Capture

			BeforeEach(func() {
				c = protocoltest.NewCapture(0).
					Frame(protocol.KindSignonPacket, 0, packet(
						createTable("userinfo", 64, protocoltest.NewEntries(64).
							Add(0, "0", []byte("truncated")).
							Add(1, "1", protocoltest.UserInfo(1, "ok", 1))),
					))
			})

			It("records the failure and continues by default", func() {
				res, err := parse(c)
				Expect(err).ToNot(HaveOccurred())
				Expect(res.SpecializationFailures).To(HaveLen(1))
				Expect(res.SpecializationFailures[0].Index).To(Equal(0))

				t, _ := res.Tables.Get("userinfo")
				Expect(t.Row(0).Specialized()).To(BeFalse())
				Expect(t.Row(1).Specialized()).To(BeTrue())
			})

			It("fails in strict mode", func() {
				p.SpecializeStrict = true
				_, err := parse(c)
				Expect(err).To(MatchError(ContainSubstring("could not specialize row 0")))
			})
		})

		It("uses a custom specializer registry", func() {
			var seen []string
			p.Specializers = func(protocol.Codec, *stringtable.ModifierAccumulator) *stringtable.Registry {
				var reg stringtable.Registry
				reg.Register("lightstyles", func(row stringtable.Row) (stringtable.Row, error) {
					seen = append(seen, string(row.Value))
					return row, nil
				})
				return &reg
			}

			_, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindSignonPacket, 0, packet(
					createTable("LightStyles", 64, protocoltest.NewEntries(64).
						Add(0, "0", []byte("abc")).
						Add(1, "1", []byte("mmm"))),
				)))
			Expect(err).ToNot(HaveOccurred())
			Expect(seen).To(Equal([]string{"abc", "mmm"}))
		})
	})

	Context("errors", func() {
		It("rejects a bad signature", func() {
			_, err := p.Parse(bytes.NewReader([]byte("HL2DEMO\x00\x00\x00\x00\x00")))
			Expect(capture.IsCode(err, capture.InvalidSignature)).To(BeTrue())
		})

		It("reports truncated embedded messages with their carrier", func() {
			_, err := parse(protocoltest.NewCapture(0).
				Frame(protocol.KindPacket, 9, protocoltest.Packet([]byte{0x04, 0x09, 0x08})))
			Expect(capture.IsCode(err, capture.TruncatedEmbedded)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("DEM_Packet at offset 12")))
		})

		It("reports a truncated final frame", func() {
			b := protocoltest.NewCapture(0).
				Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
				Bytes()
			_, err := p.Parse(bytes.NewReader(b[:len(b)-2]))
			Expect(capture.IsCode(err, capture.TruncatedFrame)).To(BeTrue())
		})
	})

	It("parses a capture file", func() {
		dir, err := ioutil.TempDir("", "godem_replay_test")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "match.dem")
		Expect(ioutil.WriteFile(path, protocoltest.NewCapture(0).
			Frame(protocol.KindStop, 1, protocoltest.Empty()).
			Bytes(), 0644)).To(Succeed())

		res, err := p.ParseFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Phases[Epilogue]).To(HaveLen(1))

		_, err = p.ParseFile(filepath.Join(dir, "missing.dem"))
		Expect(err).To(HaveOccurred())
	})
})

func TestReplay(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing replay")
}
