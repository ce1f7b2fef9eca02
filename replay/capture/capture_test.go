// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture_test

import (
	"bytes"
	"io"
	"testing"

	. "github.com/danjacques/godem/replay/capture"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/protocol/protocoltest"
	"github.com/danjacques/godem/support/bufferpool"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func mustReader(b []byte) *Reader {
	cr, err := NewReader(bytes.NewReader(b))
	Expect(err).ToNot(HaveOccurred())
	return cr
}

var _ = Describe("Reader", func() {
	Context("header", func() {
		It("reads the reserved field", func() {
			cr := mustReader(protocoltest.NewCapture(0x01020304).Bytes())
			Expect(cr.Reserved).To(Equal(uint32(0x01020304)))
			Expect(cr.Offset()).To(Equal(int64(protocol.HeaderSize)))

			_, err := cr.Next()
			Expect(err).To(Equal(io.EOF))
		})

		It("rejects a mismatched signature before reading any frame", func() {
			b := protocoltest.NewCapture(0).
				Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("x", "y", 1)).
				Bytes()
			b[0] = 'X'

			_, err := NewReader(bytes.NewReader(b))
			Expect(err).To(HaveOccurred())
			Expect(IsCode(err, InvalidSignature)).To(BeTrue())
		})

		It("rejects a signature missing its trailing NUL", func() {
			b := append([]byte("PBUFDEM!"), 0, 0, 0, 0)
			_, err := NewReader(bytes.NewReader(b))
			Expect(IsCode(err, InvalidSignature)).To(BeTrue())
		})

		It("rejects a short header", func() {
			_, err := NewReader(bytes.NewReader([]byte("PBUF")))
			Expect(IsCode(err, InvalidSignature)).To(BeTrue())
		})
	})

	Context("frames", func() {
		It("decodes frames in order", func() {
			cr := mustReader(protocoltest.NewCapture(0).
				Frame(protocol.KindFileHeader, 0, protocoltest.FileHeader("PBUFDEM", "dota", 40)).
				Frame(protocol.KindSyncTick, 5, protocoltest.Empty()).
				Frame(protocol.KindStop, 300, protocoltest.Empty()).
				Bytes())

			msg, err := cr.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(msg.Kind).To(Equal(protocol.KindFileHeader))
			Expect(msg.Offset).To(Equal(int64(protocol.HeaderSize)))
			Expect(msg.Body.(*protocol.DemoFileHeader).GetMapName()).To(Equal("dota"))
			Expect(msg.Embedded).To(BeNil())

			msg, err = cr.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(msg.Kind).To(Equal(protocol.KindSyncTick))
			Expect(msg.Tick).To(Equal(uint64(5)))

			msg, err = cr.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(msg.Kind).To(Equal(protocol.KindStop))
			Expect(msg.Tick).To(Equal(uint64(300)))

			_, err = cr.Next()
			Expect(err).To(Equal(io.EOF))
		})

		for _, pool := range []*bufferpool.Pool{nil, {}} {
			pool := pool

			It("inflates compressed frames", func() {
				payload := protocoltest.FileHeader("PBUFDEM", "dota_compressed", 40)
				cr := mustReader(protocoltest.NewCapture(0).
					CompressedFrame(protocol.KindFileHeader, 1, payload).
					Bytes())
				cr.Buffers = pool

				f, err := cr.ReadFrame()
				Expect(err).ToNot(HaveOccurred())
				Expect(f.Compressed).To(BeTrue())
				Expect(f.Kind).To(Equal(protocol.KindFileHeader))
				Expect(f.Payload).To(Equal(payload))

				msg, err := cr.Decode(f)
				Expect(err).ToNot(HaveOccurred())
				Expect(msg.Compressed).To(BeTrue())
				Expect(msg.Body.(*protocol.DemoFileHeader).GetMapName()).To(Equal("dota_compressed"))
			})
		}

		It("rejects a compressed payload that does not inflate", func() {
			var enc bytes.Buffer
			enc.Write(protocoltest.NewCapture(0).Bytes())
			enc.Write([]byte{byte(protocol.KindPacket) | protocol.CompressedMask, 0, 3, 0xFF, 0xFF, 0xFF})

			_, err := mustReader(enc.Bytes()).Next()
			Expect(IsCode(err, CorruptPayload)).To(BeTrue())
		})

		It("rejects a payload that does not decode", func() {
			_, err := mustReader(protocoltest.NewCapture(0).
				Frame(protocol.KindFileHeader, 0, []byte{0x0A, 0x05, 'a'}).
				Bytes()).Next()
			Expect(IsCode(err, CorruptPayload)).To(BeTrue())
		})
	})

	DescribeTable("structural errors",
		func(frame []byte, code Code) {
			b := append(protocoltest.NewCapture(0).Bytes(), frame...)
			_, err := mustReader(b).Next()
			Expect(err).To(HaveOccurred())
			Expect(CodeOf(err)).To(Equal(code), "error: %s", err)

			ce := err.(*Error)
			Expect(ce.Offset).To(Equal(int64(protocol.HeaderSize)))

			// Wrapping must not hide the typed error from errors.Cause, even when
			// it has no underlying error of its own.
			Expect(errors.Cause(errors.Wrap(err, "reading capture"))).To(BeIdenticalTo(ce))
		},
		Entry("a declared size larger than the rest of the capture",
			[]byte{0x07, 0x00, 0x05, 0x01, 0x02}, TruncatedFrame),
		Entry("a capture ending inside the frame header",
			[]byte{0x07, 0x00}, TruncatedFrame),
		Entry("a capture ending inside a varint",
			[]byte{0x07, 0x80}, TruncatedFrame),
		Entry("a varint with ten continuation bytes",
			[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, MalformedVarInt),
		Entry("a kind outside the type table",
			[]byte{0x0F, 0x00, 0x00}, UnknownMessageKind),
		Entry("a kind with a partial compression mask",
			[]byte{0x17, 0x00, 0x00}, UnknownMessageKind),
	)
})

var _ = Describe("ExtractEmbedded", func() {
	It("decodes embedded messages in order", func() {
		blob := protocoltest.Embedded(
			protocoltest.Record{Kind: protocol.EmbeddedTick, Payload: protocoltest.Tick(10)},
			protocoltest.Record{Kind: protocol.EmbeddedSetView, Payload: protocoltest.SetView(4)},
			protocoltest.Record{Kind: protocol.EmbeddedTick, Payload: protocoltest.Tick(11)},
		)

		msgs, err := ExtractEmbedded(nil, blob)
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(HaveLen(3))
		Expect(msgs[0].Body.(*protocol.NetTick).GetTick()).To(Equal(uint32(10)))
		Expect(msgs[1].Body.(*protocol.SVCSetView).GetEntityIndex()).To(Equal(int32(4)))
		Expect(msgs[2].Body.(*protocol.NetTick).GetTick()).To(Equal(uint32(11)))
	})

	It("returns nothing for an empty blob", func() {
		msgs, err := ExtractEmbedded(protocol.WireCodec{}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(BeEmpty())
	})

	It("accepts empty payloads", func() {
		msgs, err := ExtractEmbedded(nil, []byte{byte(protocol.EmbeddedTick), 0x00})
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].Size).To(Equal(uint64(0)))
	})

	DescribeTable("structural errors",
		func(blob []byte, code Code, offset int) {
			_, err := ExtractEmbedded(nil, blob)
			Expect(CodeOf(err)).To(Equal(code), "error: %v", err)
			Expect(err.(*Error).Offset).To(Equal(int64(offset)))
		},
		Entry("a declared size larger than the blob",
			[]byte{0x04, 0x00, 0x04, 0x05, 0x08}, TruncatedEmbedded, 2),
		Entry("a blob ending after the kind",
			[]byte{0x04}, TruncatedEmbedded, 0),
		Entry("a kind outside the embedded table",
			[]byte{0x04, 0x00, 0x05, 0x00}, UnknownMessageKind, 2),
		Entry("a malformed varint",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, MalformedVarInt, 0),
	)
})

func TestCapture(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing capture")
}
