// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package varint

import (
	"bytes"
	"io"
	"math"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Varint", func() {
	var r Reader

	DescribeTable("round-trips values",
		func(v uint64, size int) {
			buf := Append(nil, v)
			Expect(buf).To(HaveLen(size))
			Expect(Size(v)).To(Equal(size))

			got, amt, err := r.Read(bytes.NewReader(buf))
			Expect(err).ToNot(HaveOccurred())
			Expect(amt).To(Equal(size))
			Expect(got).To(Equal(v))
		},
		Entry("zero", uint64(0), 1),
		Entry("one byte maximum", uint64(0x7F), 1),
		Entry("two bytes", uint64(0x80), 2),
		Entry("a common frame size", uint64(300), 2),
		Entry("32-bit maximum", uint64(math.MaxUint32), 5),
		Entry("2^63", uint64(1)<<63, 10),
		Entry("64-bit maximum", uint64(math.MaxUint64), 10),
	)

	It("decodes a known encoding", func() {
		got, amt, err := r.Read(bytes.NewReader([]byte{0xAC, 0x02}))
		Expect(err).ToNot(HaveOccurred())
		Expect(amt).To(Equal(2))
		Expect(got).To(Equal(uint64(300)))
	})

	It("stops at the first terminated byte", func() {
		br := bytes.NewReader([]byte{0x05, 0x06})
		got, _, err := r.Read(br)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(uint64(5)))

		got, _, err = r.Read(br)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(uint64(6)))
	})

	It("rejects ten continuation bytes", func() {
		buf := bytes.Repeat([]byte{0x80}, 11)
		_, amt, err := r.Read(bytes.NewReader(buf))
		Expect(err).To(Equal(ErrMalformed))
		Expect(amt).To(Equal(MaxLen))
	})

	It("rejects a terminating byte that overflows 64 bits", func() {
		buf := append(bytes.Repeat([]byte{0xFF}, 9), 0x02)
		_, _, err := r.Read(bytes.NewReader(buf))
		Expect(err).To(Equal(ErrMalformed))
	})

	It("returns io.EOF on an empty source", func() {
		_, amt, err := r.Read(bytes.NewReader(nil))
		Expect(err).To(Equal(io.EOF))
		Expect(amt).To(Equal(0))
	})

	It("returns io.ErrUnexpectedEOF when truncated mid-varint", func() {
		_, amt, err := r.Read(bytes.NewReader([]byte{0x80, 0x80}))
		Expect(err).To(Equal(io.ErrUnexpectedEOF))
		Expect(amt).To(Equal(2))
	})

	Context("Encoder", func() {
		var enc Encoder

		It("writes frame headers ahead of the payload", func() {
			var buf bytes.Buffer
			amt, err := enc.WriteFrame(&buf, 7, 300, []byte{0xAA, 0xBB})
			Expect(err).ToNot(HaveOccurred())
			Expect(amt).To(Equal(6))
			Expect(buf.Bytes()).To(Equal([]byte{0x07, 0xAC, 0x02, 0x02, 0xAA, 0xBB}))
		})

		It("writes embedded records ahead of the payload", func() {
			var buf bytes.Buffer
			amt, err := enc.WriteRecord(&buf, 12, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(amt).To(Equal(2))
			Expect(buf.Bytes()).To(Equal([]byte{0x0C, 0x00}))
		})
	})
})

func TestVarint(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing varint")
}
