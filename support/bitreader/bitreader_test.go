// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package bitreader

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("R", func() {
	It("reads bits least-significant first", func() {
		// 0xB5 = 1011 0101
		r := New([]byte{0xB5, 0x01})

		v, err := r.ReadBool()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeTrue())

		bits, err := r.ReadBits(3)
		Expect(err).ToNot(HaveOccurred())
		Expect(bits).To(Equal(uint64(0x2)))

		// Crosses into the second byte: 1011 from byte 0, then 1 from byte 1.
		bits, err = r.ReadBits(5)
		Expect(err).ToNot(HaveOccurred())
		Expect(bits).To(Equal(uint64(0x1B)))
		Expect(r.Position()).To(Equal(9))
		Expect(r.RemainingBits()).To(Equal(7))
	})

	It("reads unaligned bytes", func() {
		r := New([]byte{0xF1, 0x0F})
		_, err := r.ReadBits(4)
		Expect(err).ToNot(HaveOccurred())

		b, err := r.ReadByte()
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal(byte(0xFF)))
	})

	It("reads a NUL-terminated string", func() {
		r := New([]byte{'a', 'b', 0, 'c'})
		s, err := r.ReadString(16)
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(Equal("ab"))

		b, err := r.ReadByte()
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal(byte('c')))
	})

	It("rejects a string without a terminator inside the limit", func() {
		r := New([]byte{'a', 'b', 'c', 0})
		_, err := r.ReadString(2)
		Expect(err).To(HaveOccurred())
	})

	It("packs a partial trailing byte", func() {
		r := New([]byte{0xAB, 0x05})
		buf, err := r.ReadBitsAsBytes(11)
		Expect(err).ToNot(HaveOccurred())
		Expect(buf).To(Equal([]byte{0xAB, 0x05}))
	})

	It("fails on overrun", func() {
		r := New([]byte{0xFF})
		_, err := r.ReadBits(9)
		Expect(err).To(Equal(ErrOverrun))

		_, err = r.ReadBytes(2)
		Expect(err).To(Equal(ErrOverrun))
	})

	DescribeTable("Log2",
		func(n, bits int) { Expect(Log2(n)).To(Equal(bits)) },
		Entry("zero", 0, 0),
		Entry("one", 1, 0),
		Entry("two", 2, 1),
		Entry("a power of two", 1024, 10),
		Entry("between powers", 1500, 10),
	)
})

func TestBitReader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing bitreader")
}
