// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dataio

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReadFull", func() {
	It("fills the buffer from a reader that returns short reads", func() {
		buf := make([]byte, 4)
		amt, err := ReadFull(iotest.OneByteReader(bytes.NewReader([]byte{1, 2, 3, 4, 5})), buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(amt).To(Equal(4))
		Expect(buf).To(Equal([]byte{1, 2, 3, 4}))
	})

	It("returns io.ErrUnexpectedEOF on a partial read", func() {
		amt, err := ReadFull(bytes.NewReader([]byte{1, 2}), make([]byte, 4))
		Expect(err).To(Equal(io.ErrUnexpectedEOF))
		Expect(amt).To(Equal(2))
	})

	It("returns io.EOF when nothing was read", func() {
		_, err := ReadFull(bytes.NewReader(nil), make([]byte, 4))
		Expect(err).To(Equal(io.EOF))
	})
})

var _ = Describe("OffsetReader", func() {
	It("counts bytes consumed through Read and ReadByte", func() {
		or := NewOffsetReader(iotest.OneByteReader(bytes.NewReader([]byte{1, 2, 3, 4})))

		b, err := or.ReadByte()
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal(byte(1)))
		Expect(or.Offset()).To(Equal(int64(1)))

		amt, err := ReadFull(or, make([]byte, 2))
		Expect(err).ToNot(HaveOccurred())
		Expect(amt).To(Equal(2))
		Expect(or.Offset()).To(Equal(int64(3)))

		_, err = ReadFull(or, make([]byte, 2))
		Expect(err).To(Equal(io.ErrUnexpectedEOF))
		Expect(or.Offset()).To(Equal(int64(4)))

		_, err = or.ReadByte()
		Expect(err).To(Equal(io.EOF))
		Expect(or.Offset()).To(Equal(int64(4)))
	})
})

func TestDataIO(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing dataio")
}
