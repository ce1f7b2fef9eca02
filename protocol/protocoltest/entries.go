// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocoltest

import (
	"github.com/danjacques/godem/support/bitreader"
)

// Entries encodes string table entry data.
type Entries struct {
	indexBits int
	fixedBits int

	w     bitWriter
	count int
	last  int
}

// NewEntries returns an Entries for a table of maxEntries rows with
// variable-size values.
func NewEntries(maxEntries int) *Entries {
	e := Entries{
		indexBits: bitreader.Log2(maxEntries),
		last:      -1,
	}
	e.w.writeBool(false) // No dictionary encoding.
	return &e
}

// NewFixedEntries returns an Entries for a table whose values are exactly
// fixedBits bits long.
func NewFixedEntries(maxEntries, fixedBits int) *Entries {
	e := NewEntries(maxEntries)
	e.fixedBits = fixedBits
	return e
}

// Add encodes an entry. An empty key is encoded as "no key", and a nil value
// as "no value".
func (e *Entries) Add(index int, key string, value []byte) *Entries {
	e.writeIndex(index)

	e.w.writeBool(key != "")
	if key != "" {
		e.w.writeBool(false) // No history reference.
		e.w.writeString(key)
	}

	e.writeValue(value)
	e.count++
	return e
}

// AddFromHistory encodes an entry whose key reuses the first prefixLen bytes
// of the key written historyIndex entries into the 32-entry key history.
func (e *Entries) AddFromHistory(index, historyIndex, prefixLen int, suffix string, value []byte) *Entries {
	e.writeIndex(index)

	e.w.writeBool(true)
	e.w.writeBool(true)
	e.w.writeBits(uint64(historyIndex), 5)
	e.w.writeBits(uint64(prefixLen), 5)
	e.w.writeString(suffix)

	e.writeValue(value)
	e.count++
	return e
}

func (e *Entries) writeIndex(index int) {
	if index == e.last+1 {
		e.w.writeBool(true)
	} else {
		e.w.writeBool(false)
		e.w.writeBits(uint64(index), e.indexBits)
	}
	e.last = index
}

func (e *Entries) writeValue(value []byte) {
	e.w.writeBool(value != nil)
	if value == nil {
		return
	}

	if e.fixedBits > 0 {
		for i := 0; i < e.fixedBits; i += 8 {
			n := e.fixedBits - i
			if n > 8 {
				n = 8
			}
			var b byte
			if i/8 < len(value) {
				b = value[i/8]
			}
			e.w.writeBits(uint64(b), n)
		}
		return
	}

	e.w.writeBits(uint64(len(value)), 14)
	for _, b := range value {
		e.w.writeBits(uint64(b), 8)
	}
}

// Len returns the number of entries encoded.
func (e *Entries) Len() int { return e.count }

// Bytes returns the encoded entry data.
func (e *Entries) Bytes() []byte { return e.w.buf }

// bitWriter writes least-significant-bit-first bitstreams.
type bitWriter struct {
	buf []byte
	pos int
}

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := 0; i < n; i++ {
		if w.pos%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v&(1<<uint(i)) != 0 {
			w.buf[w.pos/8] |= 1 << uint(w.pos%8)
		}
		w.pos++
	}
}

func (w *bitWriter) writeBool(v bool) {
	if v {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
}

func (w *bitWriter) writeString(s string) {
	for i := 0; i < len(s); i++ {
		w.writeBits(uint64(s[i]), 8)
	}
	w.writeBits(0, 8)
}
