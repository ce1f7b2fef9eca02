// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package fmtutil contains lazy formatters for binary data in logs and
// errors.
package fmtutil

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// MaxHexDump is the number of bytes Hex will dump before truncating.
const MaxHexDump = 256

// Hex renders as a hex dump, in the style of "hexdump -C". The dump is built
// only when the value is formatted, and stops after MaxHexDump bytes.
type Hex []byte

func (h Hex) String() string {
	if len(h) <= MaxHexDump {
		return hex.Dump(h)
	}

	var sb strings.Builder
	sb.WriteString(hex.Dump(h[:MaxHexDump]))
	sb.WriteString("... (")
	sb.WriteString(strconv.Itoa(len(h) - MaxHexDump))
	sb.WriteString(" more bytes)\n")
	return sb.String()
}

// HexSlice renders as a Go byte array literal with hex elements, such as
// "[3]byte{0x50, 0x42, 0x00}".
type HexSlice []byte

func (hs HexSlice) String() string {
	const digits = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(hs)*6 + 16)
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(len(hs)))
	sb.WriteString("]byte{")
	for i, b := range hs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("0x")
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0F])
	}
	sb.WriteByte('}')
	return sb.String()
}
