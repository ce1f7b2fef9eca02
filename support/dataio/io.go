// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package dataio adapts byte sources for the capture decoder.
package dataio

import (
	"io"
)

// ReadFull reads from r until buf is full, or until an error is encountered.
//
// It returns the number of bytes read. If r ends before buf is full,
// ReadFull returns io.ErrUnexpectedEOF, unless nothing at all was read, in
// which case it returns io.EOF.
func ReadFull(r io.Reader, buf []byte) (int, error) {
	total := 0
	for remaining := buf; len(remaining) > 0; {
		amt, err := r.Read(remaining)
		remaining = remaining[amt:]
		total += amt
		if err != nil {
			if err == io.EOF {
				switch {
				case len(remaining) == 0:
					return total, nil
				case total > 0:
					return total, io.ErrUnexpectedEOF
				}
			}
			return total, err
		}
	}
	return total, nil
}
