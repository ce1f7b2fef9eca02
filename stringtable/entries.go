// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package stringtable

import (
	"github.com/danjacques/godem/support/bitreader"

	"github.com/pkg/errors"
)

const (
	// keyHistorySize is the number of recent keys that an entry may reuse a
	// prefix of.
	keyHistorySize = 32
	// maxKeyLength bounds a single NUL-terminated key.
	maxKeyLength = 1024
	// valueLengthBits is the width of a variable-size value's byte count.
	valueLengthBits = 14
)

// Diff is a single decoded entry of a create or update operation.
type Diff struct {
	Index int

	// HasKey is true if the entry carried a key. Key is meaningful only if
	// HasKey is true.
	HasKey bool
	Key    string

	// HasValue is true if the entry carried a value.
	HasValue bool
	Value    []byte
}

// Layout describes how a table's entry values are encoded.
type Layout struct {
	// MaxEntries is the table's capacity. Explicit entry indices are
	// log2(MaxEntries) bits wide.
	MaxEntries int

	// FixedBits, if > 0, is the exact bit size of every value. Otherwise each
	// value carries its own 14-bit byte length.
	FixedBits int
}

// DecodeEntries decodes count entries from data.
func DecodeEntries(data []byte, count int, l Layout) ([]Diff, error) {
	br := bitreader.New(data)

	dict, err := br.ReadBool()
	if err != nil {
		if count == 0 {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading dictionary flag")
	}
	if dict {
		return nil, errors.New("dictionary-encoded entries are not supported")
	}

	var (
		indexBits = bitreader.Log2(l.MaxEntries)
		history   = make([]string, 0, keyHistorySize)
		diffs     = make([]Diff, 0, count)
		index     = -1
	)
	for i := 0; i < count; i++ {
		var d Diff

		incr, err := br.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d: reading index", i)
		}
		if incr {
			index++
		} else {
			v, err := br.ReadBits(indexBits)
			if err != nil {
				return nil, errors.Wrapf(err, "entry %d: reading index", i)
			}
			index = int(v)
		}
		d.Index = index

		if d.HasKey, err = br.ReadBool(); err != nil {
			return nil, errors.Wrapf(err, "entry %d: reading key flag", i)
		}
		if d.HasKey {
			if d.Key, err = readKey(br, history); err != nil {
				return nil, errors.Wrapf(err, "entry %d (index %d)", i, index)
			}

			if len(history) == keyHistorySize {
				copy(history, history[1:])
				history = history[:keyHistorySize-1]
			}
			history = append(history, d.Key)
		}

		if d.HasValue, err = br.ReadBool(); err != nil {
			return nil, errors.Wrapf(err, "entry %d: reading value flag", i)
		}
		if d.HasValue {
			if d.Value, err = readValue(br, l); err != nil {
				return nil, errors.Wrapf(err, "entry %d (index %d)", i, index)
			}
		}

		diffs = append(diffs, d)
	}
	return diffs, nil
}

func readKey(br *bitreader.R, history []string) (string, error) {
	useHistory, err := br.ReadBool()
	if err != nil {
		return "", errors.Wrap(err, "reading key history flag")
	}
	if !useHistory {
		key, err := br.ReadString(maxKeyLength)
		return key, errors.Wrap(err, "reading key")
	}

	pos, err := br.ReadBits(5)
	if err != nil {
		return "", errors.Wrap(err, "reading key history index")
	}
	size, err := br.ReadBits(5)
	if err != nil {
		return "", errors.Wrap(err, "reading key prefix length")
	}
	suffix, err := br.ReadString(maxKeyLength)
	if err != nil {
		return "", errors.Wrap(err, "reading key suffix")
	}

	if int(pos) >= len(history) {
		return suffix, nil
	}
	prefix := history[pos]
	if int(size) < len(prefix) {
		prefix = prefix[:size]
	}
	return prefix + suffix, nil
}

func readValue(br *bitreader.R, l Layout) ([]byte, error) {
	if l.FixedBits > 0 {
		v, err := br.ReadBitsAsBytes(l.FixedBits)
		return v, errors.Wrap(err, "reading fixed-size value")
	}

	size, err := br.ReadBits(valueLengthBits)
	if err != nil {
		return nil, errors.Wrap(err, "reading value length")
	}
	v, err := br.ReadBytes(int(size))
	return v, errors.Wrap(err, "reading value")
}
