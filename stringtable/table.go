// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package stringtable

import (
	"fmt"
	"sort"

	"github.com/danjacques/godem/protocol"
)

// Row is a single string table row.
//
// A Row may carry a decoded representation of its Value, attached by its
// table's specializer. At most one of Modifier and UserInfo is set.
type Row struct {
	Index int
	Key   string
	Value []byte

	// Modifier is the decoded value of an "activemodifiers" row.
	Modifier *protocol.ModifierBuffTableEntry
	// UserInfo is the decoded value of a "userinfo" row.
	UserInfo *protocol.UserInfo
}

// Specialized returns true if r carries a decoded representation.
func (r *Row) Specialized() bool { return r.Modifier != nil || r.UserInfo != nil }

func (r *Row) String() string {
	return fmt.Sprintf("Row{Index=%d, Key=%q, Value=%d bytes, Specialized=%v}",
		r.Index, r.Key, len(r.Value), r.Specialized())
}

// Table is a named string table.
type Table struct {
	// Name is the table's name.
	Name string
	// Position is the table's creation-order position. It is assigned when
	// the table is created and never changes.
	Position int
	// Layout is the encoding of the table's entry data.
	Layout Layout
	// Flags are the table's creation flags.
	Flags int32

	// Rows maps a row index to its current Row.
	Rows map[int]*Row
}

// Row returns the row at index, or nil if there is none.
func (t *Table) Row(index int) *Row { return t.Rows[index] }

// Indices returns the table's row indices in ascending order.
func (t *Table) Indices() []int {
	indices := make([]int, 0, len(t.Rows))
	for i := range t.Rows {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{Name=%q, Position=%d, Rows=%d}", t.Name, t.Position, len(t.Rows))
}

// apply upserts diffs into t's rows and returns the distinct indices touched,
// in first-touched order.
//
// A diff without a key keeps the existing row's key, and a diff without a
// value keeps its value. Replacing a value discards any decoded
// representation of the old one.
func (t *Table) apply(diffs []Diff) []int {
	if t.Rows == nil {
		t.Rows = make(map[int]*Row, len(diffs))
	}

	touched := make([]int, 0, len(diffs))
	seen := make(map[int]struct{}, len(diffs))
	for i := range diffs {
		d := &diffs[i]

		var row Row
		if cur := t.Rows[d.Index]; cur != nil {
			row = *cur
		}
		row.Index = d.Index
		if d.HasKey {
			row.Key = d.Key
		}
		if d.HasValue {
			row.Value = d.Value
			row.Modifier, row.UserInfo = nil, nil
		}
		t.Rows[d.Index] = &row

		if _, ok := seen[d.Index]; !ok {
			seen[d.Index] = struct{}{}
			touched = append(touched, d.Index)
		}
	}
	return touched
}
