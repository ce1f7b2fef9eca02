// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package stringtable

import (
	"strings"

	"github.com/danjacques/godem/protocol"
)

// Names of tables with registered specializers.
const (
	ActiveModifiersTable  = "activemodifiers"
	UserInfoTable         = "userinfo"
	InstanceBaselineTable = "instancebaseline"
)

// SpecializeFunc returns an enriched copy of row.
//
// It is only called for rows with a non-empty Value.
type SpecializeFunc func(row Row) (Row, error)

// Registry maps table names to the SpecializeFunc applied to their touched
// rows. Names are matched case-insensitively.
//
// The zero value is an empty Registry.
type Registry struct {
	funcs map[string]SpecializeFunc
}

// Register registers fn for the table called name, replacing any existing
// registration. A nil fn marks the name as recognized but left unprocessed.
func (reg *Registry) Register(name string, fn SpecializeFunc) {
	if reg.funcs == nil {
		reg.funcs = make(map[string]SpecializeFunc)
	}
	reg.funcs[strings.ToLower(name)] = fn
}

// Lookup returns the SpecializeFunc for the table called name.
//
// ok is true if name is registered, even if its SpecializeFunc is nil.
func (reg *Registry) Lookup(name string) (fn SpecializeFunc, ok bool) {
	if reg == nil {
		return nil, false
	}
	fn, ok = reg.funcs[strings.ToLower(name)]
	return
}

// NewRegistry returns a Registry with the standard specializers:
//
//   - "activemodifiers" rows are decoded with codec and appended to acc.
//   - "userinfo" rows are decoded as protocol.UserInfo records.
//   - "instancebaseline" is recognized and left alone.
func NewRegistry(codec protocol.Codec, acc *ModifierAccumulator) *Registry {
	var reg Registry
	reg.Register(ActiveModifiersTable, ActiveModifiers(codec, acc))
	reg.Register(UserInfoTable, UserInfo)
	reg.Register(InstanceBaselineTable, nil)
	return &reg
}

// ActiveModifiers returns a SpecializeFunc that decodes a row's value as a
// protocol.ModifierBuffTableEntry and appends it to acc.
//
// If codec is nil, protocol.WireCodec is used. If acc is nil, entries are not
// accumulated.
func ActiveModifiers(codec protocol.Codec, acc *ModifierAccumulator) SpecializeFunc {
	if codec == nil {
		codec = protocol.WireCodec{}
	}

	return func(row Row) (Row, error) {
		e, err := codec.DecodeModifier(row.Value)
		if err != nil {
			return row, err
		}
		row.Modifier = e
		if acc != nil {
			acc.Add(e)
		}
		return row, nil
	}
}

// UserInfo is a SpecializeFunc that decodes a row's value as a
// protocol.UserInfo.
func UserInfo(row Row) (Row, error) {
	ui, err := protocol.ParseUserInfo(row.Value)
	if err != nil {
		return row, err
	}
	row.UserInfo = ui
	return row, nil
}

// ModifierAccumulator collects decoded "activemodifiers" entries across a
// decode session, in table mutation order. Entries are never removed.
type ModifierAccumulator struct {
	entries []*protocol.ModifierBuffTableEntry
}

// Add appends e.
func (a *ModifierAccumulator) Add(e *protocol.ModifierBuffTableEntry) {
	a.entries = append(a.entries, e)
	modifierEntries.Inc()
}

// Entries returns the accumulated entries. The returned slice must not be
// modified.
func (a *ModifierAccumulator) Entries() []*protocol.ModifierBuffTableEntry { return a.entries }

// Len returns the number of accumulated entries.
func (a *ModifierAccumulator) Len() int { return len(a.entries) }
