// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package stringtable reconstructs string tables from their create and update
// operations.
//
// Updates address tables by creation-order position, never by name. Manager
// keeps its tables in an append-only slice, so a table's position is its
// index in that slice; the name index is built alongside it.
package stringtable

import (
	"strings"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/support/logging"
)

// Manager holds the string tables of a single decode session.
//
// The zero value is an empty Manager that performs no specialization. After
// first use, its exported fields must not be modified.
//
// Manager is not safe for concurrent use.
type Manager struct {
	// Specializers, if not nil, is consulted after every create and update
	// with the rows that were touched.
	Specializers *Registry

	// Strict, if true, makes a row specialization failure fatal. Otherwise the
	// row is left unspecialized, and the failure is logged and recorded.
	Strict bool

	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	tables   []*Table
	byName   map[string]int
	failures []*SpecializationError
}

// Create registers a new table at the next creation-order position and
// populates it with diffs.
func (m *Manager) Create(name string, l Layout, diffs []Diff) (*Table, error) {
	if _, ok := m.byName[name]; ok {
		return nil, &Error{Code: DuplicateTableName, Table: name, Position: -1}
	}

	t := &Table{
		Name:     name,
		Position: len(m.tables),
		Layout:   l,
		Rows:     make(map[int]*Row, len(diffs)),
	}
	m.tables = append(m.tables, t)
	if m.byName == nil {
		m.byName = make(map[string]int)
	}
	m.byName[name] = t.Position
	tablesCreated.Inc()

	logging.Must(m.Logger).Debugf("Created table %q at position %d with %d entries.",
		name, t.Position, len(diffs))
	return t, m.applyAndSpecialize(t, diffs)
}

// Update upserts diffs into the table at creation-order position.
func (m *Manager) Update(position int, diffs []Diff) (*Table, error) {
	t, ok := m.At(position)
	if !ok {
		return nil, &Error{Code: UnknownTablePosition, Position: position}
	}
	tableUpdates.Inc()
	return t, m.applyAndSpecialize(t, diffs)
}

// Apply applies a create or update string table message.
//
// If body is neither, Apply returns a nil Table and does nothing.
func (m *Manager) Apply(body protocol.EmbeddedBody) (*Table, error) {
	switch msg := body.(type) {
	case *protocol.SVCCreateStringTable:
		l := Layout{MaxEntries: int(msg.GetMaxEntries())}
		if msg.GetUserDataFixedSize() {
			l.FixedBits = int(msg.GetUserDataSizeBits())
		}

		diffs, err := DecodeEntries(msg.GetStringData(), int(msg.GetNumEntries()), l)
		if err != nil {
			return nil, &Error{Code: MalformedEntries, Table: msg.GetName(), Position: len(m.tables), Err: err}
		}
		t, err := m.Create(msg.GetName(), l, diffs)
		if t != nil {
			t.Flags = msg.GetFlags()
		}
		return t, err

	case *protocol.SVCUpdateStringTable:
		t, ok := m.At(int(msg.GetTableId()))
		if !ok {
			return nil, &Error{Code: UnknownTablePosition, Position: int(msg.GetTableId())}
		}

		diffs, err := DecodeEntries(msg.GetStringData(), int(msg.GetNumChangedEntries()), t.Layout)
		if err != nil {
			return nil, &Error{Code: MalformedEntries, Table: t.Name, Position: t.Position, Err: err}
		}
		return m.Update(t.Position, diffs)

	default:
		return nil, nil
	}
}

// Get returns the table called name.
func (m *Manager) Get(name string) (*Table, bool) {
	pos, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return m.tables[pos], true
}

// At returns the table at creation-order position.
func (m *Manager) At(position int) (*Table, bool) {
	if position < 0 || position >= len(m.tables) {
		return nil, false
	}
	return m.tables[position], true
}

// Len returns the number of tables created.
func (m *Manager) Len() int { return len(m.tables) }

// Tables returns all tables in creation order. The returned slice must not be
// modified.
func (m *Manager) Tables() []*Table { return m.tables }

// Failures returns the non-fatal specialization failures recorded so far.
func (m *Manager) Failures() []*SpecializationError { return m.failures }

func (m *Manager) applyAndSpecialize(t *Table, diffs []Diff) error {
	touched := t.apply(diffs)
	rowsTouched.Add(float64(len(touched)))

	fn, ok := m.Specializers.Lookup(t.Name)
	if !ok || fn == nil {
		return nil
	}

	label := strings.ToLower(t.Name)
	for _, index := range touched {
		row := t.Rows[index]
		if len(row.Value) == 0 {
			continue
		}

		enriched, err := fn(*row)
		if err != nil {
			specializationFailures.WithLabelValues(label).Inc()
			serr := &SpecializationError{Table: t.Name, Index: index, Err: err}
			if m.Strict {
				return serr
			}

			logging.Must(m.Logger).Warnf("Leaving row unspecialized: %s", serr)
			m.failures = append(m.failures, serr)
			continue
		}

		t.Rows[index] = &enriched
		specializedRows.WithLabelValues(label).Inc()
	}
	return nil
}
