// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package stringtable

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies a string table error.
type Code int

const (
	// DuplicateTableName means a table was created with the name of an
	// existing table.
	DuplicateTableName Code = iota + 1
	// UnknownTablePosition means an update addressed a position that no
	// table occupies.
	UnknownTablePosition
	// MalformedEntries means a table's entry data could not be decoded.
	MalformedEntries
)

func (c Code) String() string {
	switch c {
	case DuplicateTableName:
		return "duplicate table name"
	case UnknownTablePosition:
		return "unknown table position"
	case MalformedEntries:
		return "malformed entry data"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is a fatal string table error.
type Error struct {
	Code Code

	// Table is the name of the table involved, if known.
	Table string
	// Position is the creation-order position involved, or -1.
	Position int

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Table != "" {
		msg += fmt.Sprintf(" %q", e.Table)
	}
	switch {
	case e.Code == UnknownTablePosition:
		msg += fmt.Sprintf(" %d", e.Position)
	case e.Position >= 0:
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
//
// Error has no Cause method, so errors.Cause stops here and returns the Error
// itself.
func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the Code of the Error at the root of err's Cause chain, or 0
// if there is none.
func CodeOf(err error) Code {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Code
	}
	return 0
}

// IsCode returns true if err's chain contains an Error with code c.
func IsCode(err error, c Code) bool { return CodeOf(err) == c }

// SpecializationError is returned when a row's value cannot be decoded by its
// table's specializer.
type SpecializationError struct {
	Table string
	Index int
	Err   error
}

func (e *SpecializationError) Error() string {
	return fmt.Sprintf("could not specialize row %d of %q: %s", e.Index, e.Table, e.Err)
}

// Unwrap returns the decoder's error.
func (e *SpecializationError) Unwrap() error { return e.Err }
