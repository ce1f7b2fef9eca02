// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package replay decodes a complete demo capture into phase-ordered message
// logs and reconstructed string tables.
package replay

import (
	"io"
	"os"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/replay/capture"
	"github.com/danjacques/godem/stringtable"
	"github.com/danjacques/godem/support/bufferpool"
	"github.com/danjacques/godem/support/logging"

	"github.com/pkg/errors"
)

// RegistryFunc builds the specializer Registry for a single Parse. acc is
// the session's modifier accumulator.
type RegistryFunc func(codec protocol.Codec, acc *stringtable.ModifierAccumulator) *stringtable.Registry

// Parser decodes captures.
//
// The zero value is a valid Parser using protocol.WireCodec and the standard
// specializers. A Parser may be reused; each Parse is an independent session.
type Parser struct {
	// Codec decodes message payloads. If nil, protocol.WireCodec is used.
	Codec protocol.Codec

	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	// Buffers, if not nil, supplies scratch buffers for compressed frames.
	Buffers *bufferpool.Pool

	// Specializers builds the session's specializer Registry. If nil,
	// stringtable.NewRegistry is used.
	Specializers RegistryFunc

	// SpecializeStrict, if true, makes a row specialization failure abort the
	// parse. Otherwise failures are recorded in the Result.
	SpecializeStrict bool
}

// Result is a fully decoded capture.
type Result struct {
	// Reserved is the capture header's reserved field.
	Reserved uint32

	// Header is the capture's file header, if one was seen.
	Header *protocol.DemoFileHeader
	// FileInfo is the capture's trailing file info, if one was seen.
	FileInfo *protocol.DemoFileInfo

	// Phases maps each phase that was entered to its messages, in capture
	// order.
	Phases map[Phase][]*protocol.Message

	// Tables holds the final string tables.
	Tables *stringtable.Manager

	// Modifiers holds every decoded "activemodifiers" entry, in table
	// mutation order.
	Modifiers []*protocol.ModifierBuffTableEntry

	// SpecializationFailures lists rows that could not be specialized.
	SpecializationFailures []*stringtable.SpecializationError

	// LastTick is the tick of the last frame.
	LastTick uint64
}

// Messages returns every top-level message in capture order.
func (r *Result) Messages() []*protocol.Message {
	var n int
	for _, log := range r.Phases {
		n += len(log)
	}

	msgs := make([]*protocol.Message, 0, n)
	for _, p := range Phases {
		msgs = append(msgs, r.Phases[p]...)
	}
	return msgs
}

// Parse decodes the capture read from r to completion.
//
// Any structural error aborts the parse; there is no partial Result.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	log := logging.Must(p.Logger)

	cr, err := capture.NewReader(r)
	if err != nil {
		parseErrors.WithLabelValues(errorLabel(err)).Inc()
		return nil, err
	}
	cr.Codec = p.Codec
	cr.Logger = p.Logger
	cr.Buffers = p.Buffers

	s := p.newSession()
	s.res.Reserved = cr.Reserved

	for {
		msg, err := cr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			parseErrors.WithLabelValues(errorLabel(err)).Inc()
			return nil, err
		}

		if err := s.handle(msg); err != nil {
			parseErrors.WithLabelValues(errorLabel(err)).Inc()
			return nil, err
		}
	}

	res := s.finish()
	log.Debugf("Parsed %d frames through tick %d; %d tables, %d modifier entries.",
		len(res.Messages()), res.LastTick, res.Tables.Len(), len(res.Modifiers))
	capturesParsed.Inc()
	return res, nil
}

// ParseFile opens and parses the capture at path.
func (p *Parser) ParseFile(path string) (*Result, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open capture")
	}
	defer fd.Close()

	res, err := p.Parse(fd)
	return res, errors.Wrapf(err, "parsing %q", path)
}

func (p *Parser) codec() protocol.Codec {
	if p.Codec != nil {
		return p.Codec
	}
	return protocol.WireCodec{}
}

// session is the state of a single Parse.
type session struct {
	log    logging.L
	codec  protocol.Codec
	phases *phaseTracker
	tables *stringtable.Manager
	acc    *stringtable.ModifierAccumulator
	res    Result
}

func (p *Parser) newSession() *session {
	s := session{
		log:    logging.Must(p.Logger),
		codec:  p.codec(),
		phases: newPhaseTracker(),
		acc:    &stringtable.ModifierAccumulator{},
	}

	newRegistry := p.Specializers
	if newRegistry == nil {
		newRegistry = stringtable.NewRegistry
	}
	s.tables = &stringtable.Manager{
		Specializers: newRegistry(s.codec, s.acc),
		Strict:       p.SpecializeStrict,
		Logger:       p.Logger,
	}
	return &s
}

func (s *session) handle(msg *protocol.Message) error {
	if data, ok := protocol.CarrierData(msg.Body); ok {
		embedded, err := capture.ExtractEmbedded(s.codec, data)
		if err != nil {
			return errors.Wrapf(err, "in %s at offset %d", msg.Kind, msg.Offset)
		}
		msg.Embedded = embedded

		for _, em := range embedded {
			if _, err := s.tables.Apply(em.Body); err != nil {
				return errors.Wrapf(err, "applying %s in %s at offset %d", em.Kind, msg.Kind, msg.Offset)
			}
		}
	}

	switch body := msg.Body.(type) {
	case *protocol.DemoFileHeader:
		s.res.Header = body
	case *protocol.DemoFileInfo:
		s.res.FileInfo = body
	}

	if s.phases.append(msg) {
		s.log.Debugf("Entered %s at tick %d (offset %d).", s.phases.current, msg.Tick, msg.Offset)
	}
	s.res.LastTick = msg.Tick
	return nil
}

func (s *session) finish() *Result {
	res := s.res
	res.Phases = s.phases.result()
	res.Tables = s.tables
	res.Modifiers = s.acc.Entries()
	res.SpecializationFailures = s.tables.Failures()
	return &res
}

// errorLabel returns a metric label describing err.
func errorLabel(err error) string {
	switch e := errors.Cause(err).(type) {
	case *capture.Error:
		return e.Code.String()
	case *stringtable.Error:
		return e.Code.String()
	case *stringtable.SpecializationError:
		return "specialization failure"
	default:
		return "other"
	}
}
