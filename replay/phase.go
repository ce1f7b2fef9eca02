// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"fmt"

	"github.com/danjacques/godem/protocol"
)

// Phase is a segment of a capture's timeline.
type Phase int

const (
	// Prologue is the initial phase, covering everything before live match
	// data.
	Prologue Phase = iota
	// Match begins at the first synchronization tick.
	Match
	// Epilogue begins at the stop message.
	Epilogue

	numPhases = iota
)

// Phases lists every Phase in timeline order.
var Phases = []Phase{Prologue, Match, Epilogue}

func (p Phase) String() string {
	switch p {
	case Prologue:
		return "Prologue"
	case Match:
		return "Match"
	case Epilogue:
		return "Epilogue"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// phaseTracker files top-level messages by phase.
//
// Phases only move forward. A message that triggers a transition is filed
// under the phase it enters, and that phase's log is opened before the
// message is appended.
type phaseTracker struct {
	current Phase
	// logs holds each phase's log. A phase that has not been entered has a
	// nil entry.
	logs [numPhases]*[]*protocol.Message
}

func newPhaseTracker() *phaseTracker {
	var pt phaseTracker
	pt.enter(Prologue)
	return &pt
}

func (pt *phaseTracker) enter(p Phase) {
	pt.current = p
	pt.logs[p] = new([]*protocol.Message)
	phaseTransitions.WithLabelValues(p.String()).Inc()
}

// next returns the phase that msg moves the tracker to.
func (pt *phaseTracker) next(msg *protocol.Message) Phase {
	switch msg.Kind {
	case protocol.KindSyncTick:
		if pt.current < Match {
			return Match
		}
	case protocol.KindStop:
		return Epilogue
	}
	return pt.current
}

// append evaluates msg as a phase trigger, then appends it to the current
// phase's log. It returns true if msg caused a transition.
func (pt *phaseTracker) append(msg *protocol.Message) bool {
	p := pt.next(msg)
	changed := p != pt.current
	if changed {
		pt.enter(p)
	}

	log := pt.logs[pt.current]
	*log = append(*log, msg)
	return changed
}

// result returns the logs of every phase that was entered.
func (pt *phaseTracker) result() map[Phase][]*protocol.Message {
	m := make(map[Phase][]*protocol.Message, numPhases)
	for p, log := range pt.logs {
		if log != nil {
			m[Phase(p)] = *log
		}
	}
	return m
}
