// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package udsock

import (
	"net"
	"sync"
)

// WorkUnit is what the server runs against every accepted connection.
//
// Run owns the connection for its duration; the server closes the connection
// when Run returns, regardless of outcome. A non-nil error is contained to
// that connection: the server logs it and keeps accepting, as if Continue
// had been returned.
type WorkUnit interface {
	Run(conn net.Conn) (Outcome, error)
}

// HandlerFunc is the callable form of a work unit: a function that performs
// blocking reads and writes on the connection and emits at most one Outcome
// through the sink. Emitting nothing counts as Continue, so a handler that
// forgets the sink can never hang the server.
type HandlerFunc func(conn net.Conn, sink *OutcomeSink)

// Run implements [WorkUnit].
func (f HandlerFunc) Run(conn net.Conn) (Outcome, error) {
	sink := new(OutcomeSink)
	f(conn, sink)
	return sink.outcome(), nil
}

// OutcomeSink collects the outcome of a single [HandlerFunc] invocation.
// Only the first Send counts; later sends are dropped.
type OutcomeSink struct {
	once sync.Once
	v    Outcome
}

// Send records o as the invocation's terminal outcome. Safe for concurrent
// use, though a handler is expected to call it once.
func (s *OutcomeSink) Send(o Outcome) {
	s.once.Do(func() { s.v = o })
}

func (s *OutcomeSink) outcome() Outcome {
	// Claim the slot so a late Send from a handler-spawned goroutine can no
	// longer change the result.
	s.once.Do(func() { s.v = Continue })
	return s.v
}
