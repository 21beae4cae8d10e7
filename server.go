// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package udsock

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Server owns one Unix domain socket and the accept/invoke loop over it.
// Create it with [New], run it with [ListenAndServe], stop it from outside
// with [Shutdown] or from inside by having the work unit produce [Quit].
type Server struct {
	path string
	opts Options
	unit WorkUnit
	log  zerolog.Logger

	mu sync.Mutex
	ln *net.UnixListener

	// outcomes is the many-producer single-consumer path for the shutdown
	// protocol; the serve loop is its only reader.
	outcomes chan Outcome
	done     chan struct{}
	state    atomic.Int32
	stop     sync.Once
}

// New creates a server that will listen at path and run unit against every
// accepted connection. A nil opts takes all defaults. Panics if unit is nil.
func New(path string, unit WorkUnit, opts *Options) *Server {
	if unit == nil {
		panic("udsock: nil work unit")
	}

	s := &Server{
		path:     path,
		unit:     unit,
		outcomes: make(chan Outcome, 1),
		done:     make(chan struct{}),
	}
	if opts != nil {
		s.opts = *opts
	}
	s.log = s.opts.logger().With().Str("socket", path).Logger()

	return s
}

// State reports the current lifecycle state of the listening socket.
func (s *Server) State() State {
	return State(s.state.Load())
}

// ListenAndServe binds the socket and runs the dispatch loop until a work
// unit produces [Quit] or [Shutdown] is called. It returns nil on a clean
// stop; bind failures are returned immediately wrapped in [ErrBind] or
// [ErrStaleSocket] and the server never starts.
func (s *Server) ListenAndServe() error {
	ln, err := listenPath(s.path, s.opts.Mode, s.opts.Backlog)
	if err != nil {
		return err
	}

	// The done re-check and the Listening store sit under the same lock as
	// Shutdown's Stopped store, so a Shutdown racing the startup can never
	// be overwritten by a later Listening.
	s.mu.Lock()
	s.ln = ln
	select {
	case <-s.done:
		s.mu.Unlock()
		// Shutdown won the race before the loop started.
		ln.Close()
		os.Remove(s.path)
		return nil
	default:
		s.state.Store(int32(StateListening))
	}
	s.mu.Unlock()
	s.log.Info().
		Stringer("mode", s.opts.Mode).
		Bool("concurrent", s.opts.Concurrent).
		Msg("unix domain socket bound")

	defer s.Shutdown()
	return s.serve(ln)
}

// Shutdown closes the listening socket and unlinks the socket file. It is
// idempotent: the second and later calls are no-ops. Connections already
// being handled are not interrupted.
func (s *Server) Shutdown() {
	s.stop.Do(func() {
		close(s.done)

		s.mu.Lock()
		ln := s.ln
		s.state.Store(int32(StateStopped))
		s.mu.Unlock()
		if ln != nil {
			ln.Close()
		}

		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Error().Err(err).Msg("removing socket file")
		}

		s.log.Info().Msg("unix domain socket closed")
	})
}

func (s *Server) serve(ln *net.UnixListener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				// Listener closed by a concurrent Shutdown: implicit Quit.
				return nil
			}
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}

		if s.opts.Concurrent {
			go s.dispatch(conn)
		} else {
			s.dispatch(conn)
		}

		if s.drainQuit() {
			return nil
		}
	}
}

// dispatch runs the work unit against one connection and reports the
// terminal outcome on the outcome channel. The connection is closed when
// the invocation returns, whatever the result.
func (s *Server) dispatch(conn net.Conn) {
	log := s.log.With().Str("conn_id", uuid.NewString()).Logger()

	outcome, err := s.unit.Run(conn)
	// The connection dies with the invocation. Closing must not wait for
	// the outcome report below: a worker parked on a full outcome channel
	// would otherwise hold its client open until the next accept.
	conn.Close()
	if err != nil {
		// Contained to this connection; the server keeps accepting.
		log.Error().Err(err).Msg("work unit failed")
		outcome = Continue
	}
	log.Debug().Stringer("outcome", outcome).Msg("connection handled")

	select {
	case s.outcomes <- outcome:
	case <-s.done:
		// The loop is gone; the outcome no longer matters.
	}
}

// drainQuit consumes every pending outcome and reports whether one of them
// was a Quit. Concurrent workers may race to the channel, so the loop keeps
// accepting until a Quit is actually observed here.
func (s *Server) drainQuit() bool {
	quit := false
	for {
		select {
		case o := <-s.outcomes:
			if o == Quit {
				quit = true
			}
		default:
			return quit
		}
	}
}
