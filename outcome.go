// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package udsock

// Outcome is the terminal control signal produced after handling one
// connection. It is the only way a per-connection invocation affects the
// server lifecycle.
type Outcome int

const (
	// Continue keeps the server accepting further connections.
	Continue Outcome = iota

	// Quit stops the accept loop after the current invocation; connections
	// already being handled run to their own completion.
	Quit
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// State describes the lifecycle of the listening socket.
type State int32

const (
	// StateClosed means no bind was performed yet.
	StateClosed State = iota

	// StateListening means the server is currently accepting connections.
	StateListening

	// StateStopped means the accept loop has finished and the socket file
	// was removed.
	StateStopped
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
