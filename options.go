package udsock

import (
	"io/fs"

	"github.com/rs/zerolog"
)

// Options holds the optional settings of a [Server]. The zero value is a
// usable default: OS-default permission bits, SOMAXCONN backlog, serialized
// connection handling, no logging.
type Options struct {
	// Mode is the permission bits applied to the socket file after bind.
	// Zero leaves whatever the process umask produced.
	Mode fs.FileMode

	// Backlog is the pending-connection queue depth passed to listen(2).
	// Zero means SOMAXCONN.
	Backlog int

	// Concurrent dispatches every accepted connection on its own goroutine
	// so accept can proceed immediately. When false the loop handles one
	// connection at a time.
	Concurrent bool

	// Logger receives structured events at bind, accept-error and shutdown
	// points. Nil disables logging.
	Logger *zerolog.Logger
}

func (o *Options) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
