// Package udsock is a small server harness for Unix domain sockets.
//
// It binds a listening socket at a filesystem path, accepts incoming
// connections, and hands each one to a caller-supplied work unit. A work
// unit reports a terminal [Outcome] per connection: [Continue] keeps the
// server accepting, [Quit] makes it stop, close the listener, and unlink
// the socket file.
//
// Work units come in two shapes. [HandlerFunc] is a plain function that
// performs blocking I/O on the connection and emits its outcome through an
// [OutcomeSink]. [Task] is a poll-driven unit: a fresh instance is produced
// from a [TaskFactory] for every connection, the connection is injected
// once, and the task is resumed until it yields a terminal outcome. Both
// shapes satisfy the [WorkUnit] interface consumed by [New].
//
// The harness imposes no framing or protocol on the byte stream; everything
// past the accepted connection is the work unit's business.
package udsock
