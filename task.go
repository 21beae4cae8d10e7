// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package udsock

import "net"

// Task is the poll-driven form of a work unit. A fresh instance is produced
// per connection, receives its connection exactly once via Inject, and is
// then resumed until it reports done. The state machine is
//
//	Uninjected → Injected → Running → Terminal(Outcome)
//
// and no transition may be skipped: injecting twice or resuming before
// injection fails with [ErrTaskInjected] or [ErrTaskNotInjected]. Embedding
// [TaskBase] gives this bookkeeping for free.
type Task interface {
	// Inject hands the task ownership of its connection. Called exactly
	// once, before the first Resume.
	Inject(conn net.Conn) error

	// Resume advances the task. done=false means the task suspended and
	// should be resumed again; done=true means outcome is terminal.
	Resume() (outcome Outcome, done bool, err error)
}

// TaskFactory produces an independent, connection-scoped [Task] from a
// shared template. Instances must not share per-connection state.
type TaskFactory interface {
	New() Task
}

// TaskFactoryFunc adapts a plain constructor function to [TaskFactory].
type TaskFactoryFunc func() Task

// New implements [TaskFactory].
func (f TaskFactoryFunc) New() Task { return f() }

// NewTaskRunner wraps a factory into a [WorkUnit] that builds a fresh task
// for every connection, injects the connection, and drives Resume to its
// terminal outcome.
func NewTaskRunner(factory TaskFactory) WorkUnit {
	return &taskRunner{factory: factory}
}

type taskRunner struct {
	factory TaskFactory
}

func (r *taskRunner) Run(conn net.Conn) (Outcome, error) {
	task := r.factory.New()
	if err := task.Inject(conn); err != nil {
		return Continue, err
	}

	for {
		outcome, done, err := task.Resume()
		if err != nil {
			return Continue, err
		}
		if done {
			return outcome, nil
		}
	}
}

type taskPhase int

const (
	phaseUninjected taskPhase = iota
	phaseInjected
	phaseRunning
	phaseTerminal
)

// TaskBase tracks the task state machine and stores the injected
// connection. Concrete tasks embed it, call Begin at the top of Resume, and
// return through Finish (or Yield to suspend):
//
//	func (t *myTask) Resume() (udsock.Outcome, bool, error) {
//		if err := t.Begin(); err != nil {
//			return 0, false, err
//		}
//		buf := make([]byte, 1)
//		if _, err := t.Conn().Read(buf); err != nil {
//			return t.Finish(udsock.Continue)
//		}
//		// ...
//		return t.Finish(udsock.Quit)
//	}
type TaskBase struct {
	conn  net.Conn
	phase taskPhase
}

// Inject implements the injection half of [Task].
func (b *TaskBase) Inject(conn net.Conn) error {
	if b.phase != phaseUninjected {
		return ErrTaskInjected
	}
	b.conn = conn
	b.phase = phaseInjected
	return nil
}

// Conn returns the injected connection, or nil before injection.
func (b *TaskBase) Conn() net.Conn { return b.conn }

// Begin validates that a Resume is legal in the current state and marks the
// task running.
func (b *TaskBase) Begin() error {
	switch b.phase {
	case phaseUninjected:
		return ErrTaskNotInjected
	case phaseTerminal:
		return ErrTaskTerminal
	}
	b.phase = phaseRunning
	return nil
}

// Yield suspends the task; the runner will call Resume again.
func (b *TaskBase) Yield() (Outcome, bool, error) {
	return 0, false, nil
}

// Finish moves the task to its terminal state with the given outcome.
func (b *TaskBase) Finish(o Outcome) (Outcome, bool, error) {
	b.phase = phaseTerminal
	return o, true, nil
}
