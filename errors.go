// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package udsock

import "errors"

var (
	// ErrBind reports that the listening socket could not be created at the
	// configured path (path invalid, permission denied, address in use).
	ErrBind = errors.New("bind unix socket")

	// ErrStaleSocket reports that a pre-existing file at the socket path
	// could not be removed before bind. A missing file is not an error.
	ErrStaleSocket = errors.New("remove stale socket file")

	// ErrTaskInjected reports a second Inject on the same task instance.
	ErrTaskInjected = errors.New("task already injected")

	// ErrTaskNotInjected reports a Resume before any Inject.
	ErrTaskNotInjected = errors.New("task resumed before injection")

	// ErrTaskTerminal reports a Resume after the task already produced its
	// terminal outcome.
	ErrTaskTerminal = errors.New("task already terminal")
)
