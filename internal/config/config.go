// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"io/fs"
	"strconv"
)

// StructuredConfig is the top-level configuration container for the udsockd
// daemon. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global UDSOCK_ prefix.
type StructuredConfig struct {
	// Socket holds the listening socket settings.
	Socket Socket `envPrefix:"SOCKET_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the UDSOCK_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Socket holds the Unix domain socket settings of the daemon.
type Socket struct {
	// Path is the filesystem location of the listening socket
	// (e.g. "/run/udsockd/control.sock").
	// Env: UDSOCK_SOCKET_PATH
	Path string `env:"PATH"`

	// Mode is the permission bits applied to the socket file, written as
	// an octal string (e.g. "0600"). Empty keeps the process umask
	// default.
	// Env: UDSOCK_SOCKET_MODE
	Mode string `env:"MODE"`

	// Backlog is the pending-connection queue depth. Zero takes the OS
	// default (SOMAXCONN).
	// Env: UDSOCK_SOCKET_BACKLOG
	Backlog int `env:"BACKLOG"`

	// Concurrent makes the server handle every accepted connection on its
	// own goroutine instead of one at a time.
	// Env: UDSOCK_SOCKET_CONCURRENT
	Concurrent bool `env:"CONCURRENT"`
}

// FileMode parses the octal Mode string into an fs.FileMode. An empty Mode
// yields zero, meaning the umask default.
func (s Socket) FileMode() (fs.FileMode, error) {
	if s.Mode == "" {
		return 0, nil
	}

	bits, err := strconv.ParseUint(s.Mode, 8, 32)
	if err != nil || bits > 0o777 {
		return 0, ErrInvalidSocketMode
	}

	return fs.FileMode(bits), nil
}

// GetStructuredConfig loads, merges, and validates the daemon configuration
// from all available sources in the following priority order (earlier
// sources win; later sources fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
