// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// socket settings are incomplete or invalid.
var (
	// ErrMissingSocketPath indicates that no socket path was supplied by
	// any configuration source.
	ErrMissingSocketPath = errors.New("missing socket path")
	// ErrInvalidSocketMode indicates a socket mode that is not an octal
	// permission string within 0777.
	ErrInvalidSocketMode = errors.New("invalid socket mode")
	// ErrInvalidBacklog indicates a negative accept backlog.
	ErrInvalidBacklog = errors.New("invalid accept backlog")
)
