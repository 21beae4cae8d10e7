// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Socket.Path == "" {
		return ErrMissingSocketPath
	}

	if _, err := cfg.Socket.FileMode(); err != nil {
		return err
	}

	if cfg.Socket.Backlog < 0 {
		return ErrInvalidBacklog
	}

	return nil
}
