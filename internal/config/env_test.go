// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"UDSOCK_CONFIG": "/path/to/config.json",

		"UDSOCK_SOCKET_PATH":       "/run/udsockd/control.sock",
		"UDSOCK_SOCKET_MODE":       "0600",
		"UDSOCK_SOCKET_BACKLOG":    "64",
		"UDSOCK_SOCKET_CONCURRENT": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/run/udsockd/control.sock", cfg.Socket.Path)
	assert.Equal(t, "0600", cfg.Socket.Mode)
	assert.Equal(t, 64, cfg.Socket.Backlog)
	assert.True(t, cfg.Socket.Concurrent)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"UDSOCK_SOCKET_PATH": "/tmp/partial.sock",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/tmp/partial.sock", cfg.Socket.Path)
	assert.Empty(t, cfg.Socket.Mode)
	assert.Zero(t, cfg.Socket.Backlog)
	assert.False(t, cfg.Socket.Concurrent)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_UnprefixedVariablesIgnored(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SOCKET_PATH": "/tmp/unprefixed.sock",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.Socket.Path)
}

func TestParseEnv_InvalidBacklog(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"UDSOCK_SOCKET_BACKLOG": "not-a-number",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}
