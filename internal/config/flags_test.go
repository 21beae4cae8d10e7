package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlagSet tests the mapping of command-line flags onto the
// structured config.
func TestParseFlagSet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: &StructuredConfig{},
		},
		{
			name: "socket path only",
			args: []string{"-s", "/tmp/test.sock"},
			expected: &StructuredConfig{
				Socket: Socket{Path: "/tmp/test.sock"},
			},
		},
		{
			name: "all socket flags",
			args: []string{"-s", "/tmp/test.sock", "-m", "0660", "-b", "128", "-concurrent"},
			expected: &StructuredConfig{
				Socket: Socket{
					Path:       "/tmp/test.sock",
					Mode:       "0660",
					Backlog:    128,
					Concurrent: true,
				},
			},
		},
		{
			name: "json config path short flag",
			args: []string{"-c", "/etc/udsockd.json"},
			expected: &StructuredConfig{
				JSONFilePath: "/etc/udsockd.json",
			},
		},
		{
			name: "json config path long flag",
			args: []string{"-config", "/etc/udsockd.json"},
			expected: &StructuredConfig{
				JSONFilePath: "/etc/udsockd.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			cfg := parseFlagSet(fs, tt.args)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
