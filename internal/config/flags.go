package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s socket path
//	-m socket file mode as octal string (e.g., "0600")
//	-b accept backlog depth
//	-concurrent handle connections concurrently
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.NewFlagSet("udsockd", flag.ExitOnError), os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var socketPath string
	var socketMode string
	var backlog int
	var concurrent bool
	var jsonConfigPath string

	fs.StringVar(&socketPath, "s", "", "Socket path")
	fs.StringVar(&socketMode, "m", "", "Socket file mode (octal, e.g. 0600)")
	fs.IntVar(&backlog, "b", 0, "Accept backlog depth")
	fs.BoolVar(&concurrent, "concurrent", false, "Handle connections concurrently")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// ExitOnError flag sets never return a parse error.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Socket: Socket{
			Path:       socketPath,
			Mode:       socketMode,
			Backlog:    backlog,
			Concurrent: concurrent,
		},
		JSONFilePath: jsonConfigPath,
	}
}
