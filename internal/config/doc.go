// Package config provides configuration loading, merging, and validation
// facilities for the udsockd daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources fill fields still unset):
//  1. Environment variables (prefixed with UDSOCK_)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
