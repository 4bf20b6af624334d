// Package config provides functionality for loading and managing application
// configuration.
//
// Settings structs are validated before use and shared across the CLI and
// the REST service. The REST service loads its configuration from a YAML
// file; the CLI assembles settings from flags.
package config
