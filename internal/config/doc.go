// Package config loads, validates, and defaults the livepair configuration.
//
// Configuration is TOML, looked up at ~/.config/livepair/config.toml or a
// project-local livepair.toml, with every section optional: the zero
// config resolves the external tool binaries from PATH and logs to stdout.
package config
