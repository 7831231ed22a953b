// Package config loads, normalizes, and validates the optional mytool
// configuration file.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML from --config, ~/.config/mytool/config.toml or
// ./mytool.toml, in that order. A missing file is not an error; the defaults
// reproduce the behaviour of running without any configuration.
package config
