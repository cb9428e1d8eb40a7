// Package config loads the effective configuration by merging defaults,
// the on-disk config file, environment variables, and CLI flag overrides,
// in that order of increasing precedence.
//
// The config file is JSON at ~/.config/readme-consultant/config.json
// (platform-appropriate; XDG_CONFIG_HOME is honored).
package config
