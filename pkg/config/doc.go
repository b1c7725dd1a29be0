// Package config handles configuration management for the exporter CLI.
// Configuration is layered: embedded defaults, then the user's config file
// under XDG_CONFIG_HOME, then an explicit file, then EXPORTER_ environment
// variables.
package config
