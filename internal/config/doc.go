// Package config loads simplefind configuration from local and global YAML
// files. CLI code applies precedence (flags > local > global) when mapping
// these values into an engine.Config.
package config
