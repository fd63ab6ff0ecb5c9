// Package config provides configuration structures and utilities for pagebridge.
// It defines the options of a render run and the YAML catalog file that
// describes which pages and products exist.
package config
