// Package config provides configuration structures and utilities for CyberKeyGen.
// It defines the command line options, the optional .cyberkeygen YAML file
// that seeds generator defaults, and the XDG directories used for storage.
package config
