// Package config loads, parses and validates application settings from
// environment variables (PESEL_ prefix) and an optional YAML file. It keeps
// configuration details separate from the generator and validator, which
// receive plain parameter structs.
package config
