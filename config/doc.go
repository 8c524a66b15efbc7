// Package config loads, validates and renders the YAML run configuration of
// compute-features.
package config
