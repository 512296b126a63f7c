// Package config loads, normalizes, and validates adlib configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as ADLIB_BASE_DIR. The
// Config type carries the input decoding, default export selection, reference
// check settings and logging knobs used by the CLI.
//
// Always obtain settings through this package so commands receive expanded
// paths, canonical field codes, and clear validation errors.
package config
