// Package config loads, merges and validates the tabkeeper configuration.
//
// Sources, lowest priority first:
//  1. config file (JSON or YAML, path from --config or TABKEEPER_CONFIG)
//  2. .env file in the working directory
//  3. environment variables (TABKEEPER_ prefix)
//  4. command-line flags
//
// Fields left empty by every source get their defaults, then the result is
// validated. The entry point is [Load].
package config
