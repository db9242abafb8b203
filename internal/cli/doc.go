// Package cli defines the Cobra command tree for the ymp CLI. Each file in
// this package registers one top-level command (list, validate, config,
// version) with the root command. Commands delegate parsing and validation
// to internal/ymp and only handle flags, output formatting and exit status.
package cli
