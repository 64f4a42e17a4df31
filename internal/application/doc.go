// Package application provides dependency wiring for the CLI. It builds the
// settings resolver and provider around a shared logger so the main package
// only deals with argument parsing and output.
package application
