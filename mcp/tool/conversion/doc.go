// Package conversion translates Fluxor action signatures into MCP tool
// definitions with JSON Schemas derived from the Go input and output types.
package conversion
