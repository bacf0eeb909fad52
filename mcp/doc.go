// Package mcp wires burrowkv stores into the Fluxor workflow engine and the
// MCP protocol implementation.  Its central Service type loads configuration,
// hosts the named stores, registers the kv action service (plus optional
// Fluxor builtins) and can expose every action as an MCP tool.
package mcp
