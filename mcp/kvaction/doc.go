// Package kvaction exposes kv.Store operations as the Fluxor action service
// "kv" so that they can be called from workflows or, through the MCP tool
// bridge, as tools named kv-get, kv-set, kv-delete and so on.
package kvaction
