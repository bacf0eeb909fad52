// Package syncmap offers a lightweight, generic, concurrency-safe map keyed by
// string that remembers insertion order. Every operation, reads included, is
// guarded by one sync.Mutex so callers observe a single total order of
// operations.  It backs kv.Store and the named-store registry of the MCP
// service.
package syncmap
