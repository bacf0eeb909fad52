// Package snapshot persists kv.Store JSON snapshots to any storage location
// supported by github.com/viant/afs (local files, mem://, cloud buckets).
// Snapshots are written only when a caller asks for it.
package snapshot
