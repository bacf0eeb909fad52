// Package kv implements burrowkv's in-process key-value store: a thread-safe,
// insertion-ordered map from string keys to string values.
//
// A Store supports point operations (Get, Set, Delete, Contains), bulk reads
// (Keys, Values, Items, Size), JSON snapshot export/import and Clear:
//
//	store := kv.New()
//	store.Set("name", "John")
//	store.Set("age", "30")
//	value, ok := store.Get("name") // "John", true
//	text, _ := store.ExportJSON()   // {"name": "John", "age": "30"}
//
// Every operation runs under one exclusive lock owned by the store, so
// operations are linearizable. Bulk reads return detached copies; no
// operation hands out a reference into internal storage.
package kv
