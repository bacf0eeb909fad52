package kv

import (
	"github.com/viant/burrowkv/internal/syncmap"
)

// Entry is one key/value pair of a Store.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store is a concurrency-safe, insertion-ordered string map.
// The zero value is not usable; create stores with New.
type Store struct {
	entries *syncmap.Map[string]
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: syncmap.New[string]()}
}

// Set inserts or overwrites the value for key. An overwritten key keeps its
// position in iteration order; a new key is appended.
func (s *Store) Set(key, value string) {
	s.entries.Set(key, value)
}

// Get returns the value stored for key. The second result is false when the
// key is absent. Get never creates an entry.
func (s *Store) Get(key string) (string, bool) {
	return s.entries.Get(key)
}

// Delete removes key and reports whether it was present. Deleting an absent
// key is a no-op.
func (s *Store) Delete(key string) bool {
	return s.entries.Delete(key)
}

// Contains reports whether key is present.
func (s *Store) Contains(key string) bool {
	return s.entries.Has(key)
}

// Keys returns all keys in insertion order.
func (s *Store) Keys() []string {
	return s.entries.Keys()
}

// Values returns all values in key insertion order.
func (s *Store) Values() []string {
	return s.entries.List()
}

// Items returns all entries in insertion order, copied in a single critical
// section so Items()[i] always pairs a key with its own value.
func (s *Store) Items() []Entry {
	return toEntries(s.entries.Entries())
}

// Size returns the number of entries.
func (s *Store) Size() int {
	return s.entries.Len()
}

// Clear removes all entries atomically.
func (s *Store) Clear() {
	s.entries.Clear()
}

// Range calls fn for every entry in insertion order until fn returns false.
// fn sees a copy taken at call time and may call back into the store.
func (s *Store) Range(fn func(key, value string) bool) {
	for _, entry := range s.entries.Entries() {
		if !fn(entry.Key, entry.Value) {
			return
		}
	}
}

// ExportJSON serializes the store to a JSON object, members in insertion
// order, e.g. {"name": "John", "age": "30"}. The entries are copied under the
// store lock, so the text is a point-in-time snapshot. A key or value that is
// not valid UTF-8 fails the export with ErrInvalidUTF8.
func (s *Store) ExportJSON() (string, error) {
	data, err := encodeObject(s.Items())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportJSON replaces the whole content of the store with the members of a
// JSON object of string values. Member order becomes insertion order. On a
// *ParseError the store is left unchanged.
func (s *Store) ImportJSON(text string) error {
	entries, err := decodeObject([]byte(text))
	if err != nil {
		return err
	}
	replacement := make([]syncmap.Entry[string], len(entries))
	for i, entry := range entries {
		replacement[i] = syncmap.Entry[string]{Key: entry.Key, Value: entry.Value}
	}
	s.entries.Replace(replacement)
	return nil
}

// ScopedReset runs fn and then clears the store, whether fn returns normally,
// returns an error or panics. Operations performed by fn take effect
// immediately and are visible to other goroutines; nothing is buffered or
// rolled back. The error returned by fn is passed through.
func (s *Store) ScopedReset(fn func(store *Store) error) error {
	defer s.Clear()
	return fn(s)
}

func toEntries(items []syncmap.Entry[string]) []Entry {
	ret := make([]Entry, len(items))
	for i, item := range items {
		ret[i] = Entry{Key: item.Key, Value: item.Value}
	}
	return ret
}
