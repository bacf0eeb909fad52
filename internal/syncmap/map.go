package syncmap

import (
	"container/list"
	"sync"
)

// Entry is a detached copy of one key/value pair.
type Entry[T any] struct {
	Key   string
	Value T
}

// Map is a thread-safe, insertion-ordered generic map structure
type Map[T any] struct {
	mux   sync.Mutex
	index map[string]*list.Element
	order *list.List
}

// New creates a new, empty instance of Map
func New[T any]() *Map[T] {
	return &Map[T]{
		index: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Get retrieves an item by name. The second result is false when name is absent;
// a lookup never creates an entry.
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if elem, ok := r.index[name]; ok {
		return elem.Value.(*Entry[T]).Value, true
	}
	var zero T
	return zero, false
}

// Has reports whether name is present
func (r *Map[T]) Has(name string) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, ok := r.index[name]
	return ok
}

// Set adds or updates an item by name. Updating keeps the original position.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.set(name, value)
}

// SetIfAbsent stores value only when name is absent and returns the value held
// under name after the call together with a flag telling whether it was stored.
func (r *Map[T]) SetIfAbsent(name string, value T) (T, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if elem, ok := r.index[name]; ok {
		return elem.Value.(*Entry[T]).Value, false
	}
	r.set(name, value)
	return value, true
}

func (r *Map[T]) set(name string, value T) {
	if elem, ok := r.index[name]; ok {
		elem.Value.(*Entry[T]).Value = value
		return
	}
	r.index[name] = r.order.PushBack(&Entry[T]{Key: name, Value: value})
}

// Delete removes an item by name and reports whether it existed
func (r *Map[T]) Delete(name string) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	elem, ok := r.index[name]
	if !ok {
		return false
	}
	r.order.Remove(elem)
	delete(r.index, name)
	return true
}

// Len returns number of items
func (r *Map[T]) Len() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return len(r.index)
}

// Keys returns a slice of all names in insertion order
func (r *Map[T]) Keys() []string {
	r.mux.Lock()
	defer r.mux.Unlock()
	ret := make([]string, 0, len(r.index))
	for elem := r.order.Front(); elem != nil; elem = elem.Next() {
		ret = append(ret, elem.Value.(*Entry[T]).Key)
	}
	return ret
}

// List returns a slice of all items in insertion order
func (r *Map[T]) List() []T {
	r.mux.Lock()
	defer r.mux.Unlock()
	ret := make([]T, 0, len(r.index))
	for elem := r.order.Front(); elem != nil; elem = elem.Next() {
		ret = append(ret, elem.Value.(*Entry[T]).Value)
	}
	return ret
}

// Entries returns a copy of all name/item pairs in insertion order
func (r *Map[T]) Entries() []Entry[T] {
	r.mux.Lock()
	defer r.mux.Unlock()
	ret := make([]Entry[T], 0, len(r.index))
	for elem := r.order.Front(); elem != nil; elem = elem.Next() {
		ret = append(ret, *elem.Value.(*Entry[T]))
	}
	return ret
}

// Clear removes all items
func (r *Map[T]) Clear() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.index = make(map[string]*list.Element)
	r.order.Init()
}

// Replace swaps the whole content for entries in one critical section.
// A name repeated in entries keeps its first position and its last value.
func (r *Map[T]) Replace(entries []Entry[T]) {
	index := make(map[string]*list.Element, len(entries))
	order := list.New()
	for _, e := range entries {
		if elem, ok := index[e.Key]; ok {
			elem.Value.(*Entry[T]).Value = e.Value
			continue
		}
		index[e.Key] = order.PushBack(&Entry[T]{Key: e.Key, Value: e.Value})
	}

	r.mux.Lock()
	defer r.mux.Unlock()
	r.index = index
	r.order = order
}
