package kv

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	var testCases = []struct {
		description string
		key         string
		value       string
	}{
		{description: "plain", key: "name", value: "John"},
		{description: "empty value", key: "empty", value: ""},
		{description: "empty key", key: "", value: "x"},
		{description: "unicode", key: "città", value: "Zürich ☃"},
	}

	for _, testCase := range testCases {
		store := New()
		store.Set(testCase.key, testCase.value)
		actual, ok := store.Get(testCase.key)
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, testCase.value, actual, testCase.description)
		assert.True(t, store.Contains(testCase.key), testCase.description)
	}
}

func TestStore_Absent(t *testing.T) {
	store := New()
	value, ok := store.Get("age")
	assert.False(t, ok)
	assert.EqualValues(t, "", value)
	assert.False(t, store.Contains("age"))
	assert.EqualValues(t, 0, store.Size(), "lookup must not create an entry")
}

func TestStore_Delete(t *testing.T) {
	store := New()
	store.Set("name", "John")
	store.Set("age", "30")

	assert.True(t, store.Delete("name"))
	assert.EqualValues(t, 1, store.Size())
	_, ok := store.Get("name")
	assert.False(t, ok)

	assert.False(t, store.Delete("name"), "second delete reports absent key")
	assert.EqualValues(t, 1, store.Size())
}

func TestStore_Overwrite(t *testing.T) {
	store := New()
	store.Set("name", "John")
	store.Set("age", "30")
	store.Set("name", "Jane")

	assert.EqualValues(t, 2, store.Size())
	value, _ := store.Get("name")
	assert.EqualValues(t, "Jane", value)
	assert.EqualValues(t, []string{"name", "age"}, store.Keys())
}

func TestStore_Enumeration(t *testing.T) {
	store := New()
	store.Set("name", "John")
	store.Set("age", "30")

	assert.EqualValues(t, []string{"name", "age"}, store.Keys())
	assert.EqualValues(t, []string{"John", "30"}, store.Values())
	assert.EqualValues(t, []Entry{{Key: "name", Value: "John"}, {Key: "age", Value: "30"}}, store.Items())

	keys, values, items := store.Keys(), store.Values(), store.Items()
	require.Len(t, values, len(keys))
	require.Len(t, items, store.Size())
	for i := range items {
		assert.EqualValues(t, Entry{Key: keys[i], Value: values[i]}, items[i])
	}

	keys[0] = "mutated"
	items[1].Value = "mutated"
	assert.EqualValues(t, []string{"name", "age"}, store.Keys(), "keys must be a copy")
	value, _ := store.Get("age")
	assert.EqualValues(t, "30", value, "items must be a copy")
}

func TestStore_Range(t *testing.T) {
	store := New()
	store.Set("a", "1")
	store.Set("b", "2")
	store.Set("c", "3")

	var visited []string
	store.Range(func(key, value string) bool {
		visited = append(visited, key+"="+value)
		store.Set(key+key, value) // reentrant call must not deadlock
		return key != "b"
	})
	assert.EqualValues(t, []string{"a=1", "b=2"}, visited)
	assert.EqualValues(t, 5, store.Size())
}

func TestStore_Clear(t *testing.T) {
	store := New()
	store.Set("name", "John")
	store.Clear()
	assert.EqualValues(t, 0, store.Size())
	assert.Empty(t, store.Keys())
}

func TestStore_JSON(t *testing.T) {
	store := New()
	store.Set("name", "John")
	store.Set("age", "30")

	text, err := store.ExportJSON()
	require.NoError(t, err)
	assert.EqualValues(t, `{"name": "John", "age": "30"}`, text)

	restored := New()
	require.NoError(t, restored.ImportJSON(text))
	assert.EqualValues(t, store.Items(), restored.Items())
}

func TestStore_ImportJSONReplaces(t *testing.T) {
	store := New()
	store.Set("stale", "1")
	require.NoError(t, store.ImportJSON(`{"b": "2", "a": "1"}`))
	assert.EqualValues(t, []string{"b", "a"}, store.Keys())
	assert.False(t, store.Contains("stale"))
}

func TestStore_ImportJSONInvalid(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expectErr   error
	}{
		{description: "not json", text: "not json"},
		{description: "empty text", text: ""},
		{description: "array", text: `["a"]`, expectErr: ErrNotObject},
		{description: "string", text: `"a"`, expectErr: ErrNotObject},
		{description: "number value", text: `{"age": 30}`, expectErr: ErrNotString},
		{description: "null value", text: `{"age": null}`, expectErr: ErrNotString},
		{description: "nested value", text: `{"user": {"name": "John"}}`, expectErr: ErrNotString},
		{description: "truncated", text: `{"name": "John"`},
		{description: "trailing data", text: `{"name": "John"} {}`},
	}

	for _, testCase := range testCases {
		store := New()
		store.Set("name", "John")
		err := store.ImportJSON(testCase.text)

		var parseErr *ParseError
		if !assert.True(t, errors.As(err, &parseErr), testCase.description) {
			continue
		}
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
		}
		assert.EqualValues(t, []Entry{{Key: "name", Value: "John"}}, store.Items(), testCase.description)
	}
}

func TestStore_ScopedReset(t *testing.T) {
	t.Run("normal exit", func(t *testing.T) {
		store := New()
		err := store.ScopedReset(func(s *Store) error {
			s.Set("name", "John")
			s.Set("age", "30")
			value, ok := s.Get("name")
			assert.True(t, ok, "writes inside the scope take effect immediately")
			assert.EqualValues(t, "John", value)
			return nil
		})
		assert.NoError(t, err)
		assert.EqualValues(t, 0, store.Size())
	})

	t.Run("error exit", func(t *testing.T) {
		store := New()
		store.Set("before", "1")
		expect := errors.New("boom")
		err := store.ScopedReset(func(s *Store) error {
			s.Set("name", "John")
			return expect
		})
		assert.ErrorIs(t, err, expect)
		assert.EqualValues(t, 0, store.Size())
	})

	t.Run("panic exit", func(t *testing.T) {
		store := New()
		assert.Panics(t, func() {
			_ = store.ScopedReset(func(s *Store) error {
				s.Set("name", "John")
				panic("boom")
			})
		})
		assert.EqualValues(t, 0, store.Size())
	})
}

func TestStore_ConcurrentSet(t *testing.T) {
	store := New()
	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			store.Set(fmt.Sprintf("key-%d", id), fmt.Sprintf("value-%d", id))
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, workers, store.Size())
	for i := 0; i < workers; i++ {
		value, ok := store.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
		assert.EqualValues(t, fmt.Sprintf("value-%d", i), value)
	}
}

func TestStore_ConcurrentMixed(t *testing.T) {
	store := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d-%d", id, j%10)
				store.Set(key, "v")
				store.Contains(key)
				_ = store.Items()
				if _, err := store.ExportJSON(); err != nil {
					t.Error(err)
				}
				store.Delete(key)
			}
		}(i)
	}
	wg.Wait()
	assert.EqualValues(t, 0, store.Size())
}
