package kvaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/burrowkv/kv"
	"github.com/viant/burrowkv/kv/snapshot"
)

type testRegistry struct {
	stores map[string]*kv.Store
	urls   map[string]string
}

func (r *testRegistry) Store(name string) (*kv.Store, bool) {
	store, ok := r.stores[name]
	return store, ok
}

func (r *testRegistry) SnapshotURL(name string) string { return r.urls[name] }

func newTestService() (*Service, *testRegistry) {
	registry := &testRegistry{
		stores: map[string]*kv.Store{"default": kv.New(), "other": kv.New()},
		urls:   map[string]string{"default": "mem://localhost/burrowkv/kvaction/default.json"},
	}
	return New(registry, snapshot.New(nil)), registry
}

func call[O any](t *testing.T, srv *Service, name string, input interface{}) (*O, error) {
	t.Helper()
	exec, err := srv.Method(name)
	require.NoError(t, err)
	out := new(O)
	if err = exec(context.Background(), input, out); err != nil {
		return nil, err
	}
	return out, nil
}

func TestService_Methods(t *testing.T) {
	srv, _ := newTestService()
	assert.EqualValues(t, "kv", srv.Name())

	var names []string
	for _, sig := range srv.Methods() {
		names = append(names, sig.Name)
		assert.NotNil(t, sig.Input, sig.Name)
		assert.NotNil(t, sig.Output, sig.Name)
	}
	assert.EqualValues(t, []string{"get", "set", "delete", "contains", "keys", "values", "items", "size", "clear", "export", "import", "save", "load"}, names)

	_, err := srv.Method("unknown")
	assert.Error(t, err)
}

func TestService_PointOperations(t *testing.T) {
	srv, registry := newTestService()

	_, err := call[StatusOutput](t, srv, "set", &SetInput{Key: "name", Value: "John"})
	require.NoError(t, err)

	got, err := call[GetOutput](t, srv, "get", map[string]interface{}{"key": "name"})
	require.NoError(t, err)
	assert.EqualValues(t, &GetOutput{Value: "John", Found: true}, got)

	got, err = call[GetOutput](t, srv, "get", &KeyInput{Key: "age"})
	require.NoError(t, err)
	assert.EqualValues(t, &GetOutput{}, got)

	contains, err := call[ContainsOutput](t, srv, "contains", &KeyInput{Key: "name"})
	require.NoError(t, err)
	assert.True(t, contains.Found)

	deleted, err := call[DeleteOutput](t, srv, "delete", &DeleteInput{Key: "name"})
	require.NoError(t, err)
	assert.True(t, deleted.Existed)

	deleted, err = call[DeleteOutput](t, srv, "delete", &DeleteInput{Key: "name"})
	require.NoError(t, err)
	assert.False(t, deleted.Existed)

	_, err = call[DeleteOutput](t, srv, "delete", &DeleteInput{Key: "name", Strict: true})
	assert.ErrorIs(t, err, kv.ErrNotFound)

	assert.EqualValues(t, 0, registry.stores["default"].Size())
}

func TestService_NamedStores(t *testing.T) {
	srv, registry := newTestService()

	_, err := call[StatusOutput](t, srv, "set", &SetInput{Store: "other", Key: "a", Value: "1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, registry.stores["other"].Size())
	assert.EqualValues(t, 0, registry.stores["default"].Size())

	_, err = call[SizeOutput](t, srv, "size", &StoreInput{Store: "missing"})
	assert.True(t, errors.Is(err, ErrUnknownStore))
}

func TestService_BulkOperations(t *testing.T) {
	srv, registry := newTestService()
	store := registry.stores["default"]
	store.Set("name", "John")
	store.Set("age", "30")

	keys, err := call[KeysOutput](t, srv, "keys", &StoreInput{})
	require.NoError(t, err)
	assert.EqualValues(t, []string{"name", "age"}, keys.Keys)

	values, err := call[ValuesOutput](t, srv, "values", nil)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"John", "30"}, values.Values)

	items, err := call[ItemsOutput](t, srv, "items", &StoreInput{})
	require.NoError(t, err)
	assert.EqualValues(t, []kv.Entry{{Key: "name", Value: "John"}, {Key: "age", Value: "30"}}, items.Items)

	size, err := call[SizeOutput](t, srv, "size", &StoreInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, size.Size)

	exported, err := call[ExportOutput](t, srv, "export", &StoreInput{})
	require.NoError(t, err)
	assert.EqualValues(t, `{"name": "John", "age": "30"}`, exported.JSON)

	_, err = call[StatusOutput](t, srv, "clear", &StoreInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, store.Size())

	_, err = call[StatusOutput](t, srv, "import", &ImportInput{JSON: exported.JSON})
	require.NoError(t, err)
	assert.EqualValues(t, []string{"name", "age"}, store.Keys())

	_, err = call[StatusOutput](t, srv, "import", &ImportInput{JSON: "not json"})
	var parseErr *kv.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.EqualValues(t, 2, store.Size())
}

func TestService_Snapshots(t *testing.T) {
	srv, registry := newTestService()
	store := registry.stores["default"]
	store.Set("name", "John")

	saved, err := call[StatusOutput](t, srv, "save", &SnapshotInput{})
	require.NoError(t, err)
	assert.EqualValues(t, registry.urls["default"], saved.URL)

	store.Clear()
	_, err = call[StatusOutput](t, srv, "load", &SnapshotInput{})
	require.NoError(t, err)
	value, ok := store.Get("name")
	assert.True(t, ok)
	assert.EqualValues(t, "John", value)

	_, err = call[StatusOutput](t, srv, "save", &SnapshotInput{Store: "other"})
	assert.ErrorIs(t, err, ErrNoSnapshotURL)

	explicit := "mem://localhost/burrowkv/kvaction/explicit.json"
	saved, err = call[StatusOutput](t, srv, "save", &SnapshotInput{Store: "other", URL: explicit})
	require.NoError(t, err)
	assert.EqualValues(t, explicit, saved.URL)
}

func TestService_GenericOutput(t *testing.T) {
	srv, registry := newTestService()
	registry.stores["default"].Set("name", "John")

	exec, err := srv.Method("get")
	require.NoError(t, err)
	var out interface{}
	require.NoError(t, exec(context.Background(), map[string]interface{}{"key": "name"}, &out))
	assert.EqualValues(t, &GetOutput{Value: "John", Found: true}, out)
}
