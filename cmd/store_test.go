package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/burrowkv/kv"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := stdout
	stdout = buf
	t.Cleanup(func() { stdout = prev })
	return buf
}

func TestStoreCommands(t *testing.T) {
	location := filepath.Join(t.TempDir(), "store.json")
	out := captureOutput(t)

	require.NoError(t, run([]string{"set", "-s", location, "name", "John"}))
	require.NoError(t, run([]string{"set", "-s", location, "age", "30"}))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.EqualValues(t, `{"name": "John", "age": "30"}`, string(data))

	var testCases = []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "get", args: []string{"get", "-s", location, "name"}, expect: "John\n"},
		{description: "keys", args: []string{"keys", "-s", location}, expect: "name\nage\n"},
		{description: "items", args: []string{"items", "-s", location}, expect: "name\tJohn\nage\t30\n"},
		{description: "size", args: []string{"size", "-s", location}, expect: "2\n"},
		{description: "export", args: []string{"export", "-s", location}, expect: "{\"name\": \"John\", \"age\": \"30\"}\n"},
	}
	for _, testCase := range testCases {
		out.Reset()
		require.NoError(t, run(testCase.args), testCase.description)
		assert.EqualValues(t, testCase.expect, out.String(), testCase.description)
	}
}

func TestStoreCommands_Delete(t *testing.T) {
	location := filepath.Join(t.TempDir(), "store.json")
	captureOutput(t)

	require.NoError(t, run([]string{"import", "-s", location, "-i", `{"a": "1", "b": "2"}`}))
	require.NoError(t, run([]string{"del", "-s", location, "a"}))

	err := run([]string{"del", "-s", location, "b", "missing"})
	assert.ErrorIs(t, err, kv.ErrNotFound)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.EqualValues(t, `{"b": "2"}`, string(data), "failed delete must not save")

	assert.ErrorIs(t, run([]string{"get", "-s", location, "a"}), kv.ErrNotFound)

	require.NoError(t, run([]string{"clear", "-s", location}))
	data, err = os.ReadFile(location)
	require.NoError(t, err)
	assert.EqualValues(t, `{}`, string(data))
}

func TestStoreCommands_Import(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "store.json")
	captureOutput(t)

	require.NoError(t, run([]string{"set", "-s", location, "keep", "1"}))

	var parseErr *kv.ParseError
	err := run([]string{"import", "-s", location, "-i", "not json"})
	assert.ErrorAs(t, err, &parseErr)

	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte("{\"x\": \"y\"}\n"), 0o644))
	require.NoError(t, run([]string{"import", "-s", location, "--file", input}))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.EqualValues(t, `{"x": "y"}`, string(data))

	assert.Error(t, run([]string{"import", "-s", location}))
	assert.Error(t, run([]string{"keys"}), "snapshot is required")
}

func TestExtractConfigPath(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{args: []string{"serve", "-f", "cfg.yaml"}, expect: "cfg.yaml"},
		{args: []string{"serve", "--config=cfg.yaml"}, expect: "cfg.yaml"},
		{args: []string{"serve", "-f"}, expect: ""},
		{args: []string{"keys"}, expect: ""},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, extractConfigPath(testCase.args))
	}
}
