package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func TestConvert(t *testing.T) {
	var testCases = []struct {
		description string
		input       any
		expect      pair
	}{
		{description: "nil", input: nil, expect: pair{}},
		{description: "value", input: pair{Key: "a", Value: "1"}, expect: pair{Key: "a", Value: "1"}},
		{description: "pointer", input: &pair{Key: "a", Value: "1"}, expect: pair{Key: "a", Value: "1"}},
		{description: "map", input: map[string]interface{}{"key": "a", "value": "1"}, expect: pair{Key: "a", Value: "1"}},
	}

	for _, testCase := range testCases {
		var actual pair
		require.NoError(t, Convert(testCase.input, &actual), testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvert_InvalidTarget(t *testing.T) {
	assert.Error(t, Convert("x", nil))
	var p pair
	assert.Error(t, Convert("x", p))
	assert.Error(t, Convert(map[string]interface{}{"key": 1}, &p))
}

func TestPointer(t *testing.T) {
	ptr := Pointer(true)
	require.NotNil(t, ptr)
	assert.True(t, *ptr)
	assert.EqualValues(t, "", Dereference[string](nil))
	assert.EqualValues(t, "x", Dereference(Pointer("x")))
}
