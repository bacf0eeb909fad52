package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBuiltinServices(t *testing.T) {
	var testCases = []struct {
		description string
		patterns    []string
		expect      int
	}{
		{description: "none", patterns: nil, expect: 0},
		{description: "all", patterns: []string{"*"}, expect: 5},
		{description: "prefix", patterns: []string{"system/"}, expect: 3},
		{description: "exact", patterns: []string{"nop", "nop"}, expect: 1},
		{description: "exact does not prefix", patterns: []string{"system/ex"}, expect: 0},
	}

	for _, testCase := range testCases {
		services := resolveBuiltinServices(testCase.patterns)
		assert.EqualValues(t, testCase.expect, len(services), testCase.description)
	}
}
