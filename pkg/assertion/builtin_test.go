package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFor_Messages(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{Type: "string", Target: "v"}, "hello")
	assert.True(t, r.Passed)
	assert.Contains(t, r.Message, "value is string")

	r = e.Evaluate(Definition{Type: "string", Target: "v"}, 42)
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "got number")
}

func TestBuiltinChecks(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		check  Definition
		value  any
		passed bool
	}{
		{"non_empty_string pass", Definition{Type: "non_empty_string"}, "x", true},
		{"non_empty_string blank", Definition{Type: "non_empty_string"}, "  ", false},
		{"number pass", Definition{Type: "number"}, 3.5, true},
		{"number string fails", Definition{Type: "number"}, "3.5", false},
		{"numeric string passes", Definition{Type: "numeric"}, "3.5", true},
		{"uuid pass", Definition{Type: "uuid"}, "123e4567-e89b-12d3-a456-426614174000", true},
		{"uuid bad version", Definition{Type: "uuid"}, "123e4567-e89b-72d3-a456-426614174000", false},
		{"email pass", Definition{Type: "email"}, "user@example.com", true},
		{"url pass", Definition{Type: "url"}, "https://example.com", true},
		{"url relative fails", Definition{Type: "url"}, "/path", false},
		{"empty nil", Definition{Type: "empty"}, nil, true},
		{"not_empty map", Definition{Type: "not_empty"}, map[string]any{"a": 1}, true},
		{"object pass", Definition{Type: "object"}, map[string]any{}, true},
		{"object slice fails", Definition{Type: "object"}, []any{}, false},
		{"defined pass", Definition{Type: "defined"}, 0, true},
		{"defined nil fails", Definition{Type: "defined"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.Evaluate(tt.check, tt.value)
			assert.Equal(t, tt.passed, r.Passed, r.Message)
		})
	}
}

func TestEvaluateArrayOf(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		param  string
		value  any
		passed bool
	}{
		{"all strings", "string", []any{"a", "b"}, true},
		{"empty array", "string", []any{}, true},
		{"mixed", "string", []any{"a", 1}, false},
		{"numbers", "number", []any{1, 2.5}, true},
		{"not an array", "string", "ab", false},
		{"unknown element check", "bogus", []any{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.Evaluate(Definition{
				Type:  "array_of",
				Param: tt.param,
			}, tt.value)
			assert.Equal(t, tt.passed, r.Passed, r.Message)
		})
	}
}

func TestEvaluateOneOf(t *testing.T) {
	e := NewEngine()

	check := Definition{Type: "one_of", Param: "string, number"}

	assert.True(t, e.Evaluate(check, "x").Passed)
	assert.True(t, e.Evaluate(check, 5).Passed)
	assert.False(t, e.Evaluate(check, true).Passed)

	r := e.Evaluate(Definition{
		Type:  "one_of",
		Param: "string, bogus",
	}, "x")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "unknown check")
}

func TestEvaluateTypeIs(t *testing.T) {
	e := NewEngine()

	assert.True(t, e.Evaluate(Definition{
		Type: "type_is", Param: "array",
	}, []int{1}).Passed)

	r := e.Evaluate(Definition{
		Type: "type_is", Param: "string",
	}, 42)
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "type is number")
}
