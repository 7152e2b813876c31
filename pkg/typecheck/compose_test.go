package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArrayOf(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		predicate Predicate
		expected  bool
	}{
		{"empty array vacuously true", []any{}, IsString, true},
		{"all strings", []any{"a", "b"}, IsString, true},
		{"typed string slice", []string{"a", "b"}, IsString, true},
		{"mixed elements", []any{"a", 1}, IsString, false},
		{"all numbers", []any{1, 2.5}, IsNumber, true},
		{"not an array", "abc", IsString, false},
		{"nil value", nil, IsString, false},
		{"nil predicate", []any{"a"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				IsArrayOf(tt.value, tt.predicate))
		})
	}
}

func TestIsStringArray(t *testing.T) {
	assert.True(t, IsStringArray([]string{"a", "b"}))
	assert.True(t, IsStringArray([]any{"a", "b"}))
	assert.True(t, IsStringArray([]any{}))
	assert.False(t, IsStringArray([]any{"a", 1}))
	assert.False(t, IsStringArray("ab"))
}

func TestIsNumberArray(t *testing.T) {
	assert.True(t, IsNumberArray([]int{1, 2}))
	assert.True(t, IsNumberArray([]any{1, 2.5}))
	assert.True(t, IsNumberArray([]float64{}))
	assert.False(t, IsNumberArray([]any{1, "2"}))
	assert.False(t, IsNumberArray(12))
}

func TestOneOf(t *testing.T) {
	stringOrNumber := OneOf(IsString, IsNumber)

	assert.True(t, stringOrNumber("x"))
	assert.True(t, stringOrNumber(5))
	assert.False(t, stringOrNumber(true))
	assert.False(t, stringOrNumber(nil))
}

func TestOneOf_NoPredicates(t *testing.T) {
	never := OneOf()

	for _, v := range []any{nil, "x", 5, true, []any{}} {
		assert.False(t, never(v))
	}
}

func TestOneOf_ShortCircuits(t *testing.T) {
	calls := 0
	counting := func(any) bool {
		calls++
		return false
	}

	p := OneOf(IsString, counting)
	assert.True(t, p("hit"))
	assert.Zero(t, calls, "later predicates must not run after a match")
}
