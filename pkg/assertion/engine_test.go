package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RegistersAllBuiltins(t *testing.T) {
	e := NewEngine()

	builtins := []string{
		"string", "non_empty_string", "boolean", "number",
		"integer", "positive_number", "numeric", "bigint",
		"symbol", "array", "non_empty_array", "object",
		"non_empty_object", "date", "regexp", "map", "set",
		"function", "async_function", "promise", "null",
		"undefined", "nullish", "defined", "empty",
		"not_empty", "url", "email", "uuid", "primitive",
		"json_serializable", "array_of", "one_of", "type_is",
	}

	for _, name := range builtins {
		assert.True(t, e.HasEvaluator(name),
			"missing built-in check: %s", name)
	}
}

func TestDefaultEngine_Register_Success(t *testing.T) {
	e := NewEngine()

	err := e.Register("custom", func(
		_ Definition, _ any,
	) (bool, string) {
		return true, "custom ok"
	})

	require.NoError(t, err)
	assert.True(t, e.HasEvaluator("custom"))
}

func TestDefaultEngine_Register_Duplicate(t *testing.T) {
	e := NewEngine()

	err := e.Register("uuid", func(
		_ Definition, _ any,
	) (bool, string) {
		return true, "dup"
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultEngine_Evaluate_UnknownType(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type:   "nonexistent",
		Target: "x",
	}, "hello")

	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "unknown check type")
}

func TestDefaultEngine_Evaluate_SetsFields(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type:   "non_empty_string",
		Target: "response",
	}, "hello world")

	assert.True(t, r.Passed)
	assert.Equal(t, "non_empty_string", r.Type)
	assert.Equal(t, "response", r.Target)
	assert.Equal(t, "hello world", r.Actual)
}

func TestDefaultEngine_EvaluateAll_MissingTarget(t *testing.T) {
	e := NewEngine()

	results := e.EvaluateAll(
		[]Definition{
			{Type: "string", Target: "missing"},
		},
		map[string]any{"other": "value"},
	)

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "target not found")
}

func TestDefaultEngine_EvaluateAll_MultipleChecks(t *testing.T) {
	e := NewEngine()

	results := e.EvaluateAll(
		[]Definition{
			{Type: "non_empty_string", Target: "name"},
			{Type: "positive_number", Target: "count"},
			{Type: "array_of", Target: "tags", Param: "string"},
		},
		map[string]any{
			"name":  "hello",
			"count": 3,
			"tags":  []any{"a", "b"},
		},
	)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Passed, "check %s failed: %s", r.Type, r.Message)
	}
}

func TestDefaultEngine_HasEvaluator(t *testing.T) {
	e := NewEngine()

	assert.True(t, e.HasEvaluator("uuid"))
	assert.False(t, e.HasEvaluator("does_not_exist"))
}
