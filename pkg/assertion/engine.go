package assertion

import (
	"fmt"
	"sync"
)

// Engine defines the interface for check evaluation engines.
type Engine interface {
	// Evaluate runs a single check against the given value.
	Evaluate(check Definition, value any) Result

	// EvaluateAll runs multiple checks against a map of named
	// values. Each check's Target field is used as the key into
	// the values map.
	EvaluateAll(
		checks []Definition,
		values map[string]any,
	) []Result

	// Register adds a custom evaluator for the given check
	// type. Returns an error if the type is already registered.
	Register(checkType string, evaluator Evaluator) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
}

// NewEngine creates a DefaultEngine with every built-in check
// pre-registered: one per typecheck predicate plus the
// parameterized "array_of", "one_of", and "type_is" checks.
func NewEngine() *DefaultEngine {
	e := &DefaultEngine{
		evaluators: make(map[string]Evaluator),
	}
	e.registerDefaults()
	return e
}

// registerDefaults registers all built-in evaluators.
func (e *DefaultEngine) registerDefaults() {
	for name, p := range basePredicates {
		e.evaluators[name] = checkFor(name, p)
	}

	e.evaluators["array_of"] = evaluateArrayOf
	e.evaluators["one_of"] = evaluateOneOf
	e.evaluators["type_is"] = evaluateTypeIs
}

// Register adds a custom evaluator for the given check type.
// Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	checkType string,
	evaluator Evaluator,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[checkType]; exists {
		return fmt.Errorf(
			"check type already registered: %s",
			checkType,
		)
	}

	e.evaluators[checkType] = evaluator
	return nil
}

// Evaluate runs a single check against the provided value.
func (e *DefaultEngine) Evaluate(
	check Definition,
	value any,
) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[check.Type]
	e.mu.RUnlock()

	if !exists {
		return Result{
			Type:   check.Type,
			Target: check.Target,
			Passed: false,
			Message: fmt.Sprintf(
				"unknown check type: %s", check.Type,
			),
		}
	}

	passed, message := evaluator(check, value)

	return Result{
		Type:    check.Type,
		Target:  check.Target,
		Param:   check.Param,
		Actual:  value,
		Passed:  passed,
		Message: message,
	}
}

// EvaluateAll runs multiple checks against a map of named
// values. Each check's Target field is used as the key into the
// values map. If a target is missing, the check fails.
func (e *DefaultEngine) EvaluateAll(
	checks []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(checks))

	for _, c := range checks {
		value, exists := values[c.Target]
		if !exists {
			results = append(results, Result{
				Type:   c.Type,
				Target: c.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"target not found: %s", c.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(c, value))
	}

	return results
}

// HasEvaluator returns true if the given check type has a
// registered evaluator.
func (e *DefaultEngine) HasEvaluator(checkType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[checkType]
	return exists
}
