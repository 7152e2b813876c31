// Package assertion provides an extensible engine of named type
// checks backed by the typecheck predicate library. Checks are
// described declaratively, evaluated against single values or
// maps of named values, and support custom check registration.
package assertion

// Definition describes a single named check to evaluate against
// a value.
type Definition struct {
	// Type is the check type (e.g., "string", "uuid",
	// "array_of").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check when evaluating
	// against a map of named values.
	Target string `json:"target" yaml:"target"`

	// Param parameterizes the check: the element check name for
	// "array_of", a comma-separated list of check names for
	// "one_of", or the expected tag for "type_is".
	Param string `json:"param,omitempty" yaml:"param,omitempty"`

	// Message is a human-readable description shown on failure.
	Message string `json:"message" yaml:"message"`
}

// Result captures the outcome of evaluating a single check.
type Result struct {
	// Type is the check type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Param is the parameter the check ran with, if any.
	Param string `json:"param,omitempty"`

	// Actual is the value that was inspected.
	Actual any `json:"actual"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
