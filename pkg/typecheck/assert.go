package typecheck

import "fmt"

// AssertionError reports that a value failed a type assertion.
type AssertionError struct {
	Message string
}

// Error returns the assertion failure message.
func (e *AssertionError) Error() string {
	return e.Message
}

// AssertType evaluates predicate against value. It returns nil
// when the predicate accepts the value and an *AssertionError
// otherwise, carrying the caller-supplied message when one is
// given or a default message rendering the offending value.
func AssertType(
	value any,
	predicate Predicate,
	message ...string,
) error {
	if predicate != nil && predicate(value) {
		return nil
	}

	if len(message) > 0 && message[0] != "" {
		return &AssertionError{Message: message[0]}
	}

	return &AssertionError{
		Message: fmt.Sprintf(
			"type assertion failed for value: %v", value,
		),
	}
}

// AsType returns value as a concrete T when it holds one. It is
// the static-narrowing companion to the predicates: after a
// successful call the caller works with a typed value.
func AsType[T any](value any) (T, bool) {
	t, ok := value.(T)
	return t, ok
}

// MustType returns value as a concrete T or an *AssertionError
// naming the expected and actual types.
func MustType[T any](value any) (T, error) {
	if t, ok := value.(T); ok {
		return t, nil
	}

	var zero T
	return zero, &AssertionError{
		Message: fmt.Sprintf(
			"type assertion failed: expected %T, got %T",
			zero, value,
		),
	}
}
