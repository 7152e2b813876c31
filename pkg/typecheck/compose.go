package typecheck

import "reflect"

// Predicate classifies a single value of unknown shape.
type Predicate func(value any) bool

// IsArrayOf reports whether value is an array whose every
// element satisfies predicate. An empty array satisfies any
// predicate vacuously.
func IsArrayOf(value any, predicate Predicate) bool {
	if predicate == nil || !IsArray(value) {
		return false
	}

	v := reflect.ValueOf(value)
	for i := 0; i < v.Len(); i++ {
		if !predicate(v.Index(i).Interface()) {
			return false
		}
	}

	return true
}

// IsStringArray reports whether value is an array of strings.
func IsStringArray(value any) bool {
	return IsArrayOf(value, IsString)
}

// IsNumberArray reports whether value is an array of finite
// numbers.
func IsNumberArray(value any) bool {
	return IsArrayOf(value, IsNumber)
}

// OneOf combines predicates into a single predicate that passes
// when any of them passes, short-circuiting at the first match.
// With no predicates the result always returns false.
func OneOf(predicates ...Predicate) Predicate {
	return func(value any) bool {
		for _, p := range predicates {
			if p != nil && p(value) {
				return true
			}
		}
		return false
	}
}
