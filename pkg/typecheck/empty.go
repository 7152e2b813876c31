package typecheck

import (
	"reflect"
	"strings"
)

// IsEmpty reports whether value holds nothing, dispatching on
// its runtime kind in a fixed precedence order: nullish values
// are empty; strings are empty when whitespace-trimmed to
// nothing; arrays when length zero; maps and sets when size
// zero; plain objects when they expose no keys. Everything else
// (numbers, booleans, functions, dates, regexps) is never empty.
//
// Inspection failures are swallowed and reported as not-empty:
// emptiness is asserted defensively, so the predicate fails open.
func IsEmpty(value any) (empty bool) {
	defer func() {
		if recover() != nil {
			empty = false
		}
	}()

	if IsNullish(value) {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Array:
		return v.Len() == 0
	case reflect.Map:
		// Covers maps, sets, and string-keyed records alike.
		return v.Len() == 0
	}

	// Only struct-shaped objects remain; string-keyed maps were
	// handled by the map case above.
	if IsObject(value) {
		return !IsNonEmptyObject(value)
	}

	return false
}

// IsNotEmpty is the exact complement of IsEmpty. It carries no
// logic of its own.
func IsNotEmpty(value any) bool {
	return !IsEmpty(value)
}
