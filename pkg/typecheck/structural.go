package typecheck

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

var emptyStructType = reflect.TypeOf(struct{}{})

// specializedStructTypes are built-in struct types that carry
// their own semantics and must never classify as plain objects.
var specializedStructTypes = map[reflect.Type]struct{}{
	reflect.TypeOf(time.Time{}):     {},
	reflect.TypeOf(big.Int{}):       {},
	reflect.TypeOf(big.Float{}):     {},
	reflect.TypeOf(big.Rat{}):       {},
	reflect.TypeOf(regexp.Regexp{}): {},
}

// IsArray reports whether value is a sequential collection: a
// slice or fixed-size array. Strings and "array-likes" (values
// that merely expose a length) do not qualify, and neither does
// a nil slice, which classifies as null.
func IsArray(value any) bool {
	if IsNullish(value) {
		return false
	}

	k := reflect.ValueOf(value).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsNonEmptyArray reports whether value is an array with at
// least one element.
func IsNonEmptyArray(value any) bool {
	if !IsArray(value) {
		return false
	}
	return reflect.ValueOf(value).Len() > 0
}

// IsSet reports whether value is a set: a map whose element type
// is struct{}, the conventional Go membership-only map.
func IsSet(value any) bool {
	if IsNullish(value) {
		return false
	}

	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Map &&
		v.Type().Elem() == emptyStructType
}

// IsMap reports whether value is a general associative
// collection: a map keyed by something other than a string.
// String-keyed maps classify as plain objects instead, and
// struct{}-valued maps classify as sets.
func IsMap(value any) bool {
	if IsNullish(value) {
		return false
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Map {
		return false
	}

	t := v.Type()
	return t.Key().Kind() != reflect.String &&
		t.Elem() != emptyStructType
}

// IsObject reports whether value is a plain keyed record: a
// string-keyed map (the decoded-JSON shape) or a struct that is
// not one of the specialized built-in kinds (time.Time, big.Int,
// big.Float, big.Rat, regexp.Regexp). Pointers to structs are
// followed one level.
func IsObject(value any) bool {
	if IsNullish(value) {
		return false
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		t := v.Type()
		return t.Key().Kind() == reflect.String &&
			t.Elem() != emptyStructType
	case reflect.Struct:
		_, specialized := specializedStructTypes[v.Type()]
		return !specialized
	}

	return false
}

// IsNonEmptyObject reports whether value is a plain object with
// at least one visible key: a non-empty string-keyed map, or a
// struct with at least one exported field.
func IsNonEmptyObject(value any) bool {
	if !IsObject(value) {
		return false
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.Kind() == reflect.Map {
		return v.Len() > 0
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}

	return false
}

// IsDate reports whether value is a time.Time (or non-nil
// pointer to one) holding a real instant. The zero time is the
// invalid-date sentinel and does not qualify.
func IsDate(value any) bool {
	switch t := value.(type) {
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	}
	return false
}

// IsRegexp reports whether value is a compiled regular
// expression.
func IsRegexp(value any) bool {
	switch r := value.(type) {
	case regexp.Regexp:
		return true
	case *regexp.Regexp:
		return r != nil
	}
	return false
}

// IsFunction reports whether value is invocable.
func IsFunction(value any) bool {
	if IsNullish(value) {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.Func
}

// IsAsyncFunction reports whether value is a function that
// returns a deferred result by construction: at least one of its
// declared results is a receivable channel. Detection inspects
// the function's type, never its name.
func IsAsyncFunction(value any) bool {
	if !IsFunction(value) {
		return false
	}

	t := reflect.TypeOf(value)
	for i := 0; i < t.NumOut(); i++ {
		out := t.Out(i)
		if out.Kind() == reflect.Chan &&
			out.ChanDir() != reflect.SendDir {
			return true
		}
	}

	return false
}

// IsPromise reports whether value represents a deferred result:
// a receivable channel, or a thenable — any non-nil value with
// an exported Then method. The thenable check is deliberately
// permissive so third-party future types interoperate; unrelated
// types that happen to expose a Then method will match too.
func IsPromise(value any) bool {
	if IsNullish(value) {
		return false
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Chan {
		return v.Type().ChanDir() != reflect.SendDir
	}

	return v.MethodByName("Then").IsValid()
}
