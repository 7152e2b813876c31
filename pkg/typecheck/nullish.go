package typecheck

import "reflect"

// IsUndefined reports whether value is the nil interface: no
// value of any type is present.
func IsUndefined(value any) bool {
	return value == nil
}

// IsNull reports whether value is a typed nil: a non-nil
// interface holding a nil pointer, map, slice, channel, or
// function.
func IsNull(value any) bool {
	if value == nil {
		return false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	}

	return false
}

// IsNullish reports whether value is either nil sentinel.
func IsNullish(value any) bool {
	return IsUndefined(value) || IsNull(value)
}

// IsDefined reports whether value is present and non-nil. It is
// the exact complement of IsNullish.
func IsDefined(value any) bool {
	return !IsNullish(value)
}
