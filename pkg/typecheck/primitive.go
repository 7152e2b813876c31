package typecheck

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// IsString reports whether value has a textual runtime
// representation (string kind, including named string types).
func IsString(value any) bool {
	v := reflect.ValueOf(value)
	return v.IsValid() && v.Kind() == reflect.String
}

// IsNonEmptyString reports whether value is textual and contains
// at least one non-whitespace character.
func IsNonEmptyString(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(v.String()) != ""
}

// IsBoolean reports whether value is a boolean.
func IsBoolean(value any) bool {
	v := reflect.ValueOf(value)
	return v.IsValid() && v.Kind() == reflect.Bool
}

// IsNumber reports whether value is a finite number. All integer
// and unsigned kinds qualify; float kinds qualify unless the
// value is NaN or an infinity.
func IsNumber(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}
	_, ok := numericValue(v)
	return ok
}

// IsInteger reports whether value is a number with no fractional
// part. Integer kinds always qualify; floats qualify when finite
// and whole.
func IsInteger(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return math.Trunc(f) == f
	}

	return false
}

// IsPositiveNumber reports whether value is a finite number
// strictly greater than zero.
func IsPositiveNumber(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}

	f, ok := numericValue(v)
	return ok && f > 0
}

// IsNumeric reports whether value is a finite number, or a
// string whose whitespace-trimmed form is non-empty and parses
// as a finite number under Go's standard numeric grammar
// (decimal, scientific, and hexadecimal float notation). Parse
// failures yield false, never an error.
func IsNumeric(value any) bool {
	if IsNumber(value) {
		return true
	}

	v := reflect.ValueOf(value)
	if !v.IsValid() || v.Kind() != reflect.String {
		return false
	}

	return parseNumeric(v.String())
}

// IsBigInt reports whether value is an arbitrary-precision
// integer (a math/big.Int value or non-nil pointer).
func IsBigInt(value any) bool {
	switch n := value.(type) {
	case big.Int:
		return true
	case *big.Int:
		return n != nil
	}
	return false
}

// IsSymbol always returns false: Go has no symbol primitive.
// It exists so callers porting classification tables from hosts
// that do have one keep a total predicate surface.
func IsSymbol(any) bool {
	return false
}

// numericValue extracts value's numeric magnitude as a float64.
// It reports false for non-numeric kinds and non-finite floats.
func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// parseNumeric reports whether the trimmed string form converts
// to a finite number.
func parseNumeric(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return false
	}

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
