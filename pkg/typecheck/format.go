package typecheck

import (
	"encoding/json"
	"net/url"
	"reflect"
	"regexp"
)

var (
	// Basic shape validation only: something@something.something
	// with no whitespace. Deliberately far short of RFC 5322.
	emailPattern = regexp.MustCompile(
		`^[^\s@]+@[^\s@]+\.[^\s@]+$`,
	)

	// Canonical 8-4-4-4-12 layout with the version nibble
	// restricted to 1-5 and the variant nibble to 8, 9, a, b.
	uuidPattern = regexp.MustCompile(
		`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-` +
			`[89ab][0-9a-f]{3}-[0-9a-f]{12}$`,
	)
)

// IsURL reports whether value is a string that parses as an
// absolute URL (scheme required; relative references fail).
func IsURL(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}

	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// IsEmail reports whether value is an email-shaped string. This
// is basic validation, not full address-grammar compliance.
func IsEmail(value any) bool {
	s, ok := stringValue(value)
	return ok && emailPattern.MatchString(s)
}

// IsUUID reports whether value is a canonical hyphenated UUID
// with a valid version and variant nibble, case-insensitive.
func IsUUID(value any) bool {
	s, ok := stringValue(value)
	return ok && uuidPattern.MatchString(s)
}

// IsPrimitive reports whether value is nullish or of a primitive
// kind: string, number (finite or not), boolean, or big integer.
// Functions and objects are never primitive.
func IsPrimitive(value any) bool {
	if IsNullish(value) || IsBigInt(value) {
		return true
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

// IsJSONSerializable reports whether value survives a full
// serialize round trip. Cyclic structures, channels, and
// functions fail; the serializer's error is swallowed and
// reported as false.
func IsJSONSerializable(value any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	_, err := json.Marshal(value)
	return err == nil
}

// stringValue extracts value's text when it has string kind.
func stringValue(value any) (string, bool) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}
