package typecheck

import (
	"reflect"
	"regexp"
	"time"
)

// TypeOf classifies value into a string tag, first match wins:
// "null", "undefined", "array", "date", "regexp", "map", "set",
// "promise", "bigint", then the primitive tag ("string",
// "number", "boolean", "function") with "object" as the final
// fallback. The date and regexp tags apply to any instance of
// those types, including the invalid-date sentinel.
func TypeOf(value any) string {
	switch {
	case IsNull(value):
		return "null"
	case IsUndefined(value):
		return "undefined"
	case IsArray(value):
		return "array"
	}

	switch value.(type) {
	case time.Time, *time.Time:
		return "date"
	case regexp.Regexp, *regexp.Regexp:
		return "regexp"
	}

	switch {
	case IsMap(value):
		return "map"
	case IsSet(value):
		return "set"
	case IsPromise(value):
		return "promise"
	case IsBigInt(value):
		return "bigint"
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Func:
		return "function"
	}

	return "object"
}
