package assertion

import (
	"fmt"
	"strings"

	"digital.vasic.typecheck/pkg/typecheck"
)

// basePredicates maps the built-in check names to the typecheck
// predicates behind them. It also resolves the element checks
// named by "array_of" and "one_of" parameters.
var basePredicates = map[string]typecheck.Predicate{
	"string":            typecheck.IsString,
	"non_empty_string":  typecheck.IsNonEmptyString,
	"boolean":           typecheck.IsBoolean,
	"number":            typecheck.IsNumber,
	"integer":           typecheck.IsInteger,
	"positive_number":   typecheck.IsPositiveNumber,
	"numeric":           typecheck.IsNumeric,
	"bigint":            typecheck.IsBigInt,
	"symbol":            typecheck.IsSymbol,
	"array":             typecheck.IsArray,
	"non_empty_array":   typecheck.IsNonEmptyArray,
	"object":            typecheck.IsObject,
	"non_empty_object":  typecheck.IsNonEmptyObject,
	"date":              typecheck.IsDate,
	"regexp":            typecheck.IsRegexp,
	"map":               typecheck.IsMap,
	"set":               typecheck.IsSet,
	"function":          typecheck.IsFunction,
	"async_function":    typecheck.IsAsyncFunction,
	"promise":           typecheck.IsPromise,
	"null":              typecheck.IsNull,
	"undefined":         typecheck.IsUndefined,
	"nullish":           typecheck.IsNullish,
	"defined":           typecheck.IsDefined,
	"empty":             typecheck.IsEmpty,
	"not_empty":         typecheck.IsNotEmpty,
	"url":               typecheck.IsURL,
	"email":             typecheck.IsEmail,
	"uuid":              typecheck.IsUUID,
	"primitive":         typecheck.IsPrimitive,
	"json_serializable": typecheck.IsJSONSerializable,
}

// checkFor wraps a predicate into an Evaluator with uniform
// pass/fail messages naming the check.
func checkFor(name string, p typecheck.Predicate) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		if p(value) {
			return true, fmt.Sprintf("value is %s", name)
		}
		return false, fmt.Sprintf(
			"value is not %s (got %s)",
			name, typecheck.TypeOf(value),
		)
	}
}

// evaluateArrayOf checks that the value is an array whose every
// element satisfies the check named by Param. Empty arrays pass.
func evaluateArrayOf(
	check Definition,
	value any,
) (bool, string) {
	name := strings.TrimSpace(check.Param)
	elem, ok := basePredicates[name]
	if !ok {
		return false, fmt.Sprintf(
			"unknown element check: %s", name,
		)
	}

	if typecheck.IsArrayOf(value, elem) {
		return true, fmt.Sprintf(
			"all elements are %s", name,
		)
	}

	if !typecheck.IsArray(value) {
		return false, fmt.Sprintf(
			"value is not an array (got %s)",
			typecheck.TypeOf(value),
		)
	}

	return false, fmt.Sprintf(
		"not all elements are %s", name,
	)
}

// evaluateOneOf checks the value against the comma-separated
// check names in Param and passes when any of them matches.
func evaluateOneOf(
	check Definition,
	value any,
) (bool, string) {
	names := strings.Split(check.Param, ",")

	predicates := make([]typecheck.Predicate, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		p, ok := basePredicates[name]
		if !ok {
			return false, fmt.Sprintf(
				"unknown check in one_of: %s", name,
			)
		}
		predicates = append(predicates, p)
	}

	if typecheck.OneOf(predicates...)(value) {
		return true, fmt.Sprintf(
			"value matches one of: %s", check.Param,
		)
	}

	return false, fmt.Sprintf(
		"value matches none of: %s (got %s)",
		check.Param, typecheck.TypeOf(value),
	)
}

// evaluateTypeIs checks that the value's classification tag
// equals Param exactly.
func evaluateTypeIs(
	check Definition,
	value any,
) (bool, string) {
	expected := strings.TrimSpace(check.Param)
	actual := typecheck.TypeOf(value)

	if actual == expected {
		return true, fmt.Sprintf("type is %s", actual)
	}

	return false, fmt.Sprintf(
		"type is %s, expected %s", actual, expected,
	)
}
