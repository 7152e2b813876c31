package assertion

import "fmt"

// AllPass evaluates a set of checks and passes only when every
// one of them passes.
func AllPass(
	engine Engine,
	checks []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(checks, values)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Type:   "all_pass",
				Passed: false,
				Message: fmt.Sprintf(
					"check '%s' on target '%s' failed: %s",
					r.Type, r.Target, r.Message,
				),
			}
		}
	}

	return Result{
		Type:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d checks passed", len(results),
		),
	}
}

// AnyPass evaluates a set of checks and passes when at least one
// of them passes.
func AnyPass(
	engine Engine,
	checks []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(checks, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"check '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d checks passed", len(results),
		),
	}
}

// CombineAll returns an Evaluator that runs a fixed set of
// sub-checks against the same value and requires all to pass.
func CombineAll(
	engine Engine,
	subChecks []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		values := map[string]any{}
		for _, c := range subChecks {
			values[c.Target] = value
		}
		r := AllPass(engine, subChecks, values)
		return r.Passed, r.Message
	}
}

// CombineAny returns an Evaluator that runs a fixed set of
// sub-checks against the same value and requires at least one to
// pass.
func CombineAny(
	engine Engine,
	subChecks []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		values := map[string]any{}
		for _, c := range subChecks {
			values[c.Target] = value
		}
		r := AnyPass(engine, subChecks, values)
		return r.Passed, r.Message
	}
}
