package assertion

// Evaluator is a function that evaluates a single check type
// against a concrete value. It returns whether the check passed
// and a human-readable explanation.
type Evaluator func(check Definition, value any) (bool, string)
