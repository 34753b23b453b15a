package tentai

// AssertionError marks a violated engine invariant: a bug in the
// generator or solver itself, as opposed to a malformed or infeasible
// puzzle, which is reported as an ordinary error instead.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
