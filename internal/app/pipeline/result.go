package pipeline

// Result is the terminal artifact of one run: either the generated notes
// or a typed failure reason.
type Result struct {
	Summary string
	Err     error
}

// Success builds a successful result.
func Success(summary string) Result {
	return Result{Summary: summary}
}

// Failure builds a failed result.
func Failure(err error) Result {
	return Result{Err: err}
}

// OK reports whether the run produced notes.
func (r Result) OK() bool {
	return r.Err == nil
}
