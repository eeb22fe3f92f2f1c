package input

import "errors"

// Sentinel causes wrapped by [InputError].
var (
	ErrNoFiles = errors.New("No files provided for compilation.")
	ErrRead    = errors.New("Error reading input")
)

// InputError reports that no usable file list could be collected. The run
// stops before any toolchain invocation.
type InputError struct {
	Err    error // ErrNoFiles or ErrRead
	Detail error // Underlying read failure, if any.
}

func (e *InputError) Error() string {
	if e.Detail != nil {
		return e.Err.Error() + ": " + e.Detail.Error()
	}
	return e.Err.Error()
}

func (e *InputError) Unwrap() []error {
	if e.Detail != nil {
		return []error{e.Err, e.Detail}
	}
	return []error{e.Err}
}
