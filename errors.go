package formatcards

// InputError reports that the input document couldn't be read or parsed.
// No output has been produced when it is returned.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "input: " + e.Err.Error()
}

// Unwrap returns the underlying read or parse error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports that the finished listing couldn't be delivered to
// its destination.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return "output: " + e.Err.Error()
}

// Unwrap returns the underlying write error.
func (e *OutputError) Unwrap() error {
	return e.Err
}
