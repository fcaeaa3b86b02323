package facts

// WriteError is returned when a mutation could not be persisted.
type WriteError struct {
	Op  string
	Err error
}

func (e WriteError) Error() string {
	if e.Err == nil {
		return "facts: " + e.Op + " failed"
	}

	return "facts: " + e.Op + " failed: " + e.Err.Error()
}

func (e WriteError) Unwrap() error {
	return e.Err
}
