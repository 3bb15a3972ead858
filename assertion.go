package shape

import "fmt"

// AssertionError is the panic value raised by [Assert].
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return "shape: assertion failed: " + e.Message
}

// Assert panics with an *AssertionError if condition is false.
func Assert(condition bool, format string, args ...any) {
	if condition {
		return
	}

	panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
}
