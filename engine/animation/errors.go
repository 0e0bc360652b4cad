package animation

import (
	"strings"
)

// StyleResolutionError aggregates every property and value resolution
// failure of one normalization pass into a single error. Individual
// failures stay available as typed values through Unwrap.
type StyleResolutionError struct {
	errs []error
}

// NewStyleResolutionError wraps the collected resolution failures.
func NewStyleResolutionError(errs []error) *StyleResolutionError {
	return &StyleResolutionError{errs: errs}
}

func (e *StyleResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("unable to animate due to the following errors:")
	for _, err := range e.errs {
		b.WriteString("\n - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *StyleResolutionError) Unwrap() []error {
	return e.errs
}

// Errors returns the individual failures in encounter order.
func (e *StyleResolutionError) Errors() []error {
	return e.errs
}
