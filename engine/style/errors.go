package style

import "fmt"

// InvalidPropertyError reports a style property name that cannot be
// canonicalized.
type InvalidPropertyError struct {
	Prop string
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid style property name %q", e.Prop)
}

// InvalidCSSUnitValueError reports a dimensional property whose value
// carries no CSS unit.
type InvalidCSSUnitValueError struct {
	Prop  string
	Value string
}

func (e *InvalidCSSUnitValueError) Error() string {
	return fmt.Sprintf("please provide a CSS unit value for %s:%s", e.Prop, e.Value)
}

// ErrorSink accumulates resolution errors in encounter order so a full
// normalization pass can surface every problem in one report.
type ErrorSink struct {
	errs []error
}

// Append records one resolution error.
func (s *ErrorSink) Append(err error) {
	if err != nil {
		s.errs = append(s.errs, err)
	}
}

// Len returns the number of recorded errors.
func (s *ErrorSink) Len() int {
	return len(s.errs)
}

// Errors returns the recorded errors in encounter order.
func (s *ErrorSink) Errors() []error {
	return s.errs
}
