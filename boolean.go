package spectral

import "fmt"

// BoolSpec extends Spec[bool] with the boolean predicates.
type BoolSpec struct {
	*Spec[bool]
}

// Bool wraps subject in a container that supports the boolean
// predicates.
func Bool(tb TB, subject bool) *BoolSpec {
	return &BoolSpec{That(tb, subject)}
}

// As attaches a description to the chain. See Spec.As.
func (s *BoolSpec) As(description string) *BoolSpec {
	s.Spec.As(description)
	return s
}

// IsTrue asserts that the subject is true.
func (s *BoolSpec) IsTrue() *BoolSpec {
	s.tb.Helper()
	if !s.subject {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected("bool to be <true>").
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsFalse asserts that the subject is false.
func (s *BoolSpec) IsFalse() *BoolSpec {
	s.tb.Helper()
	if s.subject {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected("bool to be <false>").
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}
