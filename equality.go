package spectral

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// IsEqualTo asserts that the subject is structurally equal to other,
// using go-cmp semantics (exported fields, Equal methods where defined).
//
//	spectral.That(t, got).IsEqualTo(want)
func (s *Spec[T]) IsEqualTo(other T) *Spec[T] {
	s.tb.Helper()
	if !cmp.Equal(s.subject, other) {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("<%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsNotEqualTo asserts that the subject is not structurally equal to
// other.
func (s *Spec[T]) IsNotEqualTo(other T) *Spec[T] {
	s.tb.Helper()
	if cmp.Equal(s.subject, other) {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("value not equal to <%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}
