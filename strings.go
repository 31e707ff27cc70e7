package spectral

import (
	"fmt"
	"strings"
)

// StrSpec extends OrderedSpec[string] with string-specific predicates.
type StrSpec struct {
	*OrderedSpec[string]
}

// Str wraps subject in a container that supports the string predicates
// as well as the relational and equality predicates.
func Str(tb TB, subject string) *StrSpec {
	return &StrSpec{Ordered(tb, subject)}
}

// As attaches a description to the chain. See Spec.As.
func (s *StrSpec) As(description string) *StrSpec {
	s.Spec.As(description)
	return s
}

// Contains asserts that the subject contains expected as a substring.
func (s *StrSpec) Contains(expected string) *StrSpec {
	s.tb.Helper()
	if !strings.Contains(s.subject, expected) {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("string containing <%q>", expected)).
			WithActual(fmt.Sprintf("<%q>", s.subject)).
			failWith(loc)
	}
	return s
}

// StartsWith asserts that the subject starts with expected.
func (s *StrSpec) StartsWith(expected string) *StrSpec {
	s.tb.Helper()
	if !strings.HasPrefix(s.subject, expected) {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("string starting with <%q>", expected)).
			WithActual(fmt.Sprintf("<%q>", s.subject)).
			failWith(loc)
	}
	return s
}

// EndsWith asserts that the subject ends with expected.
func (s *StrSpec) EndsWith(expected string) *StrSpec {
	s.tb.Helper()
	if !strings.HasSuffix(s.subject, expected) {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("string ending with <%q>", expected)).
			WithActual(fmt.Sprintf("<%q>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsEmpty asserts that the subject is the empty string.
func (s *StrSpec) IsEmpty() *StrSpec {
	s.tb.Helper()
	if len(s.subject) != 0 {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected("an empty string").
			WithActual(fmt.Sprintf("<%q>", s.subject)).
			failWith(loc)
	}
	return s
}

// HasLength asserts that the subject has exactly expected bytes.
func (s *StrSpec) HasLength(expected int) *StrSpec {
	s.tb.Helper()
	if len(s.subject) != expected {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("string of length <%d>", expected)).
			WithActual(fmt.Sprintf("<%q> (length %d)", s.subject, len(s.subject))).
			failWith(loc)
	}
	return s
}
