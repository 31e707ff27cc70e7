package spectral

import (
	"cmp"
	"fmt"
)

// OrderedSpec extends Spec for subject types that support the ordering
// operators. It adds the four relational predicates; everything on the
// embedded Spec (As, IsEqualTo, Fail, ...) remains available.
//
// Each predicate is written as the negation of the intended relation
// using the complementary operator. For floating point subjects this
// means a NaN on either side passes every predicate: the complement can
// never be affirmed when the operands do not compare.
type OrderedSpec[T cmp.Ordered] struct {
	*Spec[T]
}

// Ordered wraps subject in a container that supports the relational
// predicates.
func Ordered[T cmp.Ordered](tb TB, subject T) *OrderedSpec[T] {
	return &OrderedSpec[T]{That(tb, subject)}
}

// As attaches a description to the chain. See Spec.As.
func (s *OrderedSpec[T]) As(description string) *OrderedSpec[T] {
	s.Spec.As(description)
	return s
}

// IsLessThan asserts that the subject is less than other.
//
//	spectral.Ordered(t, 1).IsLessThan(2)
func (s *OrderedSpec[T]) IsLessThan(other T) *OrderedSpec[T] {
	s.tb.Helper()
	if s.subject >= other {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("value less than <%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsLessThanOrEqualTo asserts that the subject is less than or equal to
// other.
//
//	spectral.Ordered(t, 2).IsLessThanOrEqualTo(2)
func (s *OrderedSpec[T]) IsLessThanOrEqualTo(other T) *OrderedSpec[T] {
	s.tb.Helper()
	if s.subject > other {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("value less than or equal to <%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsGreaterThan asserts that the subject is greater than other.
//
//	spectral.Ordered(t, 2).IsGreaterThan(1)
func (s *OrderedSpec[T]) IsGreaterThan(other T) *OrderedSpec[T] {
	s.tb.Helper()
	if s.subject <= other {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("value greater than <%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}

// IsGreaterThanOrEqualTo asserts that the subject is greater than or
// equal to other.
//
//	spectral.Ordered(t, 2).IsGreaterThanOrEqualTo(1)
func (s *OrderedSpec[T]) IsGreaterThanOrEqualTo(other T) *OrderedSpec[T] {
	s.tb.Helper()
	if s.subject < other {
		loc := newLocationInfo(offsetAPICaller)
		s.WithExpected(fmt.Sprintf("value greater than or equal to <%v>", other)).
			WithActual(fmt.Sprintf("<%v>", s.subject)).
			failWith(loc)
	}
	return s
}
