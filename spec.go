// Package spectral is a fluent assertion library for Go tests.
//
// A caller wraps a value under test ("subject") with one of the entry
// points (That, Ordered, Str, Bool) and chains predicate methods on the
// returned container. A passing predicate returns the same container so
// further predicates can be chained; a failing predicate aborts the
// current test through the supplied TB with a two-line expected/but-was
// diagnostic.
//
//	spectral.Ordered(t, got).IsGreaterThanOrEqualTo(0).IsLessThan(limit)
//
// Failures terminate only the test that raised them: with a *testing.T
// the abort goes through testing.TB.Fatal, which stops the test goroutine
// without disturbing other tests running in parallel.
//
// If the environment variable SPECTRAL_LOCAL_OUTPUT is set, every failure
// additionally appends a structured JSON record to the file it names,
// using one JSON document per line. This is meant for harnesses that
// collect diagnostics outside the regular test output.
package spectral

import (
	"fmt"

	"github.com/spectral-go/spectral/internal"
)

// TB is the subset of testing.TB that spectral needs to report a
// failure. *testing.T and *testing.B satisfy it.
type TB interface {
	Helper()
	Fatal(args ...any)
}

// Spec holds a subject value together with the failure sink and the
// expected/actual diagnostic text accumulated by a failing predicate.
// The subject is never reassigned after construction; predicates mutate
// only the diagnostic text.
type Spec[T any] struct {
	tb          TB
	subject     T
	description string
	expected    string
	actual      string
}

type failureInfo struct {
	Description string        `json:"description,omitempty"`
	Expected    string        `json:"expected"`
	Actual      string        `json:"actual"`
	Location    *locationInfo `json:"location"`
}

type wrappedFailureInfo struct {
	F *failureInfo `json:"spectral_failure"`
}

// That wraps subject in a new assertion container. Each chain gets its
// own container; nothing is shared across chains.
func That[T any](tb TB, subject T) *Spec[T] {
	return &Spec[T]{tb: tb, subject: subject}
}

// Subject returns the wrapped value.
func (s *Spec[T]) Subject() T {
	return s.subject
}

// As attaches a description to the chain. When set, failure messages
// start with a "<description>:" line ahead of the expected/but-was pair.
func (s *Spec[T]) As(description string) *Spec[T] {
	s.description = description
	return s
}

// WithExpected stores the expectation text shown on failure, replacing
// any previous value. Intended for predicate implementations; predicates
// must set both texts before calling Fail.
func (s *Spec[T]) WithExpected(text string) *Spec[T] {
	s.expected = text
	return s
}

// WithActual stores the actual-value text shown on failure, replacing
// any previous value.
func (s *Spec[T]) WithActual(text string) *Spec[T] {
	s.actual = text
	return s
}

// Fail aborts the current test with the accumulated diagnostic. With a
// *testing.T this never returns. Custom predicates built on top of Spec
// should call WithExpected and WithActual first.
func (s *Spec[T]) Fail() {
	s.tb.Helper()
	s.failWith(newLocationInfo(offsetAPICaller))
}

func (s *Spec[T]) failWith(loc *locationInfo) {
	s.tb.Helper()
	s.emitFailure(loc)
	msg := fmt.Sprintf("\n\texpected: %s\n\t but was: %s", s.expected, s.actual)
	if s.description != "" {
		msg = fmt.Sprintf("\n\t%s:%s", s.description, msg)
	}
	s.tb.Fatal(msg)
}

// emitFailure is best effort: a broken output file must not mask the
// assertion failure itself.
func (s *Spec[T]) emitFailure(loc *locationInfo) {
	fI := &failureInfo{
		Description: s.description,
		Expected:    s.expected,
		Actual:      s.actual,
		Location:    loc,
	}
	_ = internal.JsonData(wrappedFailureInfo{fI})
}
