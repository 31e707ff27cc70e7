package spectral_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/spectral-go/spectral"
)

func TestIsLessThan(t *testing.T) {
	spectral.Ordered(t, 1).IsLessThan(2)
	spectral.Ordered(t, 1.5).IsLessThan(2.5)
	spectral.Ordered(t, "abc").IsLessThan("abd")
}

func TestIsLessThanFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 3).IsLessThan(2)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value less than <2>\n\t but was: <3>"))
}

func TestIsLessThanFailsOnEqualValues(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 2).IsLessThan(2)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value less than <2>\n\t but was: <2>"))
}

func TestIsLessThanOrEqualTo(t *testing.T) {
	spectral.Ordered(t, 2).IsLessThanOrEqualTo(2)
	spectral.Ordered(t, 2).IsLessThanOrEqualTo(3)
}

func TestIsLessThanOrEqualToFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 3).IsLessThanOrEqualTo(2)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value less than or equal to <2>\n\t but was: <3>"))
}

func TestIsGreaterThan(t *testing.T) {
	spectral.Ordered(t, 3).IsGreaterThan(2)
}

func TestIsGreaterThanFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 2).IsGreaterThan(3)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value greater than <3>\n\t but was: <2>"))
}

func TestIsGreaterThanOrEqualTo(t *testing.T) {
	spectral.Ordered(t, 3).IsGreaterThanOrEqualTo(3)
	spectral.Ordered(t, 4).IsGreaterThanOrEqualTo(3)
}

func TestIsGreaterThanOrEqualToFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 2).IsGreaterThanOrEqualTo(3)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value greater than or equal to <3>\n\t but was: <2>"))
}

func TestOrderingPredicatesChain(t *testing.T) {
	spectral.Ordered(t, 2).
		IsGreaterThanOrEqualTo(2).
		IsLessThan(3).
		IsGreaterThan(1).
		IsLessThanOrEqualTo(2)
}

func TestOrderingDescriptionFlowsThroughChain(t *testing.T) {
	rec := &recorderTB{}
	spectral.Ordered(rec, 9).As("window size").IsLessThan(5)
	qt.Assert(t, qt.Equals(rec.message, "\n\twindow size:\n\texpected: value less than <5>\n\t but was: <9>"))
}

// A NaN on either side cannot affirm the complementary operator, so
// every ordering predicate passes. This mirrors the behavior of partial
// ordering on floats rather than failing closed.
func TestOrderingPredicatesPassOnNaN(t *testing.T) {
	nan := math.NaN()
	rec := &recorderTB{}
	spectral.Ordered(rec, nan).
		IsLessThan(1).
		IsLessThanOrEqualTo(1).
		IsGreaterThan(1).
		IsGreaterThanOrEqualTo(1)
	spectral.Ordered(rec, 1.0).
		IsLessThan(nan).
		IsLessThanOrEqualTo(nan).
		IsGreaterThan(nan).
		IsGreaterThanOrEqualTo(nan)
	qt.Assert(t, qt.IsFalse(rec.failed))
}

func BenchmarkIsLessThan(b *testing.B) {
	for i := 0; i < b.N; i++ {
		spectral.Ordered(b, 1).IsLessThan(2)
	}
}
