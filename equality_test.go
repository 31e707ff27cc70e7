package spectral_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/spectral-go/spectral"
)

func TestIsEqualTo(t *testing.T) {
	spectral.That(t, 2).IsEqualTo(2)
	spectral.That(t, "abc").IsEqualTo("abc")
	spectral.That(t, []int{1, 2}).IsEqualTo([]int{1, 2})
}

func TestIsEqualToFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.That(rec, 3).IsEqualTo(2)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: <2>\n\t but was: <3>"))
}

func TestIsNotEqualTo(t *testing.T) {
	spectral.That(t, 2).IsNotEqualTo(3)
}

func TestIsNotEqualToFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.That(rec, 2).IsNotEqualTo(2)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: value not equal to <2>\n\t but was: <2>"))
}

func TestEqualityChainsWithOrdering(t *testing.T) {
	spectral.Ordered(t, 2).IsGreaterThan(1).IsEqualTo(2)
}
