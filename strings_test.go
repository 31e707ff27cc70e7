package spectral_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/spectral-go/spectral"
)

func TestStrContains(t *testing.T) {
	spectral.Str(t, "abcde").Contains("cd")
}

func TestStrContainsFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Str(rec, "abcde").Contains("xy")
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: string containing <\"xy\">\n\t but was: <\"abcde\">"))
}

func TestStrStartsWith(t *testing.T) {
	spectral.Str(t, "abcde").StartsWith("ab")
}

func TestStrStartsWithFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Str(rec, "abcde").StartsWith("bc")
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: string starting with <\"bc\">\n\t but was: <\"abcde\">"))
}

func TestStrEndsWith(t *testing.T) {
	spectral.Str(t, "abcde").EndsWith("de")
}

func TestStrEndsWithFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Str(rec, "abcde").EndsWith("cd")
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: string ending with <\"cd\">\n\t but was: <\"abcde\">"))
}

func TestStrIsEmpty(t *testing.T) {
	spectral.Str(t, "").IsEmpty()
}

func TestStrIsEmptyFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Str(rec, "x").IsEmpty()
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: an empty string\n\t but was: <\"x\">"))
}

func TestStrHasLength(t *testing.T) {
	spectral.Str(t, "abcde").HasLength(5)
}

func TestStrHasLengthFailure(t *testing.T) {
	rec := &recorderTB{}
	spectral.Str(rec, "abcde").HasLength(3)
	qt.Assert(t, qt.IsTrue(rec.failed))
	qt.Assert(t, qt.Equals(rec.message, "\n\texpected: string of length <3>\n\t but was: <\"abcde\"> (length 5)"))
}

func TestStrChainsWithOrderingAndEquality(t *testing.T) {
	spectral.Str(t, "abc").
		StartsWith("a").
		EndsWith("c").
		IsLessThan("abd").
		IsEqualTo("abc")
}
