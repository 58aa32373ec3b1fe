package litsuffix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	lit, err := Parse("666_U10")
	require.NoError(t, err)
	assert.Equal(t, KindU, lit.Kind)
	assert.Equal(t, 10, lit.Width)
	assert.Equal(t, 10, lit.Radix)
	assert.Equal(t, "666", lit.Digits)
}

func TestParseBinaryPrefix(t *testing.T) {
	lit, err := Parse("0b1010011010_U10")
	require.NoError(t, err)
	assert.Equal(t, 2, lit.Radix)
	assert.Equal(t, "1010011010", lit.Digits)
}

func TestParseHexPrefix(t *testing.T) {
	lit, err := Parse("0xf00f_U256")
	require.NoError(t, err)
	assert.Equal(t, 16, lit.Radix)
	assert.Equal(t, "f00f", lit.Digits)
}

func TestParseOctalPrefix(t *testing.T) {
	lit, err := Parse("0o17_U8")
	require.NoError(t, err)
	assert.Equal(t, 8, lit.Radix)
	assert.Equal(t, "17", lit.Digits)
}

func TestParseBitsSuffix(t *testing.T) {
	lit, err := Parse("5_B8")
	require.NoError(t, err)
	assert.Equal(t, KindB, lit.Kind)
	assert.Equal(t, 8, lit.Width)
}

// A trailing hex digit B must not be mistaken for a _B<width> suffix:
// the mandatory underscore before the B is what disambiguates them.
func TestParseHexEndingInBIsNotMistakenForSuffix(t *testing.T) {
	_, err := Parse("0xcafeb")
	require.Error(t, err)
}

func TestParseHexEndingInBWithExplicitSuffix(t *testing.T) {
	lit, err := Parse("0xcafeb_U256")
	require.NoError(t, err)
	assert.Equal(t, 16, lit.Radix)
	assert.Equal(t, "cafeb", lit.Digits)
}

func TestParseRejectsMissingSuffix(t *testing.T) {
	_, err := Parse("42")
	require.Error(t, err)
}

func TestParseRejectsEmptyBody(t *testing.T) {
	_, err := Parse("_U8")
	require.Error(t, err)
}

func TestParseRejectsEmptyWidth(t *testing.T) {
	_, err := Parse("42_U")
	require.Error(t, err)
}

func TestEvalOverflowingLiteralFails(t *testing.T) {
	// 300 does not fit in 8 bits.
	_, _, err := Eval("300_U8")
	require.Error(t, err)
}

func TestEvalRoundTripsIntoWide(t *testing.T) {
	v, kind, err := Eval("666_U10")
	require.NoError(t, err)
	assert.Equal(t, KindU, kind)
	assert.Equal(t, 10, v.Bits())
	assert.Equal(t, "666", v.String())
}
