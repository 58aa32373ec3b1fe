package wuint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU10MaxIsAllOnesWithinTenBits(t *testing.T) {
	assert.Equal(t, "1023", U10Max().String())
}

func TestU10FromStrRadixBinary(t *testing.T) {
	got, err := U10FromStrRadix("1010011010", 2)
	require.NoError(t, err)
	assert.Equal(t, "666", got.String())
}

func TestU10FromBEBytesRejectsOutOfRangeValue(t *testing.T) {
	// 0x0400 == 1024, one past U10's max of 1023.
	_, err := U10FromBEBytes([2]byte{0x04, 0x00})
	require.Error(t, err)
}

func TestU10FromBEBytesAcceptsMax(t *testing.T) {
	got, err := U10FromBEBytes([2]byte{0x03, 0xff})
	require.NoError(t, err)
	assert.True(t, got.Equal(U10Max()))
}

func TestU10WrappingAddWrapsAtTenBits(t *testing.T) {
	got := U10Max().WrappingAdd(U10From64(1))
	assert.True(t, got.Equal(U10Zero()))
}

func TestU10OverflowingMul(t *testing.T) {
	_, ovf := U10From64(100).OverflowingMul(U10From64(100))
	assert.True(t, ovf)
}

func TestU8ByteRoundTrip(t *testing.T) {
	x := U8From64(200)
	got := U8FromBEBytes(x.ToBEBytes())
	assert.True(t, got.Equal(x))
}
