package wuint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsFromU8RoundTrip(t *testing.T) {
	x := U8From64(0xa5)
	b := BitsFromU8(x)
	assert.True(t, b.ToU8().Equal(x))
}

func TestBits8AndOrXor(t *testing.T) {
	a := BitsFromU8(U8From64(0xf0))
	b := BitsFromU8(U8From64(0x0f))
	assert.True(t, a.And(b).Equal(BitsFromU8(U8Zero())))
	assert.True(t, a.Or(b).Equal(BitsFromU8(U8Max())))
	assert.True(t, a.Xor(b).Equal(BitsFromU8(U8Max())))
}

func TestBits8RotateLeft(t *testing.T) {
	a := BitsFromU8(U8From64(0b10000001))
	got := a.RotateLeft(1)
	assert.True(t, got.Equal(BitsFromU8(U8From64(0b00000011))))
}

func TestBits8CountOnes(t *testing.T) {
	a := BitsFromU8(U8From64(0b10110001))
	assert.Equal(t, 4, a.CountOnes())
}
