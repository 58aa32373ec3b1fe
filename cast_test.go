package wuint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUintRoundTrip(t *testing.T) {
	w, err := FromUint(64, uint32(4242))
	require.NoError(t, err)
	got, err := TryFromUint[uint32](w)
	require.NoError(t, err)
	assert.Equal(t, uint32(4242), got)
}

func TestFromUintWidensAcrossPrimitiveTypes(t *testing.T) {
	w8, err := FromUint(256, uint8(255))
	require.NoError(t, err)
	w16, err := FromUint(256, uint16(255))
	require.NoError(t, err)
	assert.Equal(t, w8.limbs, w16.limbs)
}

func TestTryFromUintRejectsOutOfRange(t *testing.T) {
	w, err := FromUint(64, uint64(1)<<9)
	require.NoError(t, err)
	_, err = TryFromUint[uint8](w)
	require.Error(t, err)
}

func TestTryFromUintExactWidthBoundary(t *testing.T) {
	w, err := FromUint(64, uint64(255))
	require.NoError(t, err)
	got, err := TryFromUint[uint8](w)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), got)
}
