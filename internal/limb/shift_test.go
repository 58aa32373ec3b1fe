package limb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShlShrRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		n := 1 + i%4
		x := randLimbs(n, r)
		k := uint(r.Intn(n * 64))

		shifted := make([]uint64, n)
		Shl(shifted, x, k)

		back := make([]uint64, n)
		Shr(back, shifted, k)

		// Shr(Shl(x, k), k) recovers only the bits that did not get
		// shifted out past the capacity; mask x the same way before
		// comparing.
		masked := make([]uint64, n)
		copy(masked, x)
		if k > 0 {
			Shl(masked, x, k)
			Shr(masked, masked, k)
		}
		assert.Equal(t, masked, back, "shr(shl(x,k),k) must equal the same masked x at iter=%d k=%d", i, k)
	}
}

func TestRotateLeftRightInverse(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 1000; i++ {
		n := 1 + i%4
		x := randLimbs(n, r)
		k := uint(r.Intn(n * 64))

		lo := make([]uint64, n)
		hi := make([]uint64, n)
		rotated := make([]uint64, n)
		RotL(rotated, x, lo, hi, k)

		back := make([]uint64, n)
		RotR(back, rotated, lo, hi, k)

		assert.Equal(t, x, back, "rotr(rotl(x,k),k) must equal x at iter=%d k=%d", i, k)
	}
}
