package limb

import "math/bits"

// MulNxN computes the full product z = x*y, where len(z) == len(x)+len(y).
// z must not alias x or y. This is schoolbook long multiplication; it is
// the workhorse behind every fixed-width Mul.
func MulNxN(z, x, y []uint64) {
	for i := range z {
		z[i] = 0
	}
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			lo, c0 := bits.Add64(lo, z[i+j], 0)
			lo, c1 := bits.Add64(lo, carry, 0)
			z[i+j] = lo
			carry = hi + c0 + c1
		}
		z[i+len(y)] += carry
	}
}

// MulAddWordTo computes z += x*m (x and z same length, m a single word)
// and returns the carry out of the top limb. MulWord uses it for
// scalar multiply-small; MulNxN runs its own inner loop.
func MulAddWordTo(z, x []uint64, m uint64) uint64 {
	var carry uint64
	for i, xi := range x {
		hi, lo := bits.Mul64(xi, m)
		lo, c0 := bits.Add64(lo, z[i], 0)
		lo, c1 := bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c0 + c1
	}
	return carry
}

// MulWord computes z = x*m for a single-word scalar m (x and z same
// length) and returns the carry out of the top limb.
func MulWord(z, x []uint64, m uint64) uint64 {
	SetZero(z)
	return MulAddWordTo(z, x, m)
}

// SubMulWord computes z -= x*m (same length, m a single word) and
// returns the borrow out of the top limb, used by Knuth division's
// multiply-and-subtract step.
func SubMulWord(z, x []uint64, m uint64) uint64 {
	var borrow uint64
	for i, xi := range x {
		hi, lo := bits.Mul64(xi, m)
		sub, b0 := bits.Sub64(z[i], lo, 0)
		sub, b1 := bits.Sub64(sub, borrow, 0)
		z[i] = sub
		borrow = hi + b0 + b1
	}
	return borrow
}
