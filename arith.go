package wuint

import "github.com/gowide/wuint/internal/limb"

// WrappingAdd returns (x+y) mod 2^bits.
func WrappingAdd(bits int, z, x, y []uint64) {
	limb.AddN(z, x, y)
	canonicalize(z, bits)
}

// OverflowingAdd returns (x+y) mod 2^bits and whether the true sum
// exceeds that range.
func OverflowingAdd(bits int, z, x, y []uint64) bool {
	carry := limb.AddN(z, x, y)
	overflowedTop := z[len(z)-1]&^TopMask(bits) != 0
	canonicalize(z, bits)
	return carry != 0 || overflowedTop
}

// CheckedAdd returns (x+y) and an error if it would overflow bits.
func CheckedAdd(bits int, z, x, y []uint64) error {
	if OverflowingAdd(bits, z, x, y) {
		return errOverflow(bits)
	}
	return nil
}

// SaturatingAdd clamps x+y to the maximum representable value.
func SaturatingAdd(bits int, z, x, y []uint64) {
	if OverflowingAdd(bits, z, x, y) {
		setMax(z, bits)
	}
}

// WrappingSub returns (x-y) mod 2^bits.
func WrappingSub(bits int, z, x, y []uint64) {
	limb.SubN(z, x, y)
	canonicalize(z, bits)
}

// OverflowingSub returns (x-y) mod 2^bits and whether x < y.
func OverflowingSub(bits int, z, x, y []uint64) bool {
	borrow := limb.SubN(z, x, y)
	canonicalize(z, bits)
	return borrow != 0
}

// CheckedSub returns (x-y) and an error if y > x.
func CheckedSub(bits int, z, x, y []uint64) error {
	if OverflowingSub(bits, z, x, y) {
		return errOverflow(bits)
	}
	return nil
}

// SaturatingSub clamps x-y to zero when y > x.
func SaturatingSub(bits int, z, x, y []uint64) {
	if OverflowingSub(bits, z, x, y) {
		limb.SetZero(z)
	}
}

// WrappingNeg returns (2^bits - x) mod 2^bits.
func WrappingNeg(bits int, z, x []uint64) {
	zero := make([]uint64, len(z))
	WrappingSub(bits, z, zero, x)
}

// WrappingMul returns (x*y) mod 2^bits.
func WrappingMul(bits int, z, x, y []uint64) {
	n := len(z)
	wide := make([]uint64, 2*n)
	limb.MulNxN(wide, x, y)
	copy(z, wide[:n])
	canonicalize(z, bits)
}

// OverflowingMul returns (x*y) mod 2^bits and whether the true
// product exceeds that range.
func OverflowingMul(bits int, z, x, y []uint64) bool {
	n := len(z)
	wide := make([]uint64, 2*n)
	limb.MulNxN(wide, x, y)
	copy(z, wide[:n])
	highNonZero := !limb.IsZero(wide[n:])
	topBitsSet := z[n-1]&^TopMask(bits) != 0
	canonicalize(z, bits)
	return highNonZero || topBitsSet
}

// CheckedMul returns (x*y) and an error if it would overflow bits.
func CheckedMul(bits int, z, x, y []uint64) error {
	if OverflowingMul(bits, z, x, y) {
		return errOverflow(bits)
	}
	return nil
}

// SaturatingMul clamps x*y to the maximum representable value.
func SaturatingMul(bits int, z, x, y []uint64) {
	if OverflowingMul(bits, z, x, y) {
		setMax(z, bits)
	}
}

// setMax fills z with the all-ones value masked to bits.
func setMax(z []uint64, bits int) {
	for i := range z {
		z[i] = ^uint64(0)
	}
	canonicalize(z, bits)
}

// CheckedDiv computes q = x/y, failing with DivisionByZero if y is zero.
func CheckedDiv(bits int, q, x, y []uint64) error {
	if limb.IsZero(y) {
		return errDivZero(bits)
	}
	r := make([]uint64, len(q))
	limb.DivRem(q, r, x, y)
	return nil
}

// CheckedRem computes r = x%y, failing with DivisionByZero if y is zero.
func CheckedRem(bits int, r, x, y []uint64) error {
	if limb.IsZero(y) {
		return errDivZero(bits)
	}
	q := make([]uint64, len(r))
	limb.DivRem(q, r, x, y)
	return nil
}

// DivRem computes q, r such that x = q*y + r, 0 <= r < y. It panics on
// division by zero, matching the plain operator's trap contract.
func DivRem(bits int, q, r, x, y []uint64) {
	if limb.IsZero(y) {
		panic("wuint: division by zero")
	}
	limb.DivRem(q, r, x, y)
}

// DivCeil computes ceil(x/y).
func DivCeil(bits int, z, x, y []uint64) error {
	if limb.IsZero(y) {
		return errDivZero(bits)
	}
	n := len(z)
	q := make([]uint64, n)
	r := make([]uint64, n)
	limb.DivRem(q, r, x, y)
	copy(z, q)
	if !limb.IsZero(r) {
		limb.Inc(z, z)
		canonicalize(z, bits)
	}
	return nil
}

// WrappingPow computes base^exp mod 2^bits via left-to-right binary
// exponentiation over the bits of exp.
func WrappingPow(bits int, z, base, exp []uint64) {
	n := len(z)
	result := make([]uint64, n)
	result[0] = 1
	b := make([]uint64, n)
	copy(b, base)

	bl := limb.BitLen(exp)
	for i := bl - 1; i >= 0; i-- {
		WrappingMul(bits, result, result, result)
		if limb.Bit(exp, i) {
			WrappingMul(bits, result, result, b)
		}
	}
	copy(z, result)
}

// CheckedPow computes base^exp, failing if any intermediate step
// overflows bits.
func CheckedPow(bits int, z, base, exp []uint64) error {
	n := len(z)
	result := make([]uint64, n)
	result[0] = 1
	b := make([]uint64, n)
	copy(b, base)
	overflowed := false

	bl := limb.BitLen(exp)
	for i := bl - 1; i >= 0; i-- {
		if OverflowingMul(bits, result, result, result) {
			overflowed = true
		}
		if limb.Bit(exp, i) {
			if OverflowingMul(bits, result, result, b) {
				overflowed = true
			}
		}
	}
	copy(z, result)
	if overflowed {
		return errOverflow(bits)
	}
	return nil
}

// SaturatingPow computes base^exp, clamping to the maximum
// representable value on overflow.
func SaturatingPow(bits int, z, base, exp []uint64) {
	if err := CheckedPow(bits, z, base, exp); err != nil {
		setMax(z, bits)
	}
}
