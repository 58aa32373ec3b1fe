package wuint

import (
	"math/big"

	"github.com/gowide/wuint/internal/limb"
)

// ReduceMod computes z = x mod m.
func ReduceMod(bits int, z, x, m []uint64) error {
	if limb.IsZero(m) {
		return errDivZero(bits)
	}
	limb.ModReduceInto(z, x, m)
	return nil
}

// AddMod computes (x+y) mod m without requiring x+y to fit in bits.
func AddMod(bits int, z, x, y, m []uint64) error {
	if limb.IsZero(m) {
		return errDivZero(bits)
	}
	n := len(z)
	wide := make([]uint64, n+1)
	xw := make([]uint64, n+1)
	yw := make([]uint64, n+1)
	copy(xw, x)
	copy(yw, y)
	limb.AddN(wide, xw, yw)
	mw := make([]uint64, n+1)
	copy(mw, m)
	limb.ModReduceInto(wide, wide, mw)
	copy(z, wide[:n])
	return nil
}

// MulMod computes (x*y) mod m, allocation-light via a 2n-limb scratch
// reduction rather than a math/big round trip.
func MulMod(bits int, z, x, y, m []uint64) error {
	if limb.IsZero(m) {
		return errDivZero(bits)
	}
	n := len(z)
	wide := make([]uint64, 2*n)
	limb.MulNxN(wide, x, y)
	limb.ModReduceWide(z, wide, m)
	return nil
}

// PowMod computes x^e mod m via left-to-right binary exponentiation,
// reducing at every squaring and multiply step.
func PowMod(bits int, z, x, e, m []uint64) error {
	if limb.IsZero(m) {
		return errDivZero(bits)
	}
	n := len(z)
	result := make([]uint64, n)
	result[0] = 1
	if limb.EffectiveLen(m) == 1 && m[0] == 1 {
		limb.SetZero(z)
		return nil
	}
	base := make([]uint64, n)
	limb.ModReduceInto(base, x, m)

	bl := limb.BitLen(e)
	for i := bl - 1; i >= 0; i-- {
		if err := MulMod(bits, result, result, result, m); err != nil {
			return err
		}
		if limb.Bit(e, i) {
			if err := MulMod(bits, result, result, base, m); err != nil {
				return err
			}
		}
	}
	copy(z, result)
	return nil
}

// PowModRedc computes x^e mod m the same way as PowMod, but performs
// the ladder entirely in Montgomery form when m is odd, converting in
// and out once instead of reducing after every step — the fast path
// ruint's Montgomery ladder takes internally.
func PowModRedc(bits int, z, x, e, m []uint64) error {
	if limb.IsZero(m) {
		return errDivZero(bits)
	}
	if m[0]&1 == 0 {
		return PowMod(bits, z, x, e, m)
	}
	n := len(z)
	inv := limb.MontgomeryInv(m[0])

	// R = 2^(64n) mod m, via R = ((2^(64n) mod m)) computed by
	// reducing a single set bit at position 64n.
	rVal := make([]uint64, n+1)
	limb.SetBit(rVal, 64*n, true)
	mPad := make([]uint64, n+1)
	copy(mPad, m)
	limb.ModReduceInto(rVal, rVal, mPad)
	rModM := rVal[:n]

	// R^2 mod m, needed to enter Montgomery form via mul_redc(x, R^2).
	r2wide := make([]uint64, 2*n)
	limb.MulNxN(r2wide, rModM, rModM)
	r2ModM := make([]uint64, n)
	limb.ModReduceWide(r2ModM, r2wide, m)

	xMont := make([]uint64, n)
	xReduced := make([]uint64, n)
	limb.ModReduceInto(xReduced, x, m)
	limb.MulRedc(xMont, xReduced, r2ModM, m, inv)

	resultMont := make([]uint64, n)
	copy(resultMont, rModM) // Montgomery form of 1 is R mod m

	tmp := make([]uint64, n)
	bl := limb.BitLen(e)
	for i := bl - 1; i >= 0; i-- {
		limb.MulRedc(tmp, resultMont, resultMont, m, inv)
		copy(resultMont, tmp)
		if limb.Bit(e, i) {
			limb.MulRedc(tmp, resultMont, xMont, m, inv)
			copy(resultMont, tmp)
		}
	}

	// Leave Montgomery form: mul_redc(resultMont, 1).
	one := make([]uint64, n)
	one[0] = 1
	limb.MulRedc(z, resultMont, one, m, inv)
	return nil
}

// InvMod computes the modular inverse of a mod m, failing with
// NotInvertible if gcd(a, m) != 1.
func InvMod(bits int, z, a, m []uint64) error {
	ok := limb.ModInverse(z, a, m)
	if !ok {
		return errNotInvertible(bits)
	}
	return nil
}

// GCD computes the greatest common divisor of x and y via binary GCD.
func GCD(z, x, y []uint64) {
	limb.GCD(z, x, y)
}

// LCM computes the least common multiple of x and y.
func LCM(bits int, z, x, y []uint64) error {
	n := len(z)
	g := make([]uint64, n)
	limb.GCD(g, x, y)
	if limb.IsZero(g) {
		limb.SetZero(z)
		return nil
	}
	q := make([]uint64, n)
	r := make([]uint64, n)
	limb.DivRem(q, r, x, g)
	return CheckedMul(bits, z, q, y)
}

// GCDExtended computes (g, s, t) such that g = gcd(x, y) = s*x + t*y,
// with s, t signed. This is the one operation whose natural
// implementation needs signed, possibly-wider-than-bits intermediate
// coefficients, so it is built on math/big rather than on the
// unsigned internal/limb primitives.
func GCDExtended(bits int, x, y []uint64) (g []uint64, s, t *big.Int) {
	bx := limbsToBigInt(x)
	by := limbsToBigInt(y)
	g0 := new(big.Int)
	s = new(big.Int)
	t = new(big.Int)
	g0.GCD(s, t, bx, by)

	n := len(x)
	g = make([]uint64, n)
	bigIntToLimbs(g, g0)
	return g, s, t
}

func limbsToBigInt(x []uint64) *big.Int {
	buf := make([]byte, len(x)*8)
	for i, v := range x {
		for j := 0; j < 8; j++ {
			buf[len(buf)-1-(i*8+j)] = byte(v >> uint(j*8))
		}
	}
	return new(big.Int).SetBytes(buf)
}

func bigIntToLimbs(z []uint64, v *big.Int) {
	buf := v.Bytes()
	for i, b := range buf {
		pos := len(buf) - 1 - i
		z[pos/8] |= uint64(b) << uint((pos%8)*8)
	}
}
