// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U128 is the ring of integers modulo 2^128.
type U128 struct {
	limbs [2]uint64
}

var (
	zeroU128 U128
	maxU128  = U128{limbs: [2]uint64{^uint64(0), ^uint64(0)}}
)

func U128Zero() U128 { return zeroU128 }
func U128Max() U128  { return maxU128 }

func U128FromRaw(hi, lo uint64) U128 { return U128{limbs: [2]uint64{lo, hi}} }
func U128From64(v uint64) U128       { return U128{limbs: [2]uint64{v, 0}} }
func U128From32(v uint32) U128       { return U128From64(uint64(v)) }
func U128From16(v uint16) U128       { return U128From64(uint64(v)) }
func U128From8(v uint8) U128         { return U128From64(uint64(v)) }

// U128FromLimbs constructs a U128 from an exact 2-limb slice, failing
// if any bit above 127 is set (there are none at this width, so this
// is total, but the fallible form is kept for symmetry with the wider
// menu types).
func U128FromLimbs(limbs []uint64) (U128, error) {
	if len(limbs) != 2 {
		return U128{}, errLength(128)
	}
	var z U128
	copy(z.limbs[:], limbs)
	return z, nil
}

// U128FromBESlice decodes a big-endian byte slice, zero-padding short
// input and rejecting excess non-zero high bytes.
func U128FromBESlice(b []byte) (U128, error) {
	var z U128
	if err := TryFromBESlice(128, z.limbs[:], b); err != nil {
		return U128{}, err
	}
	return z, nil
}

// U128FromLESlice decodes a little-endian byte slice the same way.
func U128FromLESlice(b []byte) (U128, error) {
	var z U128
	if err := TryFromLESlice(128, z.limbs[:], b); err != nil {
		return U128{}, err
	}
	return z, nil
}

// U128FromBEBytes decodes the canonical 16-byte big-endian array.
func U128FromBEBytes(b [16]byte) U128 {
	var z U128
	FromBEBytes(128, z.limbs[:], b[:])
	return z
}

// U128FromLEBytes decodes the canonical 16-byte little-endian array.
func U128FromLEBytes(b [16]byte) U128 {
	var z U128
	FromLEBytes(128, z.limbs[:], b[:])
	return z
}

// U128FromStrRadix parses s in the given radix.
func U128FromStrRadix(s string, radix int) (U128, error) {
	var z U128
	if err := FromStrRadix(128, z.limbs[:], s, radix); err != nil {
		return U128{}, err
	}
	return z, nil
}

// U128FromStr parses s, dispatching on a 0x/0o/0b prefix.
func U128FromStr(s string) (U128, error) {
	var z U128
	if err := FromStr(128, z.limbs[:], s); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) Raw() (hi, lo uint64) { return x.limbs[1], x.limbs[0] }
func (x U128) IsZero() bool         { return IsZero(x.limbs[:]) }
func (x U128) Bit(i int) bool       { return Bit(x.limbs[:], i) }
func (x U128) Cmp(y U128) int       { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U128) Equal(y U128) bool    { return x.limbs == y.limbs }

func (x U128) String() string { return FormatDecimal(128, x.limbs[:]) }

func (x U128) Format(f fmt.State, c rune) {
	formatVerb(f, c, 128, x.limbs[:])
}

// Arithmetic: wrapping, checked, overflowing, saturating, plain.

func (x U128) WrappingAdd(y U128) U128 {
	var z U128
	WrappingAdd(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) CheckedAdd(y U128) (U128, error) {
	var z U128
	if err := CheckedAdd(128, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) OverflowingAdd(y U128) (U128, bool) {
	var z U128
	ovf := OverflowingAdd(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U128) SaturatingAdd(y U128) U128 {
	var z U128
	SaturatingAdd(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Add(y U128) U128 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U128 addition overflow")
	}
	return z
}

func (x U128) WrappingSub(y U128) U128 {
	var z U128
	WrappingSub(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) CheckedSub(y U128) (U128, error) {
	var z U128
	if err := CheckedSub(128, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) OverflowingSub(y U128) (U128, bool) {
	var z U128
	ovf := OverflowingSub(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U128) SaturatingSub(y U128) U128 {
	var z U128
	SaturatingSub(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Sub(y U128) U128 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U128 subtraction overflow")
	}
	return z
}

func (x U128) WrappingNeg() U128 {
	var z U128
	WrappingNeg(128, z.limbs[:], x.limbs[:])
	return z
}

func (x U128) WrappingMul(y U128) U128 {
	var z U128
	WrappingMul(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) CheckedMul(y U128) (U128, error) {
	var z U128
	if err := CheckedMul(128, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) OverflowingMul(y U128) (U128, bool) {
	var z U128
	ovf := OverflowingMul(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U128) SaturatingMul(y U128) U128 {
	var z U128
	SaturatingMul(128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Mul(y U128) U128 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U128 multiplication overflow")
	}
	return z
}

func (x U128) DivRem(y U128) (q, r U128) {
	DivRem(128, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U128) CheckedDiv(y U128) (U128, error) {
	var q U128
	if err := CheckedDiv(128, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return q, nil
}

func (x U128) CheckedRem(y U128) (U128, error) {
	var r U128
	if err := CheckedRem(128, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return r, nil
}

func (x U128) DivCeil(y U128) (U128, error) {
	var z U128
	if err := DivCeil(128, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) WrappingPow(exp U128) U128 {
	var z U128
	WrappingPow(128, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U128) CheckedPow(exp U128) (U128, error) {
	var z U128
	if err := CheckedPow(128, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) SaturatingPow(exp U128) U128 {
	var z U128
	SaturatingPow(128, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

// Bitwise, shift, rotate.

func (x U128) And(y U128) U128 {
	var z U128
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Or(y U128) U128 {
	var z U128
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Xor(y U128) U128 {
	var z U128
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U128) Not() U128 {
	var z U128
	Not(128, z.limbs[:], x.limbs[:])
	return z
}

func (x U128) Lsh(k uint) U128 {
	var z U128
	Shl(128, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U128) Rsh(k uint) U128 {
	var z U128
	Shr(128, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U128) RotateLeft(k uint) U128 {
	var z U128
	RotateLeft(128, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U128) RotateRight(k uint) U128 {
	var z U128
	RotateRight(128, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U128) LeadingZeros() int  { return LeadingZeros(128, x.limbs[:]) }
func (x U128) TrailingZeros() int { return TrailingZeros(128, x.limbs[:]) }
func (x U128) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U128) BitLen() int        { return BitLen(128, x.limbs[:]) }
func (x U128) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U128) ReverseBits() U128 {
	var z U128
	ReverseBits(128, z.limbs[:], x.limbs[:])
	return z
}

// Byte conversions.

func (x U128) ToBEBytes() [16]byte {
	var out [16]byte
	CopyBETo(128, out[:], x.limbs[:])
	return out
}

func (x U128) ToLEBytes() [16]byte {
	var out [16]byte
	CopyLETo(128, out[:], x.limbs[:])
	return out
}

// Modular arithmetic.

func (x U128) ReduceMod(m U128) (U128, error) {
	var z U128
	if err := ReduceMod(128, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) MulMod(y, m U128) (U128, error) {
	var z U128
	if err := MulMod(128, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) PowMod(e, m U128) (U128, error) {
	var z U128
	if err := PowMod(128, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) InvMod(m U128) (U128, error) {
	var z U128
	if err := InvMod(128, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U128{}, err
	}
	return z, nil
}

func (x U128) GCD(y U128) U128 {
	var z U128
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

// AsBigInt bridges to math/big for interop with code that already
// speaks big.Int, the same bridge go-num itself offers.
func (x U128) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
