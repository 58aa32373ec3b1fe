// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U8 is the ring of integers modulo 2^8.
type U8 struct {
	limbs [1]uint64
}

var (
	zeroU8 U8
	maxU8  = U8{limbs: [1]uint64{0xff}}
)

func U8Zero() U8 { return zeroU8 }
func U8Max() U8  { return maxU8 }

func U8From64(v uint64) U8 { return U8{limbs: [1]uint64{v & 0xff}} }
func U8From8(v uint8) U8   { return U8{limbs: [1]uint64{uint64(v)}} }

// U8FromLimbs constructs a U8 from an exact 1-limb slice, rejecting any
// bit set above position 7.
func U8FromLimbs(limbs []uint64) (U8, error) {
	if len(limbs) != 1 {
		return U8{}, errLength(8)
	}
	var z U8
	copy(z.limbs[:], limbs)
	if !isCanonical(z.limbs[:], 8) {
		return U8{}, errOverflow(8)
	}
	return z, nil
}

func U8FromBESlice(b []byte) (U8, error) {
	var z U8
	if err := TryFromBESlice(8, z.limbs[:], b); err != nil {
		return U8{}, err
	}
	return z, nil
}

func U8FromLESlice(b []byte) (U8, error) {
	var z U8
	if err := TryFromLESlice(8, z.limbs[:], b); err != nil {
		return U8{}, err
	}
	return z, nil
}

func U8FromBEBytes(b [1]byte) U8 {
	var z U8
	FromBEBytes(8, z.limbs[:], b[:])
	return z
}

func U8FromLEBytes(b [1]byte) U8 {
	var z U8
	FromLEBytes(8, z.limbs[:], b[:])
	return z
}

func U8FromStrRadix(s string, radix int) (U8, error) {
	var z U8
	if err := FromStrRadix(8, z.limbs[:], s, radix); err != nil {
		return U8{}, err
	}
	return z, nil
}

func U8FromStr(s string) (U8, error) {
	var z U8
	if err := FromStr(8, z.limbs[:], s); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) IsZero() bool      { return IsZero(x.limbs[:]) }
func (x U8) Bit(i int) bool    { return Bit(x.limbs[:], i) }
func (x U8) Cmp(y U8) int      { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U8) Equal(y U8) bool   { return x.limbs == y.limbs }
func (x U8) Uint8() uint8      { return uint8(x.limbs[0]) }
func (x U8) String() string    { return FormatDecimal(8, x.limbs[:]) }

func (x U8) Format(f fmt.State, c rune) {
	formatVerb(f, c, 8, x.limbs[:])
}

func (x U8) WrappingAdd(y U8) U8 {
	var z U8
	WrappingAdd(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) CheckedAdd(y U8) (U8, error) {
	var z U8
	if err := CheckedAdd(8, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) OverflowingAdd(y U8) (U8, bool) {
	var z U8
	ovf := OverflowingAdd(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U8) SaturatingAdd(y U8) U8 {
	var z U8
	SaturatingAdd(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Add(y U8) U8 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U8 addition overflow")
	}
	return z
}

func (x U8) WrappingSub(y U8) U8 {
	var z U8
	WrappingSub(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) CheckedSub(y U8) (U8, error) {
	var z U8
	if err := CheckedSub(8, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) OverflowingSub(y U8) (U8, bool) {
	var z U8
	ovf := OverflowingSub(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U8) SaturatingSub(y U8) U8 {
	var z U8
	SaturatingSub(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Sub(y U8) U8 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U8 subtraction overflow")
	}
	return z
}

func (x U8) WrappingNeg() U8 {
	var z U8
	WrappingNeg(8, z.limbs[:], x.limbs[:])
	return z
}

func (x U8) WrappingMul(y U8) U8 {
	var z U8
	WrappingMul(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) CheckedMul(y U8) (U8, error) {
	var z U8
	if err := CheckedMul(8, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) OverflowingMul(y U8) (U8, bool) {
	var z U8
	ovf := OverflowingMul(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U8) SaturatingMul(y U8) U8 {
	var z U8
	SaturatingMul(8, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Mul(y U8) U8 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U8 multiplication overflow")
	}
	return z
}

func (x U8) DivRem(y U8) (q, r U8) {
	DivRem(8, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U8) CheckedDiv(y U8) (U8, error) {
	var q U8
	if err := CheckedDiv(8, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return q, nil
}

func (x U8) CheckedRem(y U8) (U8, error) {
	var r U8
	if err := CheckedRem(8, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return r, nil
}

func (x U8) DivCeil(y U8) (U8, error) {
	var z U8
	if err := DivCeil(8, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) WrappingPow(exp U8) U8 {
	var z U8
	WrappingPow(8, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U8) CheckedPow(exp U8) (U8, error) {
	var z U8
	if err := CheckedPow(8, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) SaturatingPow(exp U8) U8 {
	var z U8
	SaturatingPow(8, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U8) And(y U8) U8 {
	var z U8
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Or(y U8) U8 {
	var z U8
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Xor(y U8) U8 {
	var z U8
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) Not() U8 {
	var z U8
	Not(8, z.limbs[:], x.limbs[:])
	return z
}

func (x U8) Lsh(k uint) U8 {
	var z U8
	Shl(8, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U8) Rsh(k uint) U8 {
	var z U8
	Shr(8, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U8) RotateLeft(k uint) U8 {
	var z U8
	RotateLeft(8, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U8) RotateRight(k uint) U8 {
	var z U8
	RotateRight(8, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U8) LeadingZeros() int  { return LeadingZeros(8, x.limbs[:]) }
func (x U8) TrailingZeros() int { return TrailingZeros(8, x.limbs[:]) }
func (x U8) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U8) BitLen() int        { return BitLen(8, x.limbs[:]) }
func (x U8) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U8) ReverseBits() U8 {
	var z U8
	ReverseBits(8, z.limbs[:], x.limbs[:])
	return z
}

func (x U8) ToBEBytes() [1]byte {
	var out [1]byte
	CopyBETo(8, out[:], x.limbs[:])
	return out
}

func (x U8) ToLEBytes() [1]byte {
	var out [1]byte
	CopyLETo(8, out[:], x.limbs[:])
	return out
}

func (x U8) ReduceMod(m U8) (U8, error) {
	var z U8
	if err := ReduceMod(8, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) MulMod(y, m U8) (U8, error) {
	var z U8
	if err := MulMod(8, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) PowMod(e, m U8) (U8, error) {
	var z U8
	if err := PowMod(8, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) InvMod(m U8) (U8, error) {
	var z U8
	if err := InvMod(8, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U8{}, err
	}
	return z, nil
}

func (x U8) GCD(y U8) U8 {
	var z U8
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U8) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
