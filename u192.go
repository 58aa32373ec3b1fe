// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U192 is the ring of integers modulo 2^192.
type U192 struct {
	limbs [3]uint64
}

var (
	zeroU192 U192
	maxU192  = U192{limbs: [3]uint64{^uint64(0), ^uint64(0), ^uint64(0)}}
)

func U192Zero() U192 { return zeroU192 }
func U192Max() U192  { return maxU192 }

func U192From64(v uint64) U192 { return U192{limbs: [3]uint64{v, 0, 0}} }

func U192From128(in U128) U192 {
	var z U192
	copy(z.limbs[:2], in.limbs[:])
	return z
}

func U192FromLimbs(limbs []uint64) (U192, error) {
	if len(limbs) != 3 {
		return U192{}, errLength(192)
	}
	var z U192
	copy(z.limbs[:], limbs)
	return z, nil
}

func U192FromBESlice(b []byte) (U192, error) {
	var z U192
	if err := TryFromBESlice(192, z.limbs[:], b); err != nil {
		return U192{}, err
	}
	return z, nil
}

func U192FromLESlice(b []byte) (U192, error) {
	var z U192
	if err := TryFromLESlice(192, z.limbs[:], b); err != nil {
		return U192{}, err
	}
	return z, nil
}

func U192FromBEBytes(b [24]byte) U192 {
	var z U192
	FromBEBytes(192, z.limbs[:], b[:])
	return z
}

func U192FromLEBytes(b [24]byte) U192 {
	var z U192
	FromLEBytes(192, z.limbs[:], b[:])
	return z
}

func U192FromStrRadix(s string, radix int) (U192, error) {
	var z U192
	if err := FromStrRadix(192, z.limbs[:], s, radix); err != nil {
		return U192{}, err
	}
	return z, nil
}

func U192FromStr(s string) (U192, error) {
	var z U192
	if err := FromStr(192, z.limbs[:], s); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) IsZero() bool      { return IsZero(x.limbs[:]) }
func (x U192) Bit(i int) bool    { return Bit(x.limbs[:], i) }
func (x U192) Cmp(y U192) int    { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U192) Equal(y U192) bool { return x.limbs == y.limbs }
func (x U192) String() string    { return FormatDecimal(192, x.limbs[:]) }

func (x U192) Format(f fmt.State, c rune) {
	formatVerb(f, c, 192, x.limbs[:])
}

func (x U192) WrappingAdd(y U192) U192 {
	var z U192
	WrappingAdd(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) CheckedAdd(y U192) (U192, error) {
	var z U192
	if err := CheckedAdd(192, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) OverflowingAdd(y U192) (U192, bool) {
	var z U192
	ovf := OverflowingAdd(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U192) SaturatingAdd(y U192) U192 {
	var z U192
	SaturatingAdd(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Add(y U192) U192 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U192 addition overflow")
	}
	return z
}

func (x U192) WrappingSub(y U192) U192 {
	var z U192
	WrappingSub(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) CheckedSub(y U192) (U192, error) {
	var z U192
	if err := CheckedSub(192, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) OverflowingSub(y U192) (U192, bool) {
	var z U192
	ovf := OverflowingSub(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U192) SaturatingSub(y U192) U192 {
	var z U192
	SaturatingSub(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Sub(y U192) U192 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U192 subtraction overflow")
	}
	return z
}

func (x U192) WrappingNeg() U192 {
	var z U192
	WrappingNeg(192, z.limbs[:], x.limbs[:])
	return z
}

func (x U192) WrappingMul(y U192) U192 {
	var z U192
	WrappingMul(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) CheckedMul(y U192) (U192, error) {
	var z U192
	if err := CheckedMul(192, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) OverflowingMul(y U192) (U192, bool) {
	var z U192
	ovf := OverflowingMul(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U192) SaturatingMul(y U192) U192 {
	var z U192
	SaturatingMul(192, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Mul(y U192) U192 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U192 multiplication overflow")
	}
	return z
}

func (x U192) DivRem(y U192) (q, r U192) {
	DivRem(192, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U192) CheckedDiv(y U192) (U192, error) {
	var q U192
	if err := CheckedDiv(192, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return q, nil
}

func (x U192) CheckedRem(y U192) (U192, error) {
	var r U192
	if err := CheckedRem(192, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return r, nil
}

func (x U192) DivCeil(y U192) (U192, error) {
	var z U192
	if err := DivCeil(192, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) WrappingPow(exp U192) U192 {
	var z U192
	WrappingPow(192, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U192) CheckedPow(exp U192) (U192, error) {
	var z U192
	if err := CheckedPow(192, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) SaturatingPow(exp U192) U192 {
	var z U192
	SaturatingPow(192, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U192) And(y U192) U192 {
	var z U192
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Or(y U192) U192 {
	var z U192
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Xor(y U192) U192 {
	var z U192
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) Not() U192 {
	var z U192
	Not(192, z.limbs[:], x.limbs[:])
	return z
}

func (x U192) Lsh(k uint) U192 {
	var z U192
	Shl(192, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U192) Rsh(k uint) U192 {
	var z U192
	Shr(192, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U192) RotateLeft(k uint) U192 {
	var z U192
	RotateLeft(192, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U192) RotateRight(k uint) U192 {
	var z U192
	RotateRight(192, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U192) LeadingZeros() int  { return LeadingZeros(192, x.limbs[:]) }
func (x U192) TrailingZeros() int { return TrailingZeros(192, x.limbs[:]) }
func (x U192) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U192) BitLen() int        { return BitLen(192, x.limbs[:]) }
func (x U192) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U192) ReverseBits() U192 {
	var z U192
	ReverseBits(192, z.limbs[:], x.limbs[:])
	return z
}

func (x U192) ToBEBytes() [24]byte {
	var out [24]byte
	CopyBETo(192, out[:], x.limbs[:])
	return out
}

func (x U192) ToLEBytes() [24]byte {
	var out [24]byte
	CopyLETo(192, out[:], x.limbs[:])
	return out
}

func (x U192) ReduceMod(m U192) (U192, error) {
	var z U192
	if err := ReduceMod(192, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) MulMod(y, m U192) (U192, error) {
	var z U192
	if err := MulMod(192, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) PowMod(e, m U192) (U192, error) {
	var z U192
	if err := PowMod(192, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) InvMod(m U192) (U192, error) {
	var z U192
	if err := InvMod(192, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U192{}, err
	}
	return z, nil
}

func (x U192) GCD(y U192) U192 {
	var z U192
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U192) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
