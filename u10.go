// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U10 is the ring of integers modulo 2^10.
type U10 struct {
	limbs [1]uint64
}

var (
	zeroU10 U10
	maxU10  = U10{limbs: [1]uint64{0x3ff}}
)

func U10Zero() U10 { return zeroU10 }
func U10Max() U10  { return maxU10 }

func U10From64(v uint64) U10 {
	var z U10
	z.limbs[0] = v
	canonicalize(z.limbs[:], 10)
	return z
}

// U10FromLimbs constructs a U10 from an exact 1-limb slice, rejecting
// any bit set above position 9.
func U10FromLimbs(limbs []uint64) (U10, error) {
	if len(limbs) != 1 {
		return U10{}, errLength(10)
	}
	var z U10
	copy(z.limbs[:], limbs)
	if !isCanonical(z.limbs[:], 10) {
		return U10{}, errOverflow(10)
	}
	return z, nil
}

func U10FromBESlice(b []byte) (U10, error) {
	var z U10
	if err := TryFromBESlice(10, z.limbs[:], b); err != nil {
		return U10{}, err
	}
	return z, nil
}

func U10FromLESlice(b []byte) (U10, error) {
	var z U10
	if err := TryFromLESlice(10, z.limbs[:], b); err != nil {
		return U10{}, err
	}
	return z, nil
}

func U10FromBEBytes(b [2]byte) (U10, error) {
	if b[0]&^0x03 != 0 {
		return U10{}, errOverflow(10)
	}
	var z U10
	FromBEBytes(10, z.limbs[:], b[:])
	return z, nil
}

func U10FromLEBytes(b [2]byte) (U10, error) {
	if b[1]&^0x03 != 0 {
		return U10{}, errOverflow(10)
	}
	var z U10
	FromLEBytes(10, z.limbs[:], b[:])
	return z, nil
}

func U10FromStrRadix(s string, radix int) (U10, error) {
	var z U10
	if err := FromStrRadix(10, z.limbs[:], s, radix); err != nil {
		return U10{}, err
	}
	return z, nil
}

func U10FromStr(s string) (U10, error) {
	var z U10
	if err := FromStr(10, z.limbs[:], s); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) IsZero() bool    { return IsZero(x.limbs[:]) }
func (x U10) Bit(i int) bool  { return Bit(x.limbs[:], i) }
func (x U10) Cmp(y U10) int   { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U10) Equal(y U10) bool { return x.limbs == y.limbs }
func (x U10) String() string  { return FormatDecimal(10, x.limbs[:]) }

func (x U10) Format(f fmt.State, c rune) {
	formatVerb(f, c, 10, x.limbs[:])
}

func (x U10) WrappingAdd(y U10) U10 {
	var z U10
	WrappingAdd(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) CheckedAdd(y U10) (U10, error) {
	var z U10
	if err := CheckedAdd(10, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) OverflowingAdd(y U10) (U10, bool) {
	var z U10
	ovf := OverflowingAdd(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U10) SaturatingAdd(y U10) U10 {
	var z U10
	SaturatingAdd(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Add(y U10) U10 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U10 addition overflow")
	}
	return z
}

func (x U10) WrappingSub(y U10) U10 {
	var z U10
	WrappingSub(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) CheckedSub(y U10) (U10, error) {
	var z U10
	if err := CheckedSub(10, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) OverflowingSub(y U10) (U10, bool) {
	var z U10
	ovf := OverflowingSub(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U10) SaturatingSub(y U10) U10 {
	var z U10
	SaturatingSub(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Sub(y U10) U10 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U10 subtraction overflow")
	}
	return z
}

func (x U10) WrappingNeg() U10 {
	var z U10
	WrappingNeg(10, z.limbs[:], x.limbs[:])
	return z
}

func (x U10) WrappingMul(y U10) U10 {
	var z U10
	WrappingMul(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) CheckedMul(y U10) (U10, error) {
	var z U10
	if err := CheckedMul(10, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) OverflowingMul(y U10) (U10, bool) {
	var z U10
	ovf := OverflowingMul(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U10) SaturatingMul(y U10) U10 {
	var z U10
	SaturatingMul(10, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Mul(y U10) U10 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U10 multiplication overflow")
	}
	return z
}

func (x U10) DivRem(y U10) (q, r U10) {
	DivRem(10, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U10) CheckedDiv(y U10) (U10, error) {
	var q U10
	if err := CheckedDiv(10, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return q, nil
}

func (x U10) CheckedRem(y U10) (U10, error) {
	var r U10
	if err := CheckedRem(10, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return r, nil
}

func (x U10) DivCeil(y U10) (U10, error) {
	var z U10
	if err := DivCeil(10, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) WrappingPow(exp U10) U10 {
	var z U10
	WrappingPow(10, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U10) CheckedPow(exp U10) (U10, error) {
	var z U10
	if err := CheckedPow(10, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) SaturatingPow(exp U10) U10 {
	var z U10
	SaturatingPow(10, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U10) And(y U10) U10 {
	var z U10
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Or(y U10) U10 {
	var z U10
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Xor(y U10) U10 {
	var z U10
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) Not() U10 {
	var z U10
	Not(10, z.limbs[:], x.limbs[:])
	return z
}

func (x U10) Lsh(k uint) U10 {
	var z U10
	Shl(10, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U10) Rsh(k uint) U10 {
	var z U10
	Shr(10, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U10) RotateLeft(k uint) U10 {
	var z U10
	RotateLeft(10, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U10) RotateRight(k uint) U10 {
	var z U10
	RotateRight(10, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U10) LeadingZeros() int  { return LeadingZeros(10, x.limbs[:]) }
func (x U10) TrailingZeros() int { return TrailingZeros(10, x.limbs[:]) }
func (x U10) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U10) BitLen() int        { return BitLen(10, x.limbs[:]) }
func (x U10) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U10) ReverseBits() U10 {
	var z U10
	ReverseBits(10, z.limbs[:], x.limbs[:])
	return z
}

func (x U10) ToBEBytes() [2]byte {
	var out [2]byte
	CopyBETo(10, out[:], x.limbs[:])
	return out
}

func (x U10) ToLEBytes() [2]byte {
	var out [2]byte
	CopyLETo(10, out[:], x.limbs[:])
	return out
}

func (x U10) ReduceMod(m U10) (U10, error) {
	var z U10
	if err := ReduceMod(10, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) MulMod(y, m U10) (U10, error) {
	var z U10
	if err := MulMod(10, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) PowMod(e, m U10) (U10, error) {
	var z U10
	if err := PowMod(10, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) InvMod(m U10) (U10, error) {
	var z U10
	if err := InvMod(10, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U10{}, err
	}
	return z, nil
}

func (x U10) GCD(y U10) U10 {
	var z U10
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U10) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
