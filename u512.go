// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U512 is the ring of integers modulo 2^512.
type U512 struct {
	limbs [8]uint64
}

var (
	zeroU512 U512
	maxU512  = U512{limbs: [8]uint64{
		^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
		^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
	}}
)

func U512Zero() U512 { return zeroU512 }
func U512Max() U512  { return maxU512 }

func U512From64(v uint64) U512 {
	var z U512
	z.limbs[0] = v
	return z
}

func U512From256(in U256) U512 {
	var z U512
	copy(z.limbs[:4], in.limbs[:])
	return z
}

func U512FromLimbs(limbs []uint64) (U512, error) {
	if len(limbs) != 8 {
		return U512{}, errLength(512)
	}
	var z U512
	copy(z.limbs[:], limbs)
	return z, nil
}

func U512FromBESlice(b []byte) (U512, error) {
	var z U512
	if err := TryFromBESlice(512, z.limbs[:], b); err != nil {
		return U512{}, err
	}
	return z, nil
}

func U512FromLESlice(b []byte) (U512, error) {
	var z U512
	if err := TryFromLESlice(512, z.limbs[:], b); err != nil {
		return U512{}, err
	}
	return z, nil
}

func U512FromBEBytes(b [64]byte) U512 {
	var z U512
	FromBEBytes(512, z.limbs[:], b[:])
	return z
}

func U512FromLEBytes(b [64]byte) U512 {
	var z U512
	FromLEBytes(512, z.limbs[:], b[:])
	return z
}

func U512FromStrRadix(s string, radix int) (U512, error) {
	var z U512
	if err := FromStrRadix(512, z.limbs[:], s, radix); err != nil {
		return U512{}, err
	}
	return z, nil
}

func U512FromStr(s string) (U512, error) {
	var z U512
	if err := FromStr(512, z.limbs[:], s); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) IsZero() bool      { return IsZero(x.limbs[:]) }
func (x U512) Bit(i int) bool    { return Bit(x.limbs[:], i) }
func (x U512) Cmp(y U512) int    { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U512) Equal(y U512) bool { return x.limbs == y.limbs }
func (x U512) String() string    { return FormatDecimal(512, x.limbs[:]) }

func (x U512) Format(f fmt.State, c rune) {
	formatVerb(f, c, 512, x.limbs[:])
}

func (x U512) WrappingAdd(y U512) U512 {
	var z U512
	WrappingAdd(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) CheckedAdd(y U512) (U512, error) {
	var z U512
	if err := CheckedAdd(512, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) OverflowingAdd(y U512) (U512, bool) {
	var z U512
	ovf := OverflowingAdd(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U512) SaturatingAdd(y U512) U512 {
	var z U512
	SaturatingAdd(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Add(y U512) U512 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U512 addition overflow")
	}
	return z
}

func (x U512) WrappingSub(y U512) U512 {
	var z U512
	WrappingSub(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) CheckedSub(y U512) (U512, error) {
	var z U512
	if err := CheckedSub(512, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) OverflowingSub(y U512) (U512, bool) {
	var z U512
	ovf := OverflowingSub(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U512) SaturatingSub(y U512) U512 {
	var z U512
	SaturatingSub(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Sub(y U512) U512 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U512 subtraction overflow")
	}
	return z
}

func (x U512) WrappingNeg() U512 {
	var z U512
	WrappingNeg(512, z.limbs[:], x.limbs[:])
	return z
}

func (x U512) WrappingMul(y U512) U512 {
	var z U512
	WrappingMul(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) CheckedMul(y U512) (U512, error) {
	var z U512
	if err := CheckedMul(512, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) OverflowingMul(y U512) (U512, bool) {
	var z U512
	ovf := OverflowingMul(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U512) SaturatingMul(y U512) U512 {
	var z U512
	SaturatingMul(512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Mul(y U512) U512 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U512 multiplication overflow")
	}
	return z
}

func (x U512) DivRem(y U512) (q, r U512) {
	DivRem(512, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U512) CheckedDiv(y U512) (U512, error) {
	var q U512
	if err := CheckedDiv(512, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return q, nil
}

func (x U512) CheckedRem(y U512) (U512, error) {
	var r U512
	if err := CheckedRem(512, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return r, nil
}

func (x U512) DivCeil(y U512) (U512, error) {
	var z U512
	if err := DivCeil(512, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) WrappingPow(exp U512) U512 {
	var z U512
	WrappingPow(512, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U512) CheckedPow(exp U512) (U512, error) {
	var z U512
	if err := CheckedPow(512, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) SaturatingPow(exp U512) U512 {
	var z U512
	SaturatingPow(512, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U512) And(y U512) U512 {
	var z U512
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Or(y U512) U512 {
	var z U512
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Xor(y U512) U512 {
	var z U512
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) Not() U512 {
	var z U512
	Not(512, z.limbs[:], x.limbs[:])
	return z
}

func (x U512) Lsh(k uint) U512 {
	var z U512
	Shl(512, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U512) Rsh(k uint) U512 {
	var z U512
	Shr(512, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U512) RotateLeft(k uint) U512 {
	var z U512
	RotateLeft(512, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U512) RotateRight(k uint) U512 {
	var z U512
	RotateRight(512, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U512) LeadingZeros() int  { return LeadingZeros(512, x.limbs[:]) }
func (x U512) TrailingZeros() int { return TrailingZeros(512, x.limbs[:]) }
func (x U512) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U512) BitLen() int        { return BitLen(512, x.limbs[:]) }
func (x U512) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U512) ReverseBits() U512 {
	var z U512
	ReverseBits(512, z.limbs[:], x.limbs[:])
	return z
}

func (x U512) ToBEBytes() [64]byte {
	var out [64]byte
	CopyBETo(512, out[:], x.limbs[:])
	return out
}

func (x U512) ToLEBytes() [64]byte {
	var out [64]byte
	CopyLETo(512, out[:], x.limbs[:])
	return out
}

func (x U512) ReduceMod(m U512) (U512, error) {
	var z U512
	if err := ReduceMod(512, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) MulMod(y, m U512) (U512, error) {
	var z U512
	if err := MulMod(512, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) PowMod(e, m U512) (U512, error) {
	var z U512
	if err := PowMod(512, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) InvMod(m U512) (U512, error) {
	var z U512
	if err := InvMod(512, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U512{}, err
	}
	return z, nil
}

func (x U512) GCD(y U512) U512 {
	var z U512
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U512) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
