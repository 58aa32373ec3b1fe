// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U256 is the ring of integers modulo 2^256.
type U256 struct {
	limbs [4]uint64
}

var (
	zeroU256 U256
	maxU256  = U256{limbs: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
)

func U256Zero() U256 { return zeroU256 }
func U256Max() U256  { return maxU256 }

func U256From64(v uint64) U256 { return U256{limbs: [4]uint64{v, 0, 0, 0}} }

func U256From128(in U128) U256 {
	var z U256
	copy(z.limbs[:2], in.limbs[:])
	return z
}

// U256FromLimbs constructs a U256 from an exact 4-limb slice.
func U256FromLimbs(limbs []uint64) (U256, error) {
	if len(limbs) != 4 {
		return U256{}, errLength(256)
	}
	var z U256
	copy(z.limbs[:], limbs)
	return z, nil
}

func U256FromBESlice(b []byte) (U256, error) {
	var z U256
	if err := TryFromBESlice(256, z.limbs[:], b); err != nil {
		return U256{}, err
	}
	return z, nil
}

func U256FromLESlice(b []byte) (U256, error) {
	var z U256
	if err := TryFromLESlice(256, z.limbs[:], b); err != nil {
		return U256{}, err
	}
	return z, nil
}

func U256FromBEBytes(b [32]byte) U256 {
	var z U256
	FromBEBytes(256, z.limbs[:], b[:])
	return z
}

func U256FromLEBytes(b [32]byte) U256 {
	var z U256
	FromLEBytes(256, z.limbs[:], b[:])
	return z
}

func U256FromStrRadix(s string, radix int) (U256, error) {
	var z U256
	if err := FromStrRadix(256, z.limbs[:], s, radix); err != nil {
		return U256{}, err
	}
	return z, nil
}

func U256FromStr(s string) (U256, error) {
	var z U256
	if err := FromStr(256, z.limbs[:], s); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) IsZero() bool      { return IsZero(x.limbs[:]) }
func (x U256) Bit(i int) bool    { return Bit(x.limbs[:], i) }
func (x U256) Cmp(y U256) int    { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U256) Equal(y U256) bool { return x.limbs == y.limbs }
func (x U256) String() string    { return FormatDecimal(256, x.limbs[:]) }

func (x U256) Format(f fmt.State, c rune) {
	formatVerb(f, c, 256, x.limbs[:])
}

func (x U256) WrappingAdd(y U256) U256 {
	var z U256
	WrappingAdd(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) CheckedAdd(y U256) (U256, error) {
	var z U256
	if err := CheckedAdd(256, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) OverflowingAdd(y U256) (U256, bool) {
	var z U256
	ovf := OverflowingAdd(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U256) SaturatingAdd(y U256) U256 {
	var z U256
	SaturatingAdd(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Add(y U256) U256 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U256 addition overflow")
	}
	return z
}

func (x U256) WrappingSub(y U256) U256 {
	var z U256
	WrappingSub(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) CheckedSub(y U256) (U256, error) {
	var z U256
	if err := CheckedSub(256, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) OverflowingSub(y U256) (U256, bool) {
	var z U256
	ovf := OverflowingSub(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U256) SaturatingSub(y U256) U256 {
	var z U256
	SaturatingSub(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Sub(y U256) U256 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U256 subtraction overflow")
	}
	return z
}

func (x U256) WrappingNeg() U256 {
	var z U256
	WrappingNeg(256, z.limbs[:], x.limbs[:])
	return z
}

func (x U256) WrappingMul(y U256) U256 {
	var z U256
	WrappingMul(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) CheckedMul(y U256) (U256, error) {
	var z U256
	if err := CheckedMul(256, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) OverflowingMul(y U256) (U256, bool) {
	var z U256
	ovf := OverflowingMul(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U256) SaturatingMul(y U256) U256 {
	var z U256
	SaturatingMul(256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Mul(y U256) U256 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U256 multiplication overflow")
	}
	return z
}

func (x U256) DivRem(y U256) (q, r U256) {
	DivRem(256, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U256) CheckedDiv(y U256) (U256, error) {
	var q U256
	if err := CheckedDiv(256, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return q, nil
}

func (x U256) CheckedRem(y U256) (U256, error) {
	var r U256
	if err := CheckedRem(256, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return r, nil
}

func (x U256) DivCeil(y U256) (U256, error) {
	var z U256
	if err := DivCeil(256, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) WrappingPow(exp U256) U256 {
	var z U256
	WrappingPow(256, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U256) CheckedPow(exp U256) (U256, error) {
	var z U256
	if err := CheckedPow(256, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) SaturatingPow(exp U256) U256 {
	var z U256
	SaturatingPow(256, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U256) And(y U256) U256 {
	var z U256
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Or(y U256) U256 {
	var z U256
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Xor(y U256) U256 {
	var z U256
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) Not() U256 {
	var z U256
	Not(256, z.limbs[:], x.limbs[:])
	return z
}

func (x U256) Lsh(k uint) U256 {
	var z U256
	Shl(256, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U256) Rsh(k uint) U256 {
	var z U256
	Shr(256, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U256) RotateLeft(k uint) U256 {
	var z U256
	RotateLeft(256, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U256) RotateRight(k uint) U256 {
	var z U256
	RotateRight(256, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U256) LeadingZeros() int  { return LeadingZeros(256, x.limbs[:]) }
func (x U256) TrailingZeros() int { return TrailingZeros(256, x.limbs[:]) }
func (x U256) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U256) BitLen() int        { return BitLen(256, x.limbs[:]) }
func (x U256) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U256) ReverseBits() U256 {
	var z U256
	ReverseBits(256, z.limbs[:], x.limbs[:])
	return z
}

func (x U256) ToBEBytes() [32]byte {
	var out [32]byte
	CopyBETo(256, out[:], x.limbs[:])
	return out
}

func (x U256) ToLEBytes() [32]byte {
	var out [32]byte
	CopyLETo(256, out[:], x.limbs[:])
	return out
}

func (x U256) ReduceMod(m U256) (U256, error) {
	var z U256
	if err := ReduceMod(256, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) MulMod(y, m U256) (U256, error) {
	var z U256
	if err := MulMod(256, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) PowMod(e, m U256) (U256, error) {
	var z U256
	if err := PowMod(256, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) InvMod(m U256) (U256, error) {
	var z U256
	if err := InvMod(256, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U256{}, err
	}
	return z, nil
}

func (x U256) GCD(y U256) U256 {
	var z U256
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U256) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
