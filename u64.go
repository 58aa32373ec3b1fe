// Hand-maintained; wuintgen's U[B] template renders only a subset of this file.

package wuint

import (
	"fmt"
	"math/big"
)

// U64 is the ring of integers modulo 2^64. It is the menu type whose
// bit width exactly fills a single limb with no masking required.
type U64 struct {
	limbs [1]uint64
}

var (
	zeroU64 U64
	maxU64  = U64{limbs: [1]uint64{^uint64(0)}}
)

func U64Zero() U64 { return zeroU64 }
func U64Max() U64  { return maxU64 }

func U64From64(v uint64) U64 { return U64{limbs: [1]uint64{v}} }
func U64From32(v uint32) U64 { return U64From64(uint64(v)) }
func U64From16(v uint16) U64 { return U64From64(uint64(v)) }
func U64From8(v uint8) U64   { return U64From64(uint64(v)) }

func U64FromLimbs(limbs []uint64) (U64, error) {
	if len(limbs) != 1 {
		return U64{}, errLength(64)
	}
	var z U64
	copy(z.limbs[:], limbs)
	return z, nil
}

func U64FromBESlice(b []byte) (U64, error) {
	var z U64
	if err := TryFromBESlice(64, z.limbs[:], b); err != nil {
		return U64{}, err
	}
	return z, nil
}

func U64FromLESlice(b []byte) (U64, error) {
	var z U64
	if err := TryFromLESlice(64, z.limbs[:], b); err != nil {
		return U64{}, err
	}
	return z, nil
}

func U64FromBEBytes(b [8]byte) U64 {
	var z U64
	FromBEBytes(64, z.limbs[:], b[:])
	return z
}

func U64FromLEBytes(b [8]byte) U64 {
	var z U64
	FromLEBytes(64, z.limbs[:], b[:])
	return z
}

func U64FromStrRadix(s string, radix int) (U64, error) {
	var z U64
	if err := FromStrRadix(64, z.limbs[:], s, radix); err != nil {
		return U64{}, err
	}
	return z, nil
}

func U64FromStr(s string) (U64, error) {
	var z U64
	if err := FromStr(64, z.limbs[:], s); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) Uint64() uint64  { return x.limbs[0] }
func (x U64) IsZero() bool    { return IsZero(x.limbs[:]) }
func (x U64) Bit(i int) bool  { return Bit(x.limbs[:], i) }
func (x U64) Cmp(y U64) int   { return cmpLimbs(x.limbs[:], y.limbs[:]) }
func (x U64) Equal(y U64) bool { return x.limbs == y.limbs }
func (x U64) String() string  { return FormatDecimal(64, x.limbs[:]) }

func (x U64) Format(f fmt.State, c rune) {
	formatVerb(f, c, 64, x.limbs[:])
}

func (x U64) WrappingAdd(y U64) U64 {
	var z U64
	WrappingAdd(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) CheckedAdd(y U64) (U64, error) {
	var z U64
	if err := CheckedAdd(64, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) OverflowingAdd(y U64) (U64, bool) {
	var z U64
	ovf := OverflowingAdd(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U64) SaturatingAdd(y U64) U64 {
	var z U64
	SaturatingAdd(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Add(y U64) U64 {
	z, ovf := x.OverflowingAdd(y)
	if ovf {
		panic("wuint: U64 addition overflow")
	}
	return z
}

func (x U64) WrappingSub(y U64) U64 {
	var z U64
	WrappingSub(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) CheckedSub(y U64) (U64, error) {
	var z U64
	if err := CheckedSub(64, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) OverflowingSub(y U64) (U64, bool) {
	var z U64
	ovf := OverflowingSub(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U64) SaturatingSub(y U64) U64 {
	var z U64
	SaturatingSub(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Sub(y U64) U64 {
	z, ovf := x.OverflowingSub(y)
	if ovf {
		panic("wuint: U64 subtraction overflow")
	}
	return z
}

func (x U64) WrappingNeg() U64 {
	var z U64
	WrappingNeg(64, z.limbs[:], x.limbs[:])
	return z
}

func (x U64) WrappingMul(y U64) U64 {
	var z U64
	WrappingMul(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) CheckedMul(y U64) (U64, error) {
	var z U64
	if err := CheckedMul(64, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) OverflowingMul(y U64) (U64, bool) {
	var z U64
	ovf := OverflowingMul(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z, ovf
}

func (x U64) SaturatingMul(y U64) U64 {
	var z U64
	SaturatingMul(64, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Mul(y U64) U64 {
	z, ovf := x.OverflowingMul(y)
	if ovf {
		panic("wuint: U64 multiplication overflow")
	}
	return z
}

func (x U64) DivRem(y U64) (q, r U64) {
	DivRem(64, q.limbs[:], r.limbs[:], x.limbs[:], y.limbs[:])
	return q, r
}

func (x U64) CheckedDiv(y U64) (U64, error) {
	var q U64
	if err := CheckedDiv(64, q.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return q, nil
}

func (x U64) CheckedRem(y U64) (U64, error) {
	var r U64
	if err := CheckedRem(64, r.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return r, nil
}

func (x U64) DivCeil(y U64) (U64, error) {
	var z U64
	if err := DivCeil(64, z.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) WrappingPow(exp U64) U64 {
	var z U64
	WrappingPow(64, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U64) CheckedPow(exp U64) (U64, error) {
	var z U64
	if err := CheckedPow(64, z.limbs[:], x.limbs[:], exp.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) SaturatingPow(exp U64) U64 {
	var z U64
	SaturatingPow(64, z.limbs[:], x.limbs[:], exp.limbs[:])
	return z
}

func (x U64) And(y U64) U64 {
	var z U64
	And(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Or(y U64) U64 {
	var z U64
	Or(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Xor(y U64) U64 {
	var z U64
	Xor(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) Not() U64 {
	var z U64
	Not(64, z.limbs[:], x.limbs[:])
	return z
}

func (x U64) Lsh(k uint) U64 {
	var z U64
	Shl(64, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U64) Rsh(k uint) U64 {
	var z U64
	Shr(64, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U64) RotateLeft(k uint) U64 {
	var z U64
	RotateLeft(64, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U64) RotateRight(k uint) U64 {
	var z U64
	RotateRight(64, z.limbs[:], x.limbs[:], k)
	return z
}

func (x U64) LeadingZeros() int  { return LeadingZeros(64, x.limbs[:]) }
func (x U64) TrailingZeros() int { return TrailingZeros(64, x.limbs[:]) }
func (x U64) CountOnes() int     { return CountOnes(x.limbs[:]) }
func (x U64) BitLen() int        { return BitLen(64, x.limbs[:]) }
func (x U64) IsPowerOfTwo() bool { return IsPowerOfTwo(x.limbs[:]) }

func (x U64) ReverseBits() U64 {
	var z U64
	ReverseBits(64, z.limbs[:], x.limbs[:])
	return z
}

func (x U64) ToBEBytes() [8]byte {
	var out [8]byte
	CopyBETo(64, out[:], x.limbs[:])
	return out
}

func (x U64) ToLEBytes() [8]byte {
	var out [8]byte
	CopyLETo(64, out[:], x.limbs[:])
	return out
}

func (x U64) ReduceMod(m U64) (U64, error) {
	var z U64
	if err := ReduceMod(64, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) MulMod(y, m U64) (U64, error) {
	var z U64
	if err := MulMod(64, z.limbs[:], x.limbs[:], y.limbs[:], m.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) PowMod(e, m U64) (U64, error) {
	var z U64
	if err := PowMod(64, z.limbs[:], x.limbs[:], e.limbs[:], m.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) InvMod(m U64) (U64, error) {
	var z U64
	if err := InvMod(64, z.limbs[:], x.limbs[:], m.limbs[:]); err != nil {
		return U64{}, err
	}
	return z, nil
}

func (x U64) GCD(y U64) U64 {
	var z U64
	GCD(z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (x U64) AsBigInt() *big.Int {
	return limbsToBigInt(x.limbs[:])
}
