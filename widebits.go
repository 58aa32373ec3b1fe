package wuint

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gowide/wuint/internal/limb"
)

// WideBits is Wide's bit-only sibling: same limb layout, a disjoint
// operation set (no arithmetic). Its storage is a bitset.BitSet rather
// than a bare []uint64 — unlike the generated fixed-width Bits* types,
// which stay array-backed since they have no allocation budget to
// spare, WideBits already allocates on construction like Wide does, so
// it can afford the richer get/set/flip/count surface bitset.BitSet
// provides for free instead of hand-rolling it a second time.
type WideBits struct {
	bits int
	bs   *bitset.BitSet
}

// NewWideBits returns the zero value of width bits.
func NewWideBits(bits int) WideBits {
	return WideBits{bits: bits, bs: bitset.New(uint(maxInt(bits, 1)))}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WideBitsFromLimbs constructs a WideBits from an exact-length limb
// slice, failing if any bit above bits-1 is set.
func WideBitsFromLimbs(bits int, limbs []uint64) (WideBits, error) {
	if len(limbs) != LimbCount(bits) {
		return WideBits{}, errLength(bits)
	}
	if !isCanonical(limbs, bits) {
		return WideBits{}, errOverflow(bits)
	}
	w := NewWideBits(bits)
	for i := 0; i < bits; i++ {
		if limb.Bit(limbs, i) {
			w.bs.Set(uint(i))
		}
	}
	return w, nil
}

// Limbs materializes the bit-identical []uint64 view shared with Wide.
func (w WideBits) Limbs() []uint64 {
	z := make([]uint64, LimbCount(w.bits))
	for i := 0; i < w.bits; i++ {
		if w.bs.Test(uint(i)) {
			limb.SetBit(z, i, true)
		}
	}
	return z
}

// ToWide reinterprets this bit container as the arithmetic type with
// the same limb layout.
func (w WideBits) ToWide() Wide {
	out := NewWide(w.bits)
	copy(out.limbs, w.Limbs())
	return out
}

// WideToBits reinterprets a Wide as its bit-only sibling.
func WideToBits(w Wide) WideBits {
	out, _ := WideBitsFromLimbs(w.bits, w.limbs)
	return out
}

func (w WideBits) Bits() int { return w.bits }

func (w WideBits) Bit(i int) bool {
	if i < 0 || i >= w.bits {
		return false
	}
	return w.bs.Test(uint(i))
}

func (w WideBits) SetBit(i int, v bool) WideBits {
	out := NewWideBits(w.bits)
	out.bs = w.bs.Clone()
	if i >= 0 && i < w.bits {
		if v {
			out.bs.Set(uint(i))
		} else {
			out.bs.Clear(uint(i))
		}
	}
	return out
}

func (w WideBits) And(o WideBits) WideBits {
	out := NewWideBits(w.bits)
	out.bs = w.bs.Intersection(o.bs)
	return out
}

func (w WideBits) Or(o WideBits) WideBits {
	out := NewWideBits(w.bits)
	out.bs = w.bs.Union(o.bs)
	return out
}

func (w WideBits) Xor(o WideBits) WideBits {
	out := NewWideBits(w.bits)
	out.bs = w.bs.SymmetricDifference(o.bs)
	return out
}

func (w WideBits) Not() WideBits {
	out := NewWideBits(w.bits)
	for i := 0; i < w.bits; i++ {
		if !w.bs.Test(uint(i)) {
			out.bs.Set(uint(i))
		}
	}
	return out
}

func (w WideBits) CountOnes() int {
	return int(w.bs.Count())
}

func (w WideBits) ReverseBits() WideBits {
	out := NewWideBits(w.bits)
	for i := 0; i < w.bits; i++ {
		if w.bs.Test(uint(i)) {
			out.bs.Set(uint(w.bits - 1 - i))
		}
	}
	return out
}

func (w WideBits) Equal(o WideBits) bool {
	return w.bits == o.bits && w.bs.Equal(o.bs)
}
