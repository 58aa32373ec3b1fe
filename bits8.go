// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits8 is the bit-container sibling of U8: same limb layout, but no
// arithmetic operations are exposed on it.
type Bits8 struct {
	limbs [1]uint64
}

func BitsFromU8(x U8) Bits8 { return Bits8{limbs: x.limbs} }
func (b Bits8) ToU8() U8    { return U8{limbs: b.limbs} }

func (b Bits8) IsZero() bool      { return IsZero(b.limbs[:]) }
func (b Bits8) Bit(i int) bool    { return Bit(b.limbs[:], i) }
func (b Bits8) Cmp(o Bits8) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits8) Equal(o Bits8) bool { return b.limbs == o.limbs }

func (b Bits8) And(o Bits8) Bits8 {
	var z Bits8
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits8) Or(o Bits8) Bits8 {
	var z Bits8
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits8) Xor(o Bits8) Bits8 {
	var z Bits8
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits8) Not() Bits8 {
	var z Bits8
	Not(8, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits8) Lsh(k uint) Bits8 {
	var z Bits8
	Shl(8, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits8) Rsh(k uint) Bits8 {
	var z Bits8
	Shr(8, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits8) RotateLeft(k uint) Bits8 {
	var z Bits8
	RotateLeft(8, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits8) RotateRight(k uint) Bits8 {
	var z Bits8
	RotateRight(8, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits8) ReverseBits() Bits8 {
	var z Bits8
	ReverseBits(8, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits8) CountOnes() int { return CountOnes(b.limbs[:]) }
