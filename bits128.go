// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits128 is the bit-container sibling of U128.
type Bits128 struct {
	limbs [2]uint64
}

func BitsFromU128(x U128) Bits128 { return Bits128{limbs: x.limbs} }
func (b Bits128) ToU128() U128    { return U128{limbs: b.limbs} }

func (b Bits128) IsZero() bool        { return IsZero(b.limbs[:]) }
func (b Bits128) Bit(i int) bool      { return Bit(b.limbs[:], i) }
func (b Bits128) Cmp(o Bits128) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits128) Equal(o Bits128) bool { return b.limbs == o.limbs }

func (b Bits128) And(o Bits128) Bits128 {
	var z Bits128
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits128) Or(o Bits128) Bits128 {
	var z Bits128
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits128) Xor(o Bits128) Bits128 {
	var z Bits128
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits128) Not() Bits128 {
	var z Bits128
	Not(128, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits128) Lsh(k uint) Bits128 {
	var z Bits128
	Shl(128, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits128) Rsh(k uint) Bits128 {
	var z Bits128
	Shr(128, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits128) RotateLeft(k uint) Bits128 {
	var z Bits128
	RotateLeft(128, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits128) RotateRight(k uint) Bits128 {
	var z Bits128
	RotateRight(128, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits128) ReverseBits() Bits128 {
	var z Bits128
	ReverseBits(128, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits128) CountOnes() int { return CountOnes(b.limbs[:]) }
