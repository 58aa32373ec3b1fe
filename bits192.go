// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits192 is the bit-container sibling of U192.
type Bits192 struct {
	limbs [3]uint64
}

func BitsFromU192(x U192) Bits192 { return Bits192{limbs: x.limbs} }
func (b Bits192) ToU192() U192    { return U192{limbs: b.limbs} }

func (b Bits192) IsZero() bool        { return IsZero(b.limbs[:]) }
func (b Bits192) Bit(i int) bool      { return Bit(b.limbs[:], i) }
func (b Bits192) Cmp(o Bits192) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits192) Equal(o Bits192) bool { return b.limbs == o.limbs }

func (b Bits192) And(o Bits192) Bits192 {
	var z Bits192
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits192) Or(o Bits192) Bits192 {
	var z Bits192
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits192) Xor(o Bits192) Bits192 {
	var z Bits192
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits192) Not() Bits192 {
	var z Bits192
	Not(192, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits192) Lsh(k uint) Bits192 {
	var z Bits192
	Shl(192, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits192) Rsh(k uint) Bits192 {
	var z Bits192
	Shr(192, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits192) RotateLeft(k uint) Bits192 {
	var z Bits192
	RotateLeft(192, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits192) RotateRight(k uint) Bits192 {
	var z Bits192
	RotateRight(192, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits192) ReverseBits() Bits192 {
	var z Bits192
	ReverseBits(192, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits192) CountOnes() int { return CountOnes(b.limbs[:]) }
