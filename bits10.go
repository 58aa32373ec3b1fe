// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits10 is the bit-container sibling of U10.
type Bits10 struct {
	limbs [1]uint64
}

func BitsFromU10(x U10) Bits10 { return Bits10{limbs: x.limbs} }
func (b Bits10) ToU10() U10    { return U10{limbs: b.limbs} }

func (b Bits10) IsZero() bool       { return IsZero(b.limbs[:]) }
func (b Bits10) Bit(i int) bool     { return Bit(b.limbs[:], i) }
func (b Bits10) Cmp(o Bits10) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits10) Equal(o Bits10) bool { return b.limbs == o.limbs }

func (b Bits10) And(o Bits10) Bits10 {
	var z Bits10
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits10) Or(o Bits10) Bits10 {
	var z Bits10
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits10) Xor(o Bits10) Bits10 {
	var z Bits10
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits10) Not() Bits10 {
	var z Bits10
	Not(10, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits10) Lsh(k uint) Bits10 {
	var z Bits10
	Shl(10, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits10) Rsh(k uint) Bits10 {
	var z Bits10
	Shr(10, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits10) RotateLeft(k uint) Bits10 {
	var z Bits10
	RotateLeft(10, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits10) RotateRight(k uint) Bits10 {
	var z Bits10
	RotateRight(10, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits10) ReverseBits() Bits10 {
	var z Bits10
	ReverseBits(10, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits10) CountOnes() int { return CountOnes(b.limbs[:]) }
