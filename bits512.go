// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits512 is the bit-container sibling of U512.
type Bits512 struct {
	limbs [8]uint64
}

func BitsFromU512(x U512) Bits512 { return Bits512{limbs: x.limbs} }
func (b Bits512) ToU512() U512    { return U512{limbs: b.limbs} }

func (b Bits512) IsZero() bool        { return IsZero(b.limbs[:]) }
func (b Bits512) Bit(i int) bool      { return Bit(b.limbs[:], i) }
func (b Bits512) Cmp(o Bits512) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits512) Equal(o Bits512) bool { return b.limbs == o.limbs }

func (b Bits512) And(o Bits512) Bits512 {
	var z Bits512
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits512) Or(o Bits512) Bits512 {
	var z Bits512
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits512) Xor(o Bits512) Bits512 {
	var z Bits512
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits512) Not() Bits512 {
	var z Bits512
	Not(512, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits512) Lsh(k uint) Bits512 {
	var z Bits512
	Shl(512, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits512) Rsh(k uint) Bits512 {
	var z Bits512
	Shr(512, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits512) RotateLeft(k uint) Bits512 {
	var z Bits512
	RotateLeft(512, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits512) RotateRight(k uint) Bits512 {
	var z Bits512
	RotateRight(512, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits512) ReverseBits() Bits512 {
	var z Bits512
	ReverseBits(512, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits512) CountOnes() int { return CountOnes(b.limbs[:]) }
