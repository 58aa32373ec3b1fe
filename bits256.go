// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits256 is the bit-container sibling of U256.
type Bits256 struct {
	limbs [4]uint64
}

func BitsFromU256(x U256) Bits256 { return Bits256{limbs: x.limbs} }
func (b Bits256) ToU256() U256    { return U256{limbs: b.limbs} }

func (b Bits256) IsZero() bool        { return IsZero(b.limbs[:]) }
func (b Bits256) Bit(i int) bool      { return Bit(b.limbs[:], i) }
func (b Bits256) Cmp(o Bits256) int   { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits256) Equal(o Bits256) bool { return b.limbs == o.limbs }

func (b Bits256) And(o Bits256) Bits256 {
	var z Bits256
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits256) Or(o Bits256) Bits256 {
	var z Bits256
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits256) Xor(o Bits256) Bits256 {
	var z Bits256
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits256) Not() Bits256 {
	var z Bits256
	Not(256, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits256) Lsh(k uint) Bits256 {
	var z Bits256
	Shl(256, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits256) Rsh(k uint) Bits256 {
	var z Bits256
	Shr(256, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits256) RotateLeft(k uint) Bits256 {
	var z Bits256
	RotateLeft(256, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits256) RotateRight(k uint) Bits256 {
	var z Bits256
	RotateRight(256, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits256) ReverseBits() Bits256 {
	var z Bits256
	ReverseBits(256, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits256) CountOnes() int { return CountOnes(b.limbs[:]) }
