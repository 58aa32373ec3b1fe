// Hand-maintained; wuintgen's Bits[B] template renders only a subset of this file.

package wuint

// Bits64 is the bit-container sibling of U64.
type Bits64 struct {
	limbs [1]uint64
}

func BitsFromU64(x U64) Bits64 { return Bits64{limbs: x.limbs} }
func (b Bits64) ToU64() U64    { return U64{limbs: b.limbs} }

func (b Bits64) IsZero() bool        { return IsZero(b.limbs[:]) }
func (b Bits64) Bit(i int) bool      { return Bit(b.limbs[:], i) }
func (b Bits64) Cmp(o Bits64) int    { return cmpLimbs(b.limbs[:], o.limbs[:]) }
func (b Bits64) Equal(o Bits64) bool { return b.limbs == o.limbs }

func (b Bits64) And(o Bits64) Bits64 {
	var z Bits64
	And(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits64) Or(o Bits64) Bits64 {
	var z Bits64
	Or(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits64) Xor(o Bits64) Bits64 {
	var z Bits64
	Xor(z.limbs[:], b.limbs[:], o.limbs[:])
	return z
}

func (b Bits64) Not() Bits64 {
	var z Bits64
	Not(64, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits64) Lsh(k uint) Bits64 {
	var z Bits64
	Shl(64, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits64) Rsh(k uint) Bits64 {
	var z Bits64
	Shr(64, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits64) RotateLeft(k uint) Bits64 {
	var z Bits64
	RotateLeft(64, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits64) RotateRight(k uint) Bits64 {
	var z Bits64
	RotateRight(64, z.limbs[:], b.limbs[:], k)
	return z
}

func (b Bits64) ReverseBits() Bits64 {
	var z Bits64
	ReverseBits(64, z.limbs[:], b.limbs[:])
	return z
}

func (b Bits64) CountOnes() int { return CountOnes(b.limbs[:]) }
