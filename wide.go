package wuint

import "github.com/gowide/wuint/internal/limb"

// Wide is the dynamically-sized escape hatch for any bit width outside
// the generated menu (U8, U10, U64, U128, U192, U256, U512). Unlike
// the menu types, Wide allocates: every constructing operation copies
// into a freshly sized limb slice rather than aliasing a caller's
// backing array, matching the allocation budget spec.md §5 carves out
// for variable-width/variable-output operations.
type Wide struct {
	bits  int
	limbs []uint64
}

// NewWide returns the zero value of width bits.
func NewWide(bits int) Wide {
	return Wide{bits: bits, limbs: make([]uint64, LimbCount(bits))}
}

// WideMax returns the maximum representable value of width bits.
func WideMax(bits int) Wide {
	w := NewWide(bits)
	setMax(w.limbs, bits)
	return w
}

// WideFromLimbs constructs a Wide from an exact-length limb slice,
// failing if any bit above bits-1 is set.
func WideFromLimbs(bits int, limbs []uint64) (Wide, error) {
	if len(limbs) != LimbCount(bits) {
		return Wide{}, errLength(bits)
	}
	if !isCanonical(limbs, bits) {
		return Wide{}, errOverflow(bits)
	}
	w := NewWide(bits)
	copy(w.limbs, limbs)
	return w, nil
}

// WideFromUint64 constructs a Wide from a primitive value.
func WideFromUint64(bits int, v uint64) (Wide, error) {
	w := NewWide(bits)
	if len(w.limbs) == 0 {
		if v != 0 {
			return Wide{}, errOverflow(bits)
		}
		return w, nil
	}
	w.limbs[0] = v
	if !isCanonical(w.limbs, bits) {
		return Wide{}, errOverflow(bits)
	}
	return w, nil
}

// WideFromStrRadix parses s in the given radix at the given bit width.
func WideFromStrRadix(bits int, s string, radix int) (Wide, error) {
	w := NewWide(bits)
	if err := FromStrRadix(bits, w.limbs, s, radix); err != nil {
		return Wide{}, err
	}
	return w, nil
}

func (w Wide) Bits() int        { return w.bits }
func (w Wide) Limbs() []uint64  { return append([]uint64(nil), w.limbs...) }
func (w Wide) IsZero() bool     { return limb.IsZero(w.limbs) }
func (w Wide) String() string   { return FormatDecimal(w.bits, w.limbs) }
func (w Wide) Cmp(o Wide) int   { return limb.Cmp(w.limbs, o.limbs) }
func (w Wide) Equal(o Wide) bool { return limb.Equal(w.limbs, o.limbs) }

func (w Wide) clone() Wide {
	out := NewWide(w.bits)
	copy(out.limbs, w.limbs)
	return out
}

// WrappingAdd returns w+o mod 2^bits.
func (w Wide) WrappingAdd(o Wide) Wide {
	z := NewWide(w.bits)
	WrappingAdd(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

// CheckedAdd returns w+o, or an error on overflow.
func (w Wide) CheckedAdd(o Wide) (Wide, error) {
	z := NewWide(w.bits)
	if err := CheckedAdd(w.bits, z.limbs, w.limbs, o.limbs); err != nil {
		return Wide{}, err
	}
	return z, nil
}

// OverflowingAdd returns (w+o mod 2^bits, overflow).
func (w Wide) OverflowingAdd(o Wide) (Wide, bool) {
	z := NewWide(w.bits)
	ovf := OverflowingAdd(w.bits, z.limbs, w.limbs, o.limbs)
	return z, ovf
}

// SaturatingAdd clamps w+o to the maximum representable value.
func (w Wide) SaturatingAdd(o Wide) Wide {
	z := NewWide(w.bits)
	SaturatingAdd(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

// WrappingSub, CheckedSub, OverflowingSub, SaturatingSub mirror the
// Add family.
func (w Wide) WrappingSub(o Wide) Wide {
	z := NewWide(w.bits)
	WrappingSub(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

func (w Wide) CheckedSub(o Wide) (Wide, error) {
	z := NewWide(w.bits)
	if err := CheckedSub(w.bits, z.limbs, w.limbs, o.limbs); err != nil {
		return Wide{}, err
	}
	return z, nil
}

func (w Wide) SaturatingSub(o Wide) Wide {
	z := NewWide(w.bits)
	SaturatingSub(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

// WrappingMul, CheckedMul, OverflowingMul, SaturatingMul mirror Add.
func (w Wide) WrappingMul(o Wide) Wide {
	z := NewWide(w.bits)
	WrappingMul(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

func (w Wide) CheckedMul(o Wide) (Wide, error) {
	z := NewWide(w.bits)
	if err := CheckedMul(w.bits, z.limbs, w.limbs, o.limbs); err != nil {
		return Wide{}, err
	}
	return z, nil
}

func (w Wide) SaturatingMul(o Wide) Wide {
	z := NewWide(w.bits)
	SaturatingMul(w.bits, z.limbs, w.limbs, o.limbs)
	return z
}

// DivRem computes w = q*o + r. It panics on division by zero.
func (w Wide) DivRem(o Wide) (q, r Wide) {
	q, r = NewWide(w.bits), NewWide(w.bits)
	DivRem(w.bits, q.limbs, r.limbs, w.limbs, o.limbs)
	return q, r
}

// CheckedDiv, CheckedRem return an error instead of panicking on a
// zero divisor.
func (w Wide) CheckedDiv(o Wide) (Wide, error) {
	q := NewWide(w.bits)
	if err := CheckedDiv(w.bits, q.limbs, w.limbs, o.limbs); err != nil {
		return Wide{}, err
	}
	return q, nil
}

func (w Wide) CheckedRem(o Wide) (Wide, error) {
	r := NewWide(w.bits)
	if err := CheckedRem(w.bits, r.limbs, w.limbs, o.limbs); err != nil {
		return Wide{}, err
	}
	return r, nil
}

// WrappingPow, CheckedPow, SaturatingPow mirror the other arithmetic ops.
func (w Wide) WrappingPow(exp Wide) Wide {
	z := NewWide(w.bits)
	WrappingPow(w.bits, z.limbs, w.limbs, exp.limbs)
	return z
}

func (w Wide) CheckedPow(exp Wide) (Wide, error) {
	z := NewWide(w.bits)
	if err := CheckedPow(w.bits, z.limbs, w.limbs, exp.limbs); err != nil {
		return Wide{}, err
	}
	return z, nil
}

// And, Or, Xor, Not, Shl, Shr, RotateLeft, RotateRight.
func (w Wide) And(o Wide) Wide {
	z := NewWide(w.bits)
	And(z.limbs, w.limbs, o.limbs)
	return z
}

func (w Wide) Or(o Wide) Wide {
	z := NewWide(w.bits)
	Or(z.limbs, w.limbs, o.limbs)
	return z
}

func (w Wide) Xor(o Wide) Wide {
	z := NewWide(w.bits)
	Xor(z.limbs, w.limbs, o.limbs)
	return z
}

func (w Wide) Not() Wide {
	z := NewWide(w.bits)
	Not(w.bits, z.limbs, w.limbs)
	return z
}

func (w Wide) Shl(k uint) Wide {
	z := NewWide(w.bits)
	Shl(w.bits, z.limbs, w.limbs, k)
	return z
}

func (w Wide) Shr(k uint) Wide {
	z := NewWide(w.bits)
	Shr(w.bits, z.limbs, w.limbs, k)
	return z
}

func (w Wide) RotateLeft(k uint) Wide {
	z := NewWide(w.bits)
	RotateLeft(w.bits, z.limbs, w.limbs, k)
	return z
}

func (w Wide) RotateRight(k uint) Wide {
	z := NewWide(w.bits)
	RotateRight(w.bits, z.limbs, w.limbs, k)
	return z
}

// ToBEBytes, ToLEBytes format the value per spec.md §4.4.
func (w Wide) ToBEBytes() []byte { return ToBEBytes(w.bits, w.limbs) }
func (w Wide) ToLEBytes() []byte { return ToLEBytes(w.bits, w.limbs) }

// FormatRadix formats the value in the given radix.
func (w Wide) FormatRadix(radix int) string { return FormatRadix(w.bits, w.limbs, radix) }
