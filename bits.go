package wuint

import "github.com/gowide/wuint/internal/limb"

// And, Or, Xor compute the per-limb bitwise operation into z.
func And(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func Or(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func Xor(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

// Not flips every bit of x within the bit width, re-canonicalizing.
func Not(bits int, z, x []uint64) {
	for i := range z {
		z[i] = ^x[i]
	}
	canonicalize(z, bits)
}

// Shl shifts x left by k, returning zero when k >= bits.
func Shl(bits int, z, x []uint64, k uint) {
	if int(k) >= bits {
		limb.SetZero(z)
		return
	}
	limb.Shl(z, x, k)
	canonicalize(z, bits)
}

// OverflowingShl shifts x left by k and reports whether any set bit
// was shifted out past position bits-1.
func OverflowingShl(bits int, z, x []uint64, k uint) bool {
	if int(k) >= bits {
		limb.SetZero(z)
		return !limb.IsZero(x)
	}
	Shl(bits, z, x, k)
	// A bit was lost iff shifting the result back right by k does not
	// recover x.
	back := make([]uint64, len(x))
	limb.Shr(back, z, k)
	return !limb.Equal(back, x)
}

// Shr shifts x right by k, returning zero when k >= bits.
func Shr(bits int, z, x []uint64, k uint) {
	if int(k) >= bits {
		limb.SetZero(z)
		return
	}
	limb.Shr(z, x, k)
}

// RotateLeft rotates x left by k mod bits (0 for bits == 0).
func RotateLeft(bits int, z, x []uint64, k uint) {
	if bits == 0 {
		copy(z, x)
		return
	}
	k %= uint(bits)
	if k == 0 {
		copy(z, x)
		return
	}
	lo := make([]uint64, len(x))
	hi := make([]uint64, len(x))
	limb.Shl(lo, x, k)
	limb.Shr(hi, x, uint(bits)-k)
	Or(z, lo, hi)
	canonicalize(z, bits)
}

// RotateRight rotates x right by k mod bits (0 for bits == 0).
func RotateRight(bits int, z, x []uint64, k uint) {
	if bits == 0 {
		copy(z, x)
		return
	}
	k %= uint(bits)
	RotateLeft(bits, z, x, uint(bits)-k)
}

// LeadingZeros, LeadingOnes, TrailingZeros, TrailingOnes, CountOnes,
// CountZeros, BitLen, IsZero, Bit, SetBit operate relative to the
// value's declared bit width, not its limb capacity.

func LeadingZeros(bits int, x []uint64) int {
	lz := limb.LeadingZeros(x)
	cap := len(x) * 64
	return lz - (cap - bits)
}

func LeadingOnes(bits int, x []uint64) int {
	flipped := make([]uint64, len(x))
	Not(bits, flipped, x)
	return LeadingZeros(bits, flipped)
}

func TrailingZeros(bits int, x []uint64) int {
	if limb.IsZero(x) {
		return bits
	}
	return limb.TrailingZeros(x)
}

func TrailingOnes(bits int, x []uint64) int {
	flipped := make([]uint64, len(x))
	Not(bits, flipped, x)
	return TrailingZeros(bits, flipped)
}

func CountOnes(x []uint64) int {
	return limb.CountOnes(x)
}

func CountZeros(bits int, x []uint64) int {
	return bits - CountOnes(x)
}

func BitLen(bits int, x []uint64) int {
	return bits - LeadingZeros(bits, x)
}

// ByteLen returns the number of bytes needed to represent x with no
// leading zero bytes.
func ByteLen(bits int, x []uint64) int {
	bl := BitLen(bits, x)
	return (bl + 7) / 8
}

func IsZero(x []uint64) bool { return limb.IsZero(x) }

func Bit(x []uint64, i int) bool {
	if i < 0 || i >= len(x)*64 {
		return false
	}
	return limb.Bit(x, i)
}

func SetBit(bits int, z, x []uint64, i int, v bool) {
	copy(z, x)
	if i < 0 || i >= bits {
		return
	}
	limb.SetBit(z, i, v)
	canonicalize(z, bits)
}

// Byte returns the i-th little-endian byte of x, or 0 when out of range.
func Byte(bits int, x []uint64, i int) byte {
	byteLen := (bits + 7) / 8
	if i < 0 || i >= byteLen {
		return 0
	}
	limbIdx := i / 8
	shift := uint(i%8) * 8
	return byte(x[limbIdx] >> shift)
}

// CheckedByte is Byte but reports whether i was in range.
func CheckedByte(bits int, x []uint64, i int) (byte, bool) {
	byteLen := (bits + 7) / 8
	if i < 0 || i >= byteLen {
		return 0, false
	}
	return Byte(bits, x, i), true
}

// IsPowerOfTwo reports whether x has exactly one set bit.
func IsPowerOfTwo(x []uint64) bool {
	return !limb.IsZero(x) && limb.CountOnes(x) == 1
}

// NextPowerOfTwo returns the least power of two >= x, saturating to
// zero (wraparound) if that value would exceed bits.
func NextPowerOfTwo(bits int, z, x []uint64) {
	if limb.IsZero(x) {
		z[0] = 1
		for i := 1; i < len(z); i++ {
			z[i] = 0
		}
		return
	}
	bl := limb.BitLen(x)
	if limb.CountOnes(x) == 1 {
		copy(z, x)
		return
	}
	limb.SetZero(z)
	if bl >= bits {
		return
	}
	limb.SetBit(z, bl, true)
	canonicalize(z, bits)
}

// NextMultipleOf returns the least multiple of y that is >= x.
func NextMultipleOf(bitsVal int, z, x, y []uint64) error {
	if limb.IsZero(y) {
		return errDivZero(bitsVal)
	}
	n := len(z)
	q := make([]uint64, n)
	r := make([]uint64, n)
	limb.DivRem(q, r, x, y)
	if limb.IsZero(r) {
		copy(z, x)
		return nil
	}
	WrappingMul(bitsVal, z, q, y)
	return CheckedAdd(bitsVal, z, z, y)
}

// ReverseBits reverses all bits bits of x by value.
func ReverseBits(bits int, z, x []uint64) {
	limb.SetZero(z)
	for i := 0; i < bits; i++ {
		if limb.Bit(x, i) {
			limb.SetBit(z, bits-1-i, true)
		}
	}
}

// MostSignificantBits returns the top k bits of x as a primitive word
// (k <= 64).
func MostSignificantBits(bits int, x []uint64, k int) uint64 {
	bl := BitLen(bits, x)
	if bl == 0 {
		return 0
	}
	if bl <= k {
		return extractWord(x, 0, bl)
	}
	return extractWord(x, bl-k, k)
}

// extractWord reads a w-bit window of x starting at bit offset off
// into a right-aligned uint64, where w <= 64.
func extractWord(x []uint64, off, w int) uint64 {
	limbIdx := off / 64
	bitIdx := uint(off % 64)
	lo := x[limbIdx] >> bitIdx
	if bitIdx > 0 && limbIdx+1 < len(x) {
		lo |= x[limbIdx+1] << (64 - bitIdx)
	}
	if w == 64 {
		return lo
	}
	return lo & (uint64(1)<<uint(w) - 1)
}
