package wuint

import "github.com/gowide/wuint/internal/limb"

// FromBaseLE folds a little-endian digit sequence (least significant
// digit first), each in [0, base), into z: acc = acc*base + digit,
// checked at each step.
func FromBaseLE(bits int, z []uint64, base uint64, digits []byte) error {
	if base < 2 {
		return errRadix("")
	}
	n := len(z)
	baseLimbs := make([]uint64, n)
	baseLimbs[0] = base
	acc := make([]uint64, n)
	digitLimbs := make([]uint64, n)

	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if uint64(d) >= base {
			return errDigit(string(d), bits)
		}
		if err := CheckedMul(bits, acc, acc, baseLimbs); err != nil {
			return err
		}
		limb.SetZero(digitLimbs)
		digitLimbs[0] = uint64(d)
		if err := CheckedAdd(bits, acc, acc, digitLimbs); err != nil {
			return err
		}
	}
	copy(z, acc)
	return nil
}

// FromBaseBE folds a big-endian digit sequence (most significant
// digit first) the same way as FromBaseLE.
func FromBaseBE(bits int, z []uint64, base uint64, digits []byte) error {
	rev := make([]byte, len(digits))
	for i, d := range digits {
		rev[len(digits)-1-i] = d
	}
	return FromBaseLE(bits, z, base, rev)
}

// ToBaseLE returns a closure that yields successive little-endian
// digits of x in the given base via repeated divmod, terminating when
// the running value becomes zero. Zero itself yields a single digit, 0.
func ToBaseLE(bits int, x []uint64, base uint64) func() (byte, bool) {
	n := len(x)
	rem := make([]uint64, n)
	copy(rem, x)
	baseLimbs := make([]uint64, n)
	baseLimbs[0] = base
	isZeroValue := limb.IsZero(rem)
	done := false

	return func() (byte, bool) {
		if done {
			return 0, false
		}
		if isZeroValue {
			done = true
			return 0, true
		}
		q := make([]uint64, n)
		r := make([]uint64, n)
		limb.DivRem(q, r, rem, baseLimbs)
		copy(rem, q)
		if limb.IsZero(rem) {
			done = true
		}
		return byte(r[0]), true
	}
}

// ToBaseBE collects ToBaseLE's sequence and reverses it into a slice.
func ToBaseBE(bits int, x []uint64, base uint64) []byte {
	next := ToBaseLE(bits, x, base)
	var le []byte
	for {
		d, ok := next()
		if !ok {
			break
		}
		le = append(le, d)
	}
	be := make([]byte, len(le))
	for i, d := range le {
		be[len(le)-1-i] = d
	}
	return be
}
