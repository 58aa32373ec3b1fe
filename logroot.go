package wuint

import (
	"github.com/gowide/wuint/internal/limb"
)

// Log returns the largest k such that base^k <= n, failing if base < 2
// or n == 0 — grounded on ruint's checked_log, which treats both as
// distinct, explicit error causes rather than folding them into a
// single generic failure.
func Log(bits int, n []uint64, base uint64) (int, error) {
	if base < 2 {
		return 0, &Error{Kind: InvalidRadix, Msg: "wuint: log base must be >= 2"}
	}
	if limb.IsZero(n) {
		return 0, &Error{Kind: InvalidDigit, Msg: "wuint: log of zero is undefined"}
	}

	// Seed from the float approximation, then correct by direct
	// comparison against base^k and base^(k+1) — the same
	// approximate-then-correct shape as the root computation below.
	k := int(ApproxLog(n, float64(base)))
	if k < 0 {
		k = 0
	}

	nw := len(n)
	baseLimbs := make([]uint64, nw)
	baseLimbs[0] = base
	power := make([]uint64, nw)

	for powBase(power, baseLimbs, k, nw) || limb.Cmp(power, n) > 0 {
		k--
	}
	next := make([]uint64, nw)
	for {
		if err := CheckedMul(bits, next, power, baseLimbs); err != nil {
			break
		}
		if limb.Cmp(next, n) > 0 {
			break
		}
		k++
		copy(power, next)
	}
	return k, nil
}

// powBase computes power = base^k via repeated multiplication and
// reports whether base^k overflowed nw limbs; on overflow power is left
// saturated at all-ones rather than failing.
func powBase(power, base []uint64, k, nw int) bool {
	limb.SetZero(power)
	power[0] = 1
	for i := 0; i < k; i++ {
		wide := make([]uint64, 2*nw)
		limb.MulNxN(wide, power, base)
		if !limb.IsZero(wide[nw:]) {
			for j := range power {
				power[j] = ^uint64(0)
			}
			return true
		}
		copy(power, wide[:nw])
	}
	return false
}

// Log2 returns floor(log2(n)), i.e. BitLen(n)-1; it is equivalent to
// Log(n, 2) but computed directly from the bit length rather than by
// float approximation and correction.
func Log2(bits int, n []uint64) (int, error) {
	if limb.IsZero(n) {
		return 0, &Error{Kind: InvalidDigit, Msg: "wuint: log of zero is undefined"}
	}
	return limb.BitLen(n) - 1, nil
}

// Log10 returns floor(log10(n)) by calling Log with base 10; it has no
// dedicated decimal-digit-count table.
func Log10(bits int, n []uint64) (int, error) {
	return Log(bits, n, 10)
}

// Root returns the largest x such that x^degree <= n, via Newton's
// method seeded from approx_pow2(approx_log2(n)/degree), with a final
// verification step (x^degree <= n < (x+1)^degree).
func Root(bits int, z, n []uint64, degree int) error {
	if degree <= 0 {
		return &Error{Kind: InvalidRadix, Msg: "wuint: root degree must be >= 1"}
	}
	nw := len(z)
	if limb.IsZero(n) || degree == 1 {
		copy(z, n)
		return nil
	}

	seedF := ApproxLog2(n) / float64(degree)
	x := make([]uint64, nw)
	ApproxPow2(bits, x, seedF)
	if limb.IsZero(x) {
		x[0] = 1
	}

	degreeLimbs := make([]uint64, nw)
	degreeLimbs[0] = uint64(degree)
	degreeMinus1 := make([]uint64, nw)
	degreeMinus1[0] = uint64(degree - 1)

	for iter := 0; iter < 64; iter++ {
		// x_{k+1} = ((degree-1)*x_k + n/x_k^(degree-1)) / degree
		powXk1 := make([]uint64, nw)
		powBase(powXk1, x, degree-1, nw)

		quotient := make([]uint64, nw)
		if limb.IsZero(powXk1) {
			break
		}
		remainder := make([]uint64, nw)
		limb.DivRem(quotient, remainder, n, powXk1)

		term1Wide := make([]uint64, 2*nw)
		limb.MulNxN(term1Wide, degreeMinus1, x)
		term1 := term1Wide[:nw]

		numerator := make([]uint64, nw)
		limb.AddN(numerator, term1, quotient)

		next := make([]uint64, nw)
		rem2 := make([]uint64, nw)
		limb.DivRem(next, rem2, numerator, degreeLimbs)

		if limb.Equal(next, x) {
			break
		}
		copy(x, next)
	}

	// Final correction: x^degree may be one off due to truncation.
	adjustRoot(x, n, degreeLimbs, degree, nw)
	copy(z, x)
	return nil
}

func adjustRoot(x, n, degreeLimbs []uint64, degree, nw int) {
	power := make([]uint64, nw)
	for {
		if !powBase(power, x, degree, nw) && limb.Cmp(power, n) <= 0 {
			break
		}
		limb.Dec(x, x)
	}
	for {
		next := make([]uint64, nw)
		limb.AddN(next, x, oneLimbs(nw))
		if powBase(power, next, degree, nw) || limb.Cmp(power, n) > 0 {
			break
		}
		limb.Inc(x, x)
	}
}

func oneLimbs(n int) []uint64 {
	z := make([]uint64, n)
	z[0] = 1
	return z
}
