package limb

import "math/bits"

// EffectiveLen returns the index of the highest non-zero limb plus one,
// i.e. the length x would have with its leading (high) zero limbs
// trimmed. It returns 0 for an all-zero slice.
func EffectiveLen(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// DivRem computes q, r such that n = q*d + r, 0 <= r < d, given that d
// is not all-zero. q and r must have the same length as n; d may be
// shorter (high limbs implicitly zero) but must have the same length
// as n for simplicity of the caller's buffer management — pass a
// zero-padded copy if needed. DivRem panics if d is all-zero; callers
// are expected to have already turned that case into a proper error.
func DivRem(q, r, n, d []uint64) {
	dLen := EffectiveLen(d)
	if dLen == 0 {
		panic("limb: division by zero")
	}
	nLen := EffectiveLen(n)

	SetZero(q)
	SetZero(r)

	if dLen == 1 {
		divRemSmall(q, r, n[:nLen], d[0])
		return
	}

	if Cmp(n, d) < 0 {
		copy(r, n)
		return
	}

	divRemKnuth(q, r, n, d[:dLen])
}

// divRemSmall performs long division by a single-limb divisor,
// producing the quotient limbs (same length as the caller's buffer,
// zero-extended) MSB-first using a 128-bit remainder accumulator.
func divRemSmall(q, r, n []uint64, d uint64) {
	var rem uint64
	for i := len(n) - 1; i >= 0; i-- {
		hi, lo := rem, n[i]
		qi, ri := bits.Div64(hi, lo, d)
		q[i] = qi
		rem = ri
	}
	r[0] = rem
}

// divRemKnuth implements Knuth's Algorithm D (TAOCP vol 2, 4.3.1) on
// base 2^64 limbs. d must have at least 2 effective limbs; n and d
// share the same backing length (q, r, n, d all equal length); high
// limbs of d beyond dLen are assumed zero by the caller via slicing.
func divRemKnuth(q, r, n, d []uint64) {
	nLen := len(n)
	dLen := len(d)

	// Normalize: shift both operands left so the divisor's top bit is set.
	s := uint(bits.LeadingZeros64(d[dLen-1]))

	vn := make([]uint64, dLen)
	Shl(vn, d, s)

	// un holds the normalized dividend with one extra limb for overflow.
	un := make([]uint64, nLen+1)
	if s == 0 {
		copy(un, n)
	} else {
		Shl(un[:nLen], n, s)
		un[nLen] = n[nLen-1] >> (64 - s)
	}

	m := nLen - dLen // number of quotient digits beyond the lowest, per Knuth's m+n layout is nLen = dLen+m
	qbuf := make([]uint64, m+1)

	vHi := vn[dLen-1]
	vLo := vn[dLen-2]

	for j := m; j >= 0; j-- {
		// Estimate q-hat using the top two divisor limbs against the
		// top three available dividend limbs.
		numHi := un[j+dLen]
		numMid := un[j+dLen-1]

		var qhat, rhat uint64
		var rhatOverflowed bool
		if numHi >= vHi {
			qhat = ^uint64(0)
			rhat, rhatOverflowed = addOvf(vHi, numMid)
		} else {
			qhat, rhat = bits.Div64(numHi, numMid, vHi)
		}

		for !rhatOverflowed {
			if !aboveU64(qhat, vLo, rhat, un[j+dLen-2]) {
				break
			}
			qhat--
			newRhat, carry := addOvf(rhat, vHi)
			rhat = newRhat
			if carry {
				rhatOverflowed = true
			}
		}

		// Multiply-and-subtract qhat*divisor from the working window.
		borrow := SubMulWord(un[j:j+dLen], vn, qhat)
		if un[j+dLen] < borrow {
			// qhat was one too large; add the divisor back.
			qhat--
			carry := AddN(un[j:j+dLen], un[j:j+dLen], vn)
			un[j+dLen] = un[j+dLen] - borrow + carry
		} else {
			un[j+dLen] -= borrow
		}
		qbuf[j] = qhat
	}

	copy(q, qbuf)
	// Denormalize the remainder, which sits in the low dLen limbs of un.
	Shr(r[:dLen], un[:dLen], s)
}

// aboveU64 reports whether the double-word (qhat*vLo) exceeds the
// double-word (rhat:low), used to test whether the q-hat estimate
// overshoots. This mirrors Knuth's correction-loop test.
func aboveU64(qhat, vLo, rhiWord, loWord uint64) bool {
	hi, lo := bits.Mul64(qhat, vLo)
	if hi != rhiWord {
		return hi > rhiWord
	}
	return lo > loWord
}

// addOvf adds b to a and reports whether the result overflowed 64 bits.
func addOvf(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}
