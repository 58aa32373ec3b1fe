package limb

// GCD computes z = gcd(x, y) using the binary GCD algorithm. x and y
// are not mutated. All slices must share the same length n.
func GCD(z, x, y []uint64) {
	n := len(z)
	a := make([]uint64, n)
	b := make([]uint64, n)
	copy(a, x)
	copy(b, y)

	if IsZero(a) {
		copy(z, b)
		return
	}
	if IsZero(b) {
		copy(z, a)
		return
	}

	shift := minInt(TrailingZeros(a), TrailingZeros(b))
	tmp := make([]uint64, n)
	Shr(tmp, a, uint(TrailingZeros(a)))
	copy(a, tmp)

	for {
		Shr(tmp, b, uint(TrailingZeros(b)))
		copy(b, tmp)

		if Cmp(a, b) > 0 {
			a, b = b, a
		}
		SubN(b, b, a)
		if IsZero(b) {
			break
		}
	}

	Shl(z, a, uint(shift))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ModInverse computes z such that a*z ≡ 1 (mod m), returning ok=false
// if a has no inverse modulo m (i.e. gcd(a, m) != 1). It runs the
// classical extended Euclidean algorithm on the true (a, m) remainder
// sequence while tracking the Bezout coefficient for a as a residue
// mod m throughout, which keeps every intermediate value within n
// limbs without needing signed bignum arithmetic. All slices share
// length n.
func ModInverse(z, a, m []uint64) (ok bool) {
	n := len(z)
	if IsZero(a) || IsZero(m) {
		return false
	}

	oldR := make([]uint64, n)
	r := make([]uint64, n)
	copy(oldR, a)
	copy(r, m)
	ModReduceInto(oldR, oldR, m)

	oldS := make([]uint64, n)
	s := make([]uint64, n)
	oldS[0] = 1

	q := make([]uint64, n)
	rem := make([]uint64, n)
	qs := make([]uint64, n)
	full := make([]uint64, 2*n)
	newS := make([]uint64, n)

	for !IsZero(r) {
		DivRem(q, rem, oldR, r)

		MulNxN(full, q, s)
		ModReduceWide(qs, full, m)

		borrow := SubN(newS, oldS, qs)
		if borrow != 0 {
			AddN(newS, newS, m)
		}

		copy(oldR, r)
		copy(r, rem)
		copy(oldS, s)
		copy(s, newS)
	}

	// oldR now holds gcd(a, m).
	if !(EffectiveLen(oldR) == 1 && oldR[0] == 1) {
		return false
	}
	copy(z, oldS)
	return true
}
