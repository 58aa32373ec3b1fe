package limb

// Shl shifts x left by k bits into z (same length as x); bits shifted
// past the top of the slice are discarded. z may alias x. Callers that
// need to know whether any such bits were set should test separately
// (e.g. with Shr by the complementary amount before shifting).
func Shl(z, x []uint64, k uint) {
	n := len(x)
	if n == 0 {
		return
	}
	words := int(k / 64)
	bits := uint(k % 64)

	if words >= n {
		SetZero(z)
		return
	}

	if bits == 0 {
		for i := n - 1; i >= words; i-- {
			z[i] = x[i-words]
		}
	} else {
		for i := n - 1; i >= words; i-- {
			srcIdx := i - words
			cur := x[srcIdx] << bits
			var lo uint64
			if srcIdx > 0 {
				lo = x[srcIdx-1] >> (64 - bits)
			}
			z[i] = cur | lo
		}
	}
	for i := 0; i < words; i++ {
		z[i] = 0
	}
}

// Shr shifts x right by k bits into z (same length as x). z may alias x.
func Shr(z, x []uint64, k uint) {
	n := len(x)
	if n == 0 {
		return
	}
	words := int(k / 64)
	bits := uint(k % 64)

	if words >= n {
		SetZero(z)
		return
	}

	if bits == 0 {
		for i := 0; i < n-words; i++ {
			z[i] = x[i+words]
		}
	} else {
		for i := 0; i < n-words; i++ {
			srcIdx := i + words
			cur := x[srcIdx] >> bits
			var hi uint64
			if srcIdx+1 < n {
				hi = x[srcIdx+1] << (64 - bits)
			}
			z[i] = cur | hi
		}
	}
	for i := n - words; i < n; i++ {
		z[i] = 0
	}
}

// RotL rotates x left by k bits (mod 64*len(x)) into z using the two
// scratch buffers provided by the caller (each must have length
// len(x)); z must not alias x, lo or hi.
func RotL(z, x, lo, hi []uint64, k uint) {
	n := len(x)
	if n == 0 {
		return
	}
	total := uint(n) * 64
	k %= total
	if k == 0 {
		copy(z, x)
		return
	}
	Shl(lo, x, k)
	Shr(hi, x, total-k)
	AddN(z, lo, hi) // disjoint bit ranges: a plain OR, carry-free add
}

// RotR rotates x right by k bits (mod 64*len(x)) into z, using the
// same scratch convention as RotL.
func RotR(z, x, lo, hi []uint64, k uint) {
	n := len(x)
	if n == 0 {
		return
	}
	total := uint(n) * 64
	k %= total
	RotL(z, x, lo, hi, total-k)
}
