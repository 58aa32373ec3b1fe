package limb

// ModReduceInto computes z = x mod m (all length n). z may alias x.
func ModReduceInto(z, x, m []uint64) {
	n := len(z)
	q := make([]uint64, n)
	xc := make([]uint64, n)
	copy(xc, x)
	DivRem(q, z, xc, m)
}

// ModReduceWide reduces a double-width value (length 2n) modulo an
// n-limb modulus m, storing the n-limb result in z. It is the
// workhorse behind allocation-light mul_mod: callers multiply into a
// 2n-limb scratch buffer and reduce with this function.
func ModReduceWide(z []uint64, wide []uint64, m []uint64) {
	n := len(z)
	wn := len(wide)
	q := make([]uint64, wn)
	r := make([]uint64, wn)
	mPad := make([]uint64, wn)
	copy(mPad, m)
	DivRem(q, r, wide, mPad)
	copy(z, r[:n])
}
