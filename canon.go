package wuint

import "github.com/gowide/wuint/internal/limb"

// LimbCount returns L = ceil(bits/64), the number of 64-bit limbs
// needed to represent a value of the given bit width.
func LimbCount(bits int) int {
	if bits <= 0 {
		return 0
	}
	return (bits + 63) / 64
}

// TopMask returns the bitmask that keeps only the valid bits of the
// top limb of a value with the given bit width; it is all-ones when
// bits is a multiple of 64 (including 0, where it is unused).
func TopMask(bits int) uint64 {
	if bits <= 0 || bits%64 == 0 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits%64) - 1
}

// canonicalize clears any bits in limbs above position bits-1,
// restoring the invariant every constructed value must satisfy.
func canonicalize(limbs []uint64, bits int) {
	limb.MaskTop(limbs, bits)
}

// isCanonical reports whether limbs already satisfies the
// top-limb-mask invariant for the given bit width.
func isCanonical(limbs []uint64, bits int) bool {
	if len(limbs) == 0 {
		return true
	}
	return limbs[len(limbs)-1]&^TopMask(bits) == 0
}

// pad computes the number of padding bits between the logical width
// and the full 64*L capacity of its limb array.
func pad(bits int) int {
	l := LimbCount(bits)
	return l*64 - bits
}
