package wuint

import "github.com/gowide/wuint/internal/limb"

// MulRedc computes result = a*b*R^-1 mod m via Montgomery's CIOS
// algorithm, where R = 2^(64*len(m)). m must be odd; a and b are
// assumed already reduced and already in Montgomery form. inv is the
// precomputed Montgomery constant from MontgomeryInv(m[0]).
func MulRedc(z, a, b, m []uint64, inv uint64) error {
	if m[0]&1 == 0 {
		return &Error{Kind: InvalidDigit, Msg: "wuint: mul_redc requires an odd modulus"}
	}
	limb.MulRedc(z, a, b, m, inv)
	return nil
}

// SquareRedc computes result = a*a*R^-1 mod m.
func SquareRedc(z, a, m []uint64, inv uint64) error {
	if m[0]&1 == 0 {
		return &Error{Kind: InvalidDigit, Msg: "wuint: square_redc requires an odd modulus"}
	}
	limb.SquareRedc(z, a, m, inv)
	return nil
}

// MontgomeryInv computes -m0^-1 mod 2^64, the constant MulRedc and
// SquareRedc require as their inv parameter.
func MontgomeryInv(m0 uint64) uint64 {
	return limb.MontgomeryInv(m0)
}

// ToMontgomery converts x into Montgomery form relative to modulus m
// (x*R mod m), given r2ModM = R^2 mod m.
func ToMontgomery(z, x, r2ModM, m []uint64, inv uint64) {
	limb.MulRedc(z, x, r2ModM, m, inv)
}

// FromMontgomery converts xMont out of Montgomery form (xMont*R^-1 mod m).
func FromMontgomery(z, xMont, m []uint64, inv uint64) {
	one := make([]uint64, len(z))
	one[0] = 1
	limb.MulRedc(z, xMont, one, m, inv)
}
