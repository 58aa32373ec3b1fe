// This file contains a heavily modified version of math.Mod
// that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wuint

import (
	"math"

	"github.com/gowide/wuint/internal/limb"
)

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}

// ApproxLog2 approximates log2(x) as a float64, grounded on the
// leading-limb-plus-fraction technique ruint's log.rs uses to seed its
// integer root/log Newton iterations. It returns negative infinity
// for a zero value.
func ApproxLog2(x []uint64) float64 {
	if limb.IsZero(x) {
		return math.Inf(-1)
	}
	bl := limb.BitLen(x)
	top := x[(bl-1)/64]
	// Normalize the top limb's fractional bits into [1, 2).
	shift := uint((bl - 1) % 64)
	frac := float64(top>>shift) + fracBelow(x, bl, shift)
	return float64(bl-1) + math.Log2(frac)
}

// fracBelow extracts up to 53 bits below the leading bit of x as a
// fraction in [0, 1), for sub-limb precision in ApproxLog2.
func fracBelow(x []uint64, bitLen int, shift uint) float64 {
	if shift == 0 {
		return 0
	}
	idx := (bitLen - 1) / 64
	masked := x[idx] &^ (^uint64(0) << shift)
	return float64(masked) / float64(uint64(1)<<shift)
}

// ApproxLog computes log(x)/log(base) via ApproxLog2.
func ApproxLog(x []uint64, base float64) float64 {
	return ApproxLog2(x) / math.Log2(base)
}

// ApproxLog10 computes log10(x) via ApproxLog2.
func ApproxLog10(x []uint64) float64 {
	return ApproxLog2(x) * (1 / math.Log2(10))
}

// ApproxPow2 computes floor(2^f) into z, saturating at the maximum
// representable value for large f, at zero for negative f, and
// mapping NaN to zero — the float bridge's inverse of ApproxLog2.
func ApproxPow2(bits int, z []uint64, f float64) {
	if math.IsNaN(f) || f < 0 {
		limb.SetZero(z)
		return
	}
	if f >= float64(bits) {
		setMax(z, bits)
		return
	}
	whole := math.Floor(f)
	frac := f - whole
	mantissa := math.Exp2(frac) // in [1, 2)

	// mantissa has 53 bits of precision; place it at the right shift.
	const mantBits = 53
	scaled := uint64(mantissa * float64(uint64(1)<<mantBits))

	shift := int(whole) - mantBits
	limb.SetZero(z)
	if shift >= 0 {
		tmp := make([]uint64, len(z))
		tmp[0] = scaled
		limb.Shl(z, tmp, uint(shift))
	} else {
		tmp := make([]uint64, len(z))
		tmp[0] = scaled
		limb.Shr(z, tmp, uint(-shift))
	}
	canonicalize(z, bits)
}
