/*
Package wuint provides U[B], the ring of integers modulo 2^B for a
menu of compile-time bit widths (U8, U10, U64, U128, U192, U256, U512),
plus Wide, a dynamically-sized escape hatch for any other width. Bits8,
Bits10, Bits64, Bits128, Bits192, Bits256, Bits512, and WideBits are
the structurally identical, arithmetic-free siblings of those types.

U256 and its siblings are value types; every operation returns a new
value rather than mutating its receiver.

Simple example:

	a := U256From64(42)
	b, _ := U256FromStrRadix("f00f", 16)
	fmt.Println(a.WrappingAdd(b))

Every binary arithmetic operation comes in wrapping, checked,
overflowing, saturating, and plain flavors (see ARITHMETIC.md-equivalent
doc comments on arith.go); division and remainder form a separate
family (CheckedDiv, CheckedRem, DivRem, DivCeil) that reports
division-by-zero explicitly rather than silently wrapping.

The underlying algorithms (add/sub/mul/div/shift/gcd/Montgomery
reduction) live in internal/limb and operate on plain []uint64 limb
slices; this package and the per-width types are thin wrappers around
that core. The value types themselves are fixed-size arrays, but many
operations (multiplication, division, modular arithmetic, gcd,
rotation, formatting) allocate scratch slices per call; Wide and
WideBits also allocate their storage on construction.
*/
package wuint
