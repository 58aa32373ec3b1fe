package wuint

import "github.com/gowide/wuint/internal/limb"

// ByteWidth returns ceil(bits/8), the exact byte-array length for a
// value of the given bit width.
func ByteWidth(bits int) int {
	return (bits + 7) / 8
}

// FromLEBytes decodes a little-endian byte slice of exactly
// ByteWidth(bits) bytes into limbs. Bits at positions >= bits are
// discarded.
func FromLEBytes(bits int, z []uint64, b []byte) {
	limb.SetZero(z)
	for i, v := range b {
		z[i/8] |= uint64(v) << uint((i%8)*8)
	}
	canonicalize(z, bits)
}

// FromBEBytes decodes a big-endian byte slice of exactly
// ByteWidth(bits) bytes into limbs.
func FromBEBytes(bits int, z []uint64, b []byte) {
	n := len(b)
	limb.SetZero(z)
	for i, v := range b {
		pos := n - 1 - i
		z[pos/8] |= uint64(v) << uint((pos%8)*8)
	}
	canonicalize(z, bits)
}

// ToLEBytes encodes x into a little-endian byte slice of exactly
// ByteWidth(bits) bytes.
func ToLEBytes(bits int, x []uint64) []byte {
	n := ByteWidth(bits)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(x[i/8] >> uint((i%8)*8))
	}
	return out
}

// ToBEBytes encodes x into a big-endian byte slice of exactly
// ByteWidth(bits) bytes.
func ToBEBytes(bits int, x []uint64) []byte {
	le := ToLEBytes(bits, x)
	n := len(le)
	out := make([]byte, n)
	for i, v := range le {
		out[n-1-i] = v
	}
	return out
}

// TryFromLESlice decodes a little-endian slice of arbitrary length,
// zero-padding short input and rejecting bits set above the target
// width in excess limbs/bytes.
func TryFromLESlice(bits int, z []uint64, b []byte) error {
	n := ByteWidth(bits)
	limb.SetZero(z)
	for i, v := range b {
		if i >= n {
			if v != 0 {
				return errLength(bits)
			}
			continue
		}
		z[i/8] |= uint64(v) << uint((i%8)*8)
	}
	if !isCanonical(z, bits) {
		return errOverflow(bits)
	}
	return nil
}

// TryFromBESlice decodes a big-endian slice of arbitrary length,
// zero-padding short input (on the high/left side) and rejecting
// excess non-zero high bytes.
func TryFromBESlice(bits int, z []uint64, b []byte) error {
	n := ByteWidth(bits)
	extra := len(b) - n
	limb.SetZero(z)
	if extra > 0 {
		for _, v := range b[:extra] {
			if v != 0 {
				return errLength(bits)
			}
		}
		b = b[extra:]
	}
	ln := len(b)
	for i, v := range b {
		pos := ln - 1 - i
		z[pos/8] |= uint64(v) << uint((pos%8)*8)
	}
	if !isCanonical(z, bits) {
		return errOverflow(bits)
	}
	return nil
}

// AsLESlice reinterprets limbs as their canonical little-endian byte
// view. On a little-endian host this would be zero-copy; since Go
// offers no portable way to alias a []uint64 as []byte without "unsafe",
// and this module avoids unsafe entirely, it always returns a fresh
// copy, which also keeps behavior identical on big-endian hosts.
func AsLESlice(bits int, x []uint64) []byte {
	return ToLEBytes(bits, x)
}

// CopyLETo writes the little-endian byte representation of x into dst,
// which must be at least ByteWidth(bits) long.
func CopyLETo(bits int, dst []byte, x []uint64) {
	n := ByteWidth(bits)
	for i := 0; i < n; i++ {
		dst[i] = byte(x[i/8] >> uint((i%8)*8))
	}
}

// CopyBETo writes the big-endian byte representation of x into dst,
// which must be at least ByteWidth(bits) long.
func CopyBETo(bits int, dst []byte, x []uint64) {
	n := ByteWidth(bits)
	for i := 0; i < n; i++ {
		dst[n-1-i] = byte(x[i/8] >> uint((i%8)*8))
	}
}
