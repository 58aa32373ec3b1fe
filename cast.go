package wuint

import "golang.org/x/exp/constraints"

// FromUint constructs a Wide of the given bit width from any unsigned
// primitive integer type, replacing what would otherwise be one
// hand-written FromUint8/16/32/64 function per menu type with a
// single generic entry point shared by all of them.
func FromUint[T constraints.Unsigned](bits int, v T) (Wide, error) {
	return WideFromUint64(bits, uint64(v))
}

// TryFromUint narrows a Wide value down to a primitive unsigned type,
// failing if the value does not fit in T's range.
func TryFromUint[T constraints.Unsigned](w Wide) (T, error) {
	size := bitSizeOf[T]()
	if BitLen(w.bits, w.limbs) > size {
		return 0, errOverflow(size)
	}
	var lo uint64
	if len(w.limbs) > 0 {
		lo = w.limbs[0]
	}
	return T(lo), nil
}

func bitSizeOf[T constraints.Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}
