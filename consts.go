package wuint

// Package-level numeric constants: float forms of the 64-bit limb range
// and the host int width.

const (
	maxUint64Float  = float64(1<<64-1)     // (1<<64) - 1
	wrapUint64Float = float64(1<<64-1) + 1 // 1 << 64

	// intSize is the bit width of the host int type.
	intSize = 32 << (^uint(0) >> 63)
)
