package wuint

import (
	"fmt"

	"github.com/gowide/wuint/internal/limb"
)

// cmpLimbs compares two equal-length limb slices.
func cmpLimbs(x, y []uint64) int { return limb.Cmp(x, y) }

// formatVerb backs every generated type's fmt.Formatter implementation,
// supporting %d/%v (decimal), %x/%X (hex), %o (octal), %b (binary).
func formatVerb(f fmt.State, c rune, bits int, x []uint64) {
	var s string
	switch c {
	case 'd', 'v', 's':
		s = FormatDecimal(bits, x)
	case 'x':
		s = FormatHex(bits, x, false)
	case 'X':
		s = FormatHex(bits, x, true)
	case 'o':
		s = FormatOctal(bits, x)
	case 'b':
		s = FormatBinary(bits, x)
	default:
		s = FormatDecimal(bits, x)
	}
	fmt.Fprint(f, s)
}
