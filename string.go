package wuint

import (
	"strings"

	"github.com/gowide/wuint/internal/limb"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitValue returns the numeric value of a single digit character
// under the standard 0-9, a-z (then A-Z for radix > 36) alphabet, or
// -1 if c is not a valid digit in any supported radix.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 36
	default:
		return -1
	}
}

// FromStrRadix parses s in the given radix (2..=64), ignoring
// underscore separators, case-insensitive for radix <= 36.
func FromStrRadix(bits int, z []uint64, s string, radix int) error {
	if radix < 2 || radix > 64 {
		return errRadix(s)
	}
	clean := strings.ReplaceAll(s, "_", "")
	if clean == "" {
		return errEmpty()
	}

	digits := make([]byte, len(clean))
	for i := 0; i < len(clean); i++ {
		c := clean[i]
		v := digitValue(c)
		if v < 0 {
			return errDigit(string(c), bits)
		}
		if radix <= 36 {
			// case-insensitive: fold A-Z (36..61) back to a-z (10..35)
			if v >= 36 {
				v -= 26
			}
		}
		if v >= radix {
			return errDigit(string(c), bits)
		}
		digits[i] = byte(v)
	}
	if err := FromBaseBE(bits, z, uint64(radix), digits); err != nil {
		if e, ok := err.(*Error); ok && e.Kind == Overflow {
			return errOverflowLit(s, bits)
		}
		return err
	}
	return nil
}

// FromStr dispatches on a 0x/0o/0b prefix, falling back to decimal.
func FromStr(bits int, z []uint64, s string) error {
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return FromStrRadix(bits, z, s[2:], 16)
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		return FromStrRadix(bits, z, s[2:], 8)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		return FromStrRadix(bits, z, s[2:], 2)
	default:
		return FromStrRadix(bits, z, s, 10)
	}
}

// FormatRadix formats x in the given radix (2..=36) using lowercase
// digits, most significant digit first. Zero formats as "0".
func FormatRadix(bits int, x []uint64, radix int) string {
	be := ToBaseBE(bits, x, uint64(radix))
	var sb strings.Builder
	sb.Grow(len(be))
	for _, d := range be {
		sb.WriteByte(digitAlphabet[d])
	}
	return sb.String()
}

// FormatDecimal formats x in base 10. Internally this proceeds by
// repeated divmod by 10^19 (the largest power of ten that fits in a
// uint64), one chunk of up to 19 decimal digits at a time, rather than
// divmod by 10 digit-by-digit.
func FormatDecimal(bits int, x []uint64) string {
	const chunkDivisor = uint64(1e19)
	n := len(x)
	rem := make([]uint64, n)
	copy(rem, x)
	div := make([]uint64, n)
	div[0] = chunkDivisor

	var chunks []uint64
	for {
		q := make([]uint64, n)
		r := make([]uint64, n)
		limb.DivRem(q, r, rem, div)
		chunks = append(chunks, r[0])
		copy(rem, q)
		if limb.IsZero(rem) {
			break
		}
	}

	var sb strings.Builder
	// Most significant chunk first, un-padded; the rest zero-padded to
	// 19 digits.
	last := len(chunks) - 1
	sb.WriteString(formatUint(chunks[last]))
	for i := last - 1; i >= 0; i-- {
		s := formatUint(chunks[i])
		for j := len(s); j < 19; j++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func formatUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// FormatHex formats x as lowercase (or uppercase) hex, no 0x prefix.
func FormatHex(bits int, x []uint64, upper bool) string {
	s := FormatRadix(bits, x, 16)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// FormatOctal formats x as octal, no 0o prefix.
func FormatOctal(bits int, x []uint64) string {
	return FormatRadix(bits, x, 8)
}

// FormatBinary formats x as binary, no 0b prefix.
func FormatBinary(bits int, x []uint64) string {
	return FormatRadix(bits, x, 2)
}
