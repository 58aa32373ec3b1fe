// Package litsuffix parses the suffixed integer literal grammar
// `<digits>[ _<digits> ]* _ (U|B) <width-digits>`, where `<digits>` may
// be prefixed `0x`, `0o`, or `0b`. It is the runtime half of the
// literal transform: cmd/wuintgen walks source looking for marker
// calls carrying tokens in this grammar and uses this package to
// validate and evaluate them at generation time, the way a macro
// would at compile time in a language that has them.
package litsuffix

import (
	"strconv"
	"strings"

	"github.com/gowide/wuint"
)

// Kind distinguishes the two literal suffixes: U for the numeric
// U[B] type, B for the bit-container Bits[B] type.
type Kind byte

const (
	KindU Kind = 'U'
	KindB Kind = 'B'
)

// Literal is a parsed, not-yet-evaluated suffixed token.
type Literal struct {
	Kind  Kind
	Width int
	Radix int
	// Digits holds the numeric portion with underscores and any 0x/0o/0b
	// prefix stripped, ready to hand to a radix parser.
	Digits string
}

// Parse splits a token of the form "602214076_U256" or "0x1a2b_B16"
// into its numeric body and suffix. It does not evaluate the body or
// check it against the width; use Eval for that.
func Parse(token string) (Literal, error) {
	idx := suffixIndex(token)
	if idx < 0 {
		return Literal{}, &ParseError{Token: token, Msg: "no _U or _B suffix found"}
	}

	body := token[:idx]
	suffix := token[idx+1:]
	if body == "" {
		return Literal{}, &ParseError{Token: token, Msg: "empty literal body"}
	}

	kind := Kind(suffix[0])
	if kind != KindU && kind != KindB {
		return Literal{}, &ParseError{Token: token, Msg: "suffix must start with U or B"}
	}
	widthDigits := suffix[1:]
	if widthDigits == "" {
		return Literal{}, &ParseError{Token: token, Msg: "missing width digits after " + string(kind)}
	}
	width, err := strconv.Atoi(widthDigits)
	if err != nil || width < 0 {
		return Literal{}, &ParseError{Token: token, Msg: "invalid width digits: " + widthDigits}
	}

	radix := 10
	digits := body
	switch {
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		radix, digits = 16, body[2:]
	case strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0O"):
		radix, digits = 8, body[2:]
	case strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B"):
		radix, digits = 2, body[2:]
	}
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return Literal{}, &ParseError{Token: token, Msg: "empty literal body after radix prefix"}
	}

	return Literal{Kind: kind, Width: width, Radix: radix, Digits: digits}, nil
}

// suffixIndex locates the mandatory underscore that introduces a U or
// B suffix, scanning from the right so an ordinary underscore digit
// separator earlier in the token is not mistaken for it. Per spec.md
// §4.5, a hex token ending in a bare "B" (no preceding underscore) is
// a hex digit, not a Bits[B] suffix, so only an underscore-introduced
// "U" or "B" followed by decimal width digits counts.
func suffixIndex(token string) int {
	for i := len(token) - 1; i > 0; i-- {
		if token[i] != 'U' && token[i] != 'B' {
			continue
		}
		if token[i-1] != '_' {
			continue
		}
		if i+1 >= len(token) {
			continue
		}
		if _, err := strconv.Atoi(token[i+1:]); err != nil {
			continue
		}
		return i - 1
	}
	return -1
}

// Eval parses and evaluates token against its declared width, in one
// step, returning the constructed dynamic value. It rejects any token
// whose value is >= 2^Width (spec.md testable property 12 / scenario F).
func Eval(token string) (wuint.Wide, Kind, error) {
	lit, err := Parse(token)
	if err != nil {
		return wuint.Wide{}, 0, err
	}

	v, err := wuint.WideFromStrRadix(lit.Width, lit.Digits, lit.Radix)
	if err != nil {
		return wuint.Wide{}, 0, &ParseError{Token: token, Msg: err.Error()}
	}
	return v, lit.Kind, nil
}

// ParseError reports a malformed or out-of-range literal token,
// carrying the original token text for the caller's diagnostic (a
// build-time error from cmd/wuintgen, or a direct error return from
// Eval called at runtime).
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return "litsuffix: " + e.Msg + ": " + e.Token
}
