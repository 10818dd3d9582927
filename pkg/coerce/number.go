package coerce

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ib-77/listkata/pkg/rop"
	"github.com/ib-77/listkata/pkg/rop/chain"
	"github.com/ib-77/listkata/pkg/rop/solo"
)

var ErrNotANumber = errors.New("not a number")

// Parse converts s to a number. The result fails with ErrNotANumber when s
// holds anything other than a single numeric literal.
func Parse(s string) rop.Result[float64] {
	literal := strings.TrimFunc(s, isSpace)

	switch {
	case literal == "":
		return rop.Success(0.0)
	case literal == "Infinity" || literal == "+Infinity":
		return rop.Success(math.Inf(1))
	case literal == "-Infinity":
		return rop.Success(math.Inf(-1))
	}

	if base, digits, ok := radixPrefix(literal); ok {
		return solo.Try(solo.Succeed(digits), func(d string) (float64, error) {
			return parseRadix(s, d, base)
		})
	}

	if !isDecimal(literal) {
		return rop.Fail[float64](notANumber(s))
	}

	return solo.Try(solo.Succeed(literal), func(l string) (float64, error) {
		n, err := strconv.ParseFloat(l, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, notANumber(s)
		}
		// out of range literals saturate to ±Inf
		return n, nil
	})
}

// ToNumber is Parse with failures replaced by zero.
func ToNumber(s string) float64 {
	return solo.OrElse(Parse(s), 0)
}

// StripDollar removes a single leading "$".
func StripDollar(s string) string {
	return strings.TrimPrefix(s, "$")
}

// Dollars parses an amount such as "$12.50", falling back to zero.
func Dollars(s string) float64 {
	return chain.Then(chain.Map(chain.FromValue(s), StripDollar), Parse).OrElse(0)
}

func notANumber(s string) error {
	return fmt.Errorf("%q: %w", s, ErrNotANumber)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func radixPrefix(literal string) (base int, digits string, ok bool) {
	if len(literal) < 2 || literal[0] != '0' {
		return 0, "", false
	}
	switch literal[1] {
	case 'x', 'X':
		return 16, literal[2:], true
	case 'o', 'O':
		return 8, literal[2:], true
	case 'b', 'B':
		return 2, literal[2:], true
	}
	return 0, "", false
}

// parseRadix accumulates in float64 so literals wider than 64 bits still
// yield the nearest representable value.
func parseRadix(source, digits string, base int) (float64, error) {
	if digits == "" {
		return 0, notANumber(source)
	}

	var n float64
	for _, r := range digits {
		d := digitValue(r)
		if d < 0 || d >= base {
			return 0, notANumber(source)
		}
		n = n*float64(base) + float64(d)
	}
	return n, nil
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// isDecimal matches [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
func isDecimal(literal string) bool {
	i := 0
	if literal[i] == '+' || literal[i] == '-' {
		i++
	}

	mantissa := countDigits(literal, &i)
	if i < len(literal) && literal[i] == '.' {
		i++
		mantissa += countDigits(literal, &i)
	}
	if mantissa == 0 {
		return false
	}

	if i < len(literal) && (literal[i] == 'e' || literal[i] == 'E') {
		i++
		if i < len(literal) && (literal[i] == '+' || literal[i] == '-') {
			i++
		}
		if countDigits(literal, &i) == 0 {
			return false
		}
	}

	return i == len(literal)
}

func countDigits(s string, i *int) int {
	start := *i
	for *i < len(s) && s[*i] >= '0' && s[*i] <= '9' {
		*i++
	}
	return *i - start
}
