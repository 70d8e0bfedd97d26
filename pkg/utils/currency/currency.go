// Package currency converts dollar formatted values such as "$42.50" into
// float64.
package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const dollarMarker = "$"

// ParseDollar strips one leading "$" from s and parses the rest as a float.
// Surrounding whitespace is ignored. The second return value is false when
// the remainder is not a decimal float literal. A comma grouped amount such as
// "$1,234" and a hex literal such as "0x1p3" are rejected. Underscores are
// accepted between digits only, so "$1_000" parses and "$1__000" does not.
func ParseDollar(s string) (float64, bool) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, dollarMarker)
	v = strings.TrimSpace(v)
	if v == "" || isHexLiteral(v) {
		return 0, false
	}

	v, ok := stripDigitSeparators(v)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		// Out of range literals saturate to ±Inf or 0 like any float parser.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func isHexLiteral(v string) bool {
	v = strings.TrimLeft(v, "+-")
	return len(v) >= 2 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X')
}

// stripDigitSeparators removes "_" placed between two decimal digits. Any
// other underscore makes the literal invalid.
func stripDigitSeparators(v string) (string, bool) {
	if !strings.Contains(v, "_") {
		return v, true
	}

	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '_' {
			b.WriteByte(v[i])
			continue
		}
		if i == 0 || i == len(v)-1 || !isDigit(v[i-1]) || !isDigit(v[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ToFloat converts a string into float64 when it parses through ParseDollar.
// Any value that is not a string, and any string that fails to parse, is
// returned unchanged, so callers must handle both float64 and the original
// type.
func ToFloat(v any) any {
	x, ok := v.(string)
	if !ok {
		return v
	}
	if f, ok := ParseDollar(x); ok {
		return f
	}
	return v
}

// ToFloatStrings applies ToFloat to every value and returns the results in the
// same order.
func ToFloatStrings(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = ToFloat(v)
	}
	return out
}

// Format renders a ToFloat result back to text. float64 values use the
// shortest representation that round-trips, everything else is printed as is.
func Format(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
