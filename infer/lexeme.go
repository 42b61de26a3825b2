package infer

import (
	"math"
	"strconv"
	"strings"
)

var (
	trueLexemes  = map[string]bool{"true": true, "yes": true, "on": true, "y": true, "t": true}
	falseLexemes = map[string]bool{"false": true, "no": true, "off": true, "n": true, "f": true}
)

// IsNullLexeme reports whether s is empty, null or ~.
func IsNullLexeme(s string) bool {
	switch s {
	case "", "~", "null", "Null", "NULL":
		return true
	}
	return false
}

// ParseBool matches s case insensitively against the boolean aliases.
func ParseBool(s string) (val, ok bool) {
	l := strings.ToLower(s)
	switch {
	case trueLexemes[l]:
		return true, true
	case falseLexemes[l]:
		return false, true
	}
	return false, false
}

// IsBoolLexeme reports whether s is one of the boolean aliases.
func IsBoolLexeme(s string) bool {
	_, ok := ParseBool(s)
	return ok
}

// ParseSpecialFloat recognises infinities and NaN, case insensitively, in
// both the plain and the dotted YAML spelling.
func ParseSpecialFloat(s string) (float64, bool) {
	l := strings.ToLower(s)
	sign := 1.0
	switch {
	case strings.HasPrefix(l, "-"):
		sign = -1
		l = l[1:]
	case strings.HasPrefix(l, "+"):
		l = l[1:]
	}
	l = strings.TrimPrefix(l, ".")
	switch l {
	case "inf", "infinity":
		return math.Inf(int(sign)), true
	case "nan":
		if sign < 0 || len(s) > 0 && s[0] == '+' {
			return 0, false
		}
		return math.NaN(), true
	}
	return 0, false
}

// ParseInteger parses a base 10 integer consuming all of s. Lexemes with
// leading zeros are not integers.
func ParseInteger(s string) (int64, bool) {
	if hasLeadingZero(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDouble parses a decimal floating point number consuming all of s.
// Special float lexemes are handled by ParseSpecialFloat. As with integers,
// a leading zero in the integer part is not a number.
func ParseDouble(s string) (float64, bool) {
	if f, ok := ParseSpecialFloat(s); ok {
		return f, true
	}
	if s == "" || hasLeadingZero(integerPart(s)) || strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	l := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(l, "inf") || strings.HasPrefix(l, "nan") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IntegralDouble returns f as an int64 when it is a whole number in range.
func IntegralDouble(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// integerPart returns s up to its decimal point or exponent.
func integerPart(s string) string {
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		return s[:i]
	}
	return s
}

// hasLeadingZero reports whether s is an all digit lexeme, after an
// optional sign, that starts with a redundant 0.
func hasLeadingZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
