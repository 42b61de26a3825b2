package convert

import (
	"strconv"
	"strings"

	"github.com/signadot/yamlrows/infer"
)

const structural = ":{}[],&*#?|-<>=!%@\\\"'`\n\t "

// NeedsQuote reports whether s must be single quoted to read back as the
// same string: it is empty, a null or boolean alias, a number, or it holds
// a character with structural meaning.
func NeedsQuote(s string) bool {
	switch {
	case s == "":
		return true
	case infer.IsNullLexeme(s), strings.EqualFold(s, "null"):
		return true
	case infer.IsBoolLexeme(s):
		return true
	case strings.ContainsAny(s, structural):
		return true
	}
	return isNumeric(s)
}

// isNumeric covers the lexemes a YAML reader may resolve to a number,
// including forms DetectScalar treats as strings.
func isNumeric(s string) bool {
	if _, ok := infer.ParseDouble(s); ok {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	plain := strings.ReplaceAll(s, "_", "")
	if _, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return true
	}
	return strings.HasPrefix(plain, "0o") || strings.HasPrefix(plain, "0x") || strings.HasPrefix(plain, "0b")
}
