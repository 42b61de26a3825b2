package infer

import (
	"strings"

	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"
)

// DetectScalar returns the narrowest type id matching lexeme. Null lexemes
// give schema.Null; callers finalize it to a string column.
func DetectScalar(lexeme string) schema.ID {
	if IsNullLexeme(lexeme) {
		return schema.Null
	}
	if IsBoolLexeme(lexeme) {
		return schema.Boolean
	}
	if maybeTemporal(lexeme) {
		if id, ok := DetectTemporal(lexeme); ok {
			return id
		}
	}
	if _, ok := ParseSpecialFloat(lexeme); ok {
		return schema.Double
	}
	if v, ok := ParseInteger(lexeme); ok {
		return schema.IntegerFor(v)
	}
	if f, ok := ParseDouble(lexeme); ok {
		if v, ok := IntegralDouble(f); ok {
			return schema.IntegerFor(v)
		}
		return schema.Double
	}
	return schema.String
}

// DetectTemporal tries date, timestamp and time in that order.
func DetectTemporal(lexeme string) (schema.ID, bool) {
	if _, ok := value.ParseDate(lexeme); ok {
		return schema.Date, true
	}
	if _, ok := value.ParseTimestamp(lexeme); ok {
		return schema.Timestamp, true
	}
	if _, ok := value.ParseTime(lexeme); ok {
		return schema.Time, true
	}
	return 0, false
}

func maybeTemporal(s string) bool {
	if strings.ContainsAny(s, ":T") {
		return true
	}
	return strings.LastIndexByte(s, '-') > 0
}
