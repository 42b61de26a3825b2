package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Infer   bool
	Merge   bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLROWS_DEBUG_PARSE")
	d.Infer = boolEnv("YAMLROWS_DEBUG_INFER")
	d.Merge = boolEnv("YAMLROWS_DEBUG_MERGE")
	d.Convert = boolEnv("YAMLROWS_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Infer() bool {
	return d.Infer
}
func Merge() bool {
	return d.Merge
}
func Convert() bool {
	return d.Convert
}

// Logf writes a formatted trace line to stderr. Arguments implementing
// fmt.Stringer are rendered with String.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
