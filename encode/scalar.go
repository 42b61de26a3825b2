package encode

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScalarLexeme returns the YAML lexeme the emitter uses for the Go scalar v,
// for example "5" for int64(5), ".inf" for +Inf or "true" for true.
func ScalarLexeme(v any) (string, error) {
	yn := &yaml.Node{}
	if err := yn.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if yn.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: %T is not a scalar", ErrEncoding, v)
	}
	return yn.Value, nil
}
