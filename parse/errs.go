package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse             = errors.New("parse error")
	ErrDocumentTooLarge  = fmt.Errorf("%w: document too large", ErrParse)
	ErrNegativeSizeLimit = errors.New("negative document size limit")
	ErrExcessiveAliasing = fmt.Errorf("%w: excessive aliasing", ErrParse)
	ErrTooManyNodes      = fmt.Errorf("%w: too many nodes", ErrParse)
)
