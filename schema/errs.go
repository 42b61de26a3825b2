package schema

import "errors"

var ErrBadType = errors.New("bad type")
