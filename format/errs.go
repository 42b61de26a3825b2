package format

import "errors"

var ErrBadFormat = errors.New("bad format")
