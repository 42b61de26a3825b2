package transcode

import "errors"

var ErrPatch = errors.New("patch error")
