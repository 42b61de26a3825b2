package rows

import "errors"

var ErrConfig = errors.New("invalid read options")
