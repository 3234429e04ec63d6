package pkgconfig

import "errors"

var ErrDefaultChannel = errors.New("invalid default channel")
