package core

import "errors"

// ErrConfiguration is wrapped by every parameter validation failure in this
// module. Callers match it with errors.Is.
var ErrConfiguration = errors.New("invalid configuration")
