package parse

import (
	"github.com/signadot/serde/ir"
)

var (
	ErrParse = ir.ErrParse
)
