package chainmap

import (
	"github.com/xaionaro-go/chainmap/errors"
)

var (
	NotFound    = errors.NotFound
	InvalidKey  = errors.InvalidKey
	NoSpaceLeft = errors.NoSpaceLeft
)
