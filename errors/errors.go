package errors

import (
	"fmt"
)

var (
	NotFound    = fmt.Errorf("not found")
	InvalidKey  = fmt.Errorf("invalid key")
	NoSpaceLeft = fmt.Errorf("no space left")
)
