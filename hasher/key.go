package hasher

import (
	"strings"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

// IsValidKey reports whether the key can be represented unambiguously by the
// key encoding. A NUL byte acts as a terminator in the underlying
// representation, so keys containing one are rejected.
func IsValidKey(key I.Key) bool {
	return strings.IndexByte(key, 0) < 0
}
