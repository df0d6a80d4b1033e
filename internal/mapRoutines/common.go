package mapRoutines

import (
	"encoding/hex"
	"math/rand"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

type MapFactoryFunc func(buckets uint64, keyHasher I.Hasher) I.Map

// GenerateKeys returns the given amount of distinct random keys. The random
// bytes are hex-encoded: a key is not allowed to contain a NUL byte.
func GenerateKeys(keyAmount uint64) []I.Key {
	resultMap := map[I.Key]bool{}
	for uint64(len(resultMap)) < keyAmount {
		newKey := make([]byte, 8)
		rand.Read(newKey)
		resultMap[hex.EncodeToString(newKey)] = true
	}

	i := 0
	result := make([]I.Key, keyAmount)
	for newKey := range resultMap {
		result[i] = newKey
		i++
	}
	return result
}
