package hasher

import (
	"math/rand"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/dchest/siphash"
)

const (
	knuthsMultiplicative8  = 179
	knuthsMultiplicative16 = 47351
	knuthsMultiplicative32 = 0x45d9f3b
)

var (
	seedSource = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randomSeed() uint64 {
	return seedSource.Uint64()
}

func hashString(seed uint64, in string) uint64 {
	return xxhash.ChecksumString64S(in, seed)
}

func sipHashString(k0, k1 uint64, in string) uint64 {
	return siphash.Hash(k0, k1, []byte(in))
}

// CompressHash makes a hash value uniform on the interval [0, buckets) even if
// "buckets" is not a power of 2
func CompressHash(buckets uint64, fullHash uint64) uint64 {
	subHash1 := uint32((fullHash >> 32) ^ (fullHash & 0xffffffff) ^ knuthsMultiplicative32)
	hash := uint64(subHash1 * knuthsMultiplicative32)
	if buckets > (2 << 31) {
		return hash % buckets
	}
	subHash2 := uint16((subHash1 >> 16) ^ (subHash1 & 0xffff) ^ knuthsMultiplicative16)
	hash ^= uint64(subHash2 * knuthsMultiplicative16)
	if buckets > (2 << 15) {
		return hash % buckets
	}
	subHash3 := uint8((subHash2 >> 8) ^ (subHash2 & 0xff) ^ knuthsMultiplicative8)
	hash ^= uint64(subHash3 * knuthsMultiplicative8)
	subHash4 := uint8((subHash3 >> 4) ^ (subHash3 & 0xf) ^ knuthsMultiplicative8)
	hash ^= uint64(subHash4 * knuthsMultiplicative8)
	return hash % buckets
}
