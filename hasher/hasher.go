package hasher

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Hasher = I.Hasher

type xxHasher struct {
	seed uint64
}

// New returns the default hasher: xxhash-64 of the key mixed with a random
// per-hasher seed. Hashing a string key doesn't allocate.
func New() Hasher {
	return &xxHasher{seed: randomSeed()}
}

func (h *xxHasher) Hash(key I.Key) uint64 {
	return hashString(h.seed, key)
}

func (h *xxHasher) CompressHash(buckets uint64, fullHash uint64) uint64 {
	return CompressHash(buckets, fullHash)
}

type sipHasher struct {
	k0 uint64
	k1 uint64
}

// NewSipHash returns a SipHash-2-4 based hasher with a random 128 bit key.
func NewSipHash() Hasher {
	return &sipHasher{k0: randomSeed(), k1: randomSeed()}
}

func (h *sipHasher) Hash(key I.Key) uint64 {
	return sipHashString(h.k0, h.k1, key)
}

func (h *sipHasher) CompressHash(buckets uint64, fullHash uint64) uint64 {
	return CompressHash(buckets, fullHash)
}
