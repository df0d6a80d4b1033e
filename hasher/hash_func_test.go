package hasher

import (
	"testing"

	routines "github.com/xaionaro-go/chainmap/internal/mapRoutines"
)

func TestHashCollisions_xxhash_buckets16_keyAmount16(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 16, 16)
}
func TestHashCollisions_xxhash_buckets1024_keyAmount64(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 1024, 64)
}
func TestHashCollisions_xxhash_buckets1024_keyAmount1024(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 1024, 1024)
}
func TestHashCollisions_xxhash_buckets65536_keyAmount4096(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 65536, 4096)
}
func TestHashCollisions_xxhash_buckets65536_keyAmount65536(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 65536, 65536)
}

func TestHashCollisions_siphash_buckets16_keyAmount16(t *testing.T) {
	routines.DoTestHashCollisions(t, NewSipHash(), 16, 16)
}
func TestHashCollisions_siphash_buckets1024_keyAmount1024(t *testing.T) {
	routines.DoTestHashCollisions(t, NewSipHash(), 1024, 1024)
}
func TestHashCollisions_siphash_buckets65536_keyAmount4096(t *testing.T) {
	routines.DoTestHashCollisions(t, NewSipHash(), 65536, 4096)
}

// the bucket count is not required to be a power of 2
func TestHashCollisions_xxhash_buckets1000_keyAmount1000(t *testing.T) {
	routines.DoTestHashCollisions(t, New(), 1000, 1000)
}

func TestHashDeterminism(t *testing.T) {
	for _, h := range []Hasher{New(), NewSipHash()} {
		keys := routines.GenerateKeys(1024)
		for _, key := range keys {
			if h.Hash(key) != h.Hash(key) {
				t.Errorf("The hash of %v is not deterministic", key)
			}
		}
	}
}

func TestCompressHashRange(t *testing.T) {
	h := New()
	for _, buckets := range []uint64{1, 7, 8, 1000, 1024, 65536, 1 << 20} {
		for _, key := range routines.GenerateKeys(128) {
			idx := h.CompressHash(buckets, h.Hash(key))
			if idx >= buckets {
				t.Errorf("An out-of-range index: %v >= %v", idx, buckets)
			}
		}
	}
}

func TestIsValidKey(t *testing.T) {
	if !IsValidKey("foo") {
		t.Errorf(`"foo" should be a valid key`)
	}
	if !IsValidKey("") {
		t.Errorf(`an empty key should be a valid key`)
	}
	if IsValidKey("foo\x00bar") {
		t.Errorf(`a key with a NUL byte should be invalid`)
	}
}

func BenchmarkHash_xxhash(b *testing.B) {
	h := New()
	for i := 0; i < b.N; i++ {
		h.Hash("benchmark key")
	}
}

func BenchmarkHash_siphash(b *testing.B) {
	h := NewSipHash()
	for i := 0; i < b.N; i++ {
		h.Hash("benchmark key")
	}
}
