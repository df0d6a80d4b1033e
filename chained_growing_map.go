package chainmap

import (
	"fmt"
	"log"

	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	growAtLoadFactor   = 0.75
	defaultBucketCount = 8
	growthFactor       = 2
	maximalSize        = 1 << 32
)

type Key = I.Key
type Map = I.Map

// New returns a map with zero buckets. The bucket storage (defaultBucketCount
// buckets) is allocated on the first insertion.
func New() Map {
	return NewWithBuckets(0)
}

// NewWithBuckets returns a map with the given number of buckets already
// allocated.
func NewWithBuckets(buckets uint64) Map {
	return NewWithArgs(buckets, nil, nil)
}

// NewWithArgs returns a map with the given initial bucket count (0 means
// "allocate lazily"), hasher (nil selects the default one) and release
// function. The release function is the disposal path used by Destroy for
// every value the map still owns at teardown time; Insert/Remove never call
// it, they transfer ownership of the value back to the caller instead.
func NewWithArgs(buckets uint64, keyHasher hasher.Hasher, releaseValue func(interface{})) Map {
	if keyHasher == nil {
		keyHasher = hasher.New()
	}
	if buckets > maximalSize {
		log.Printf("Invalid initial bucket count: %v. Setting to %v\n", buckets, uint64(maximalSize))
		buckets = maximalSize
	}
	m := &chainedGrowingMap{hasher: keyHasher, releaseValue: releaseValue}
	if buckets > 0 {
		m.storage = newStorage(buckets, keyHasher)
	}
	return m
}

// chainedGrowingMap resolves collisions by chaining. It performs no locking:
// sharing an instance between goroutines requires external mutual exclusion
// (see NewLocked).
type chainedGrowingMap struct {
	hasher       hasher.Hasher
	storage      *storage
	length       uint64
	releaseValue func(interface{})
}

func (m *chainedGrowingMap) Insert(key Key, value interface{}) (interface{}, bool, error) {
	if !hasher.IsValidKey(key) {
		return nil, false, InvalidKey
	}
	if m.storage.size() == 0 {
		if err := m.growTo(defaultBucketCount); err != nil {
			return nil, false, err
		}
	}

	hashValue := m.hasher.Hash(key)
	idxValue := m.storage.getIdx(hashValue)

	if e := m.storage.findEntry(idxValue, key); e != nil {
		previous := e.value
		e.value = value
		// the caller owns "previous" now
		return previous, true, nil
	}

	m.storage.linkEntry(idxValue, &entry{hashValue: hashValue, key: key, value: value})
	m.length++

	if m.LoadFactor() > growAtLoadFactor {
		if err := m.growTo(m.storage.size() * growthFactor); err != nil {
			// a failed resize must not corrupt the map, so the insertion
			// itself is backed out and reported as failed
			m.storage.unlinkEntry(idxValue, key)
			m.length--
			return nil, false, err
		}
	}
	return nil, false, nil
}

func (m *chainedGrowingMap) growTo(newSize uint64) error {
	if newSize > maximalSize {
		return NoSpaceLeft
	}
	if newSize < defaultBucketCount {
		newSize = defaultBucketCount
	}
	if m.storage.size() >= newSize {
		return nil
	}

	oldStorage := m.storage
	m.storage = newStorage(newSize, m.hasher)
	m.storage.copyOldEntriesAfterGrowing(oldStorage)
	return nil
}

func (m *chainedGrowingMap) Get(key Key) (interface{}, error) {
	if m.length == 0 {
		return nil, NotFound
	}

	idxValue := m.storage.getIdx(m.hasher.Hash(key))
	if e := m.storage.findEntry(idxValue, key); e != nil {
		return e.value, nil
	}
	return nil, NotFound
}

func (m *chainedGrowingMap) Remove(key Key) (interface{}, error) {
	if m.length == 0 {
		return nil, NotFound
	}

	idxValue := m.storage.getIdx(m.hasher.Hash(key))
	e := m.storage.unlinkEntry(idxValue, key)
	if e == nil {
		return nil, NotFound
	}
	m.length--

	value := e.value
	e.value = nil // the map must not retain the handle it just handed out
	return value, nil
}

func (m *chainedGrowingMap) Len() int {
	return int(m.length)
}

func (m *chainedGrowingMap) LoadFactor() float64 {
	if m.storage.size() == 0 {
		return 0
	}
	return float64(m.length) / float64(m.storage.size())
}

// Destroy disposes every value still owned by the map through the release
// function (the same disposal the caller would have performed after Remove)
// and drops the bucket storage. The map must not be used afterwards.
func (m *chainedGrowingMap) Destroy() {
	for i := uint64(0); i < m.storage.size(); i++ {
		e := m.storage.buckets[i]
		for e != nil {
			next := e.next
			if m.releaseValue != nil {
				m.releaseValue(e.value)
			}
			e.value = nil
			e.next = nil
			e = next
		}
		m.storage.buckets[i] = nil
	}
	m.storage = nil
	m.length = 0
}

func (m *chainedGrowingMap) Keys() []Key {
	r := make([]Key, 0, m.length)
	for i := uint64(0); i < m.storage.size(); i++ {
		for e := m.storage.buckets[i]; e != nil; e = e.next {
			r = append(r, e.key)
		}
	}
	return r
}

func (m *chainedGrowingMap) Hash(key Key) uint64 {
	return m.hasher.Hash(key)
}

func (m *chainedGrowingMap) ToSTDMap() map[Key]interface{} {
	r := make(map[Key]interface{}, m.length)
	for i := uint64(0); i < m.storage.size(); i++ {
		for e := m.storage.buckets[i]; e != nil; e = e.next {
			r[e.key] = e.value
		}
	}
	return r
}

// FromSTDMap inserts every pair of the given map. Keys that cannot be
// represented by the key encoding (see IsValidKey) are skipped: the method
// has no way to report them, use Insert directly if that matters.
func (m *chainedGrowingMap) FromSTDMap(stdMap map[Key]interface{}) {
	expectedSize := uint64(float64(len(stdMap))/growAtLoadFactor) + 1
	if expectedSize > m.storage.size() {
		m.growTo(expectedSize)
	}

	for k, v := range stdMap {
		m.Insert(k, v)
	}
}

func (m *chainedGrowingMap) HasCollisionWithKey(key Key) bool {
	if m.storage.size() == 0 {
		return false
	}
	return m.storage.buckets[m.storage.getIdx(m.hasher.Hash(key))] != nil
}

func (m *chainedGrowingMap) CheckConsistency() error {
	count := uint64(0)
	for i := uint64(0); i < m.storage.size(); i++ {
		for e := m.storage.buckets[i]; e != nil; e = e.next {
			count++
		}
	}
	if count != m.length {
		return fmt.Errorf("count != m.length: %v %v", count, m.length)
	}

	for i := uint64(0); i < m.storage.size(); i++ {
		for e := m.storage.buckets[i]; e != nil; e = e.next {
			foundValue, err := m.Get(e.key)
			if foundValue != e.value || err != nil {
				expectedIdxValue := m.storage.getIdx(e.hashValue)
				return fmt.Errorf("m.Get(e.key) != e.value: %v(%v) %v; i:%v key:%v expectedIdx:%v", foundValue, err, e.value, i, e.key, expectedIdxValue)
			}
		}
	}
	return nil
}
