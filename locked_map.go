package chainmap

import (
	"github.com/xaionaro-go/spinlock"
)

// NewLocked wraps a map with the external mutual exclusion the engine
// requires when an instance is shared between goroutines (the engine itself
// never locks).
func NewLocked(backend Map) Map {
	return &lockedMap{backend: backend}
}

type lockedMap struct {
	locker  spinlock.Locker
	backend Map
}

func (m *lockedMap) Insert(key Key, value interface{}) (interface{}, bool, error) {
	m.locker.Lock()
	previous, replaced, err := m.backend.Insert(key, value)
	m.locker.Unlock()
	return previous, replaced, err
}

func (m *lockedMap) Get(key Key) (interface{}, error) {
	m.locker.Lock()
	value, err := m.backend.Get(key)
	m.locker.Unlock()
	return value, err
}

func (m *lockedMap) Remove(key Key) (interface{}, error) {
	m.locker.Lock()
	value, err := m.backend.Remove(key)
	m.locker.Unlock()
	return value, err
}

func (m *lockedMap) Len() int {
	m.locker.Lock()
	r := m.backend.Len()
	m.locker.Unlock()
	return r
}

func (m *lockedMap) LoadFactor() float64 {
	m.locker.Lock()
	r := m.backend.LoadFactor()
	m.locker.Unlock()
	return r
}

func (m *lockedMap) Destroy() {
	m.locker.Lock()
	m.backend.Destroy()
	m.locker.Unlock()
}

func (m *lockedMap) Keys() []Key {
	m.locker.Lock()
	r := m.backend.Keys()
	m.locker.Unlock()
	return r
}

func (m *lockedMap) Hash(key Key) uint64 {
	// no locking: the hasher is immutable after construction
	return m.backend.Hash(key)
}

func (m *lockedMap) ToSTDMap() map[Key]interface{} {
	m.locker.Lock()
	r := m.backend.ToSTDMap()
	m.locker.Unlock()
	return r
}

func (m *lockedMap) FromSTDMap(stdMap map[Key]interface{}) {
	m.locker.Lock()
	m.backend.FromSTDMap(stdMap)
	m.locker.Unlock()
}
