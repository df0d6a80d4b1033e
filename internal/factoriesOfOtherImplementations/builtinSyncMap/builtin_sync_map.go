package builtinSyncMap

import (
	"sync"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(buckets uint64, keyHasher I.Hasher) I.Map {
	return &builtinSyncMap{m: &sync.Map{}}
}

type builtinSyncMap struct {
	m *sync.Map
}

func (m *builtinSyncMap) Insert(key I.Key, value interface{}) (interface{}, bool, error) {
	previous, replaced := m.m.Load(key)
	m.m.Store(key, value)
	if !replaced {
		return nil, false, nil
	}
	return previous, true, nil
}

func (m *builtinSyncMap) Get(key I.Key) (interface{}, error) {
	value, ok := m.m.Load(key)
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}

func (m *builtinSyncMap) Remove(key I.Key) (interface{}, error) {
	value, ok := m.m.Load(key)
	if !ok {
		return nil, errors.NotFound
	}
	m.m.Delete(key)
	return value, nil
}

func (m *builtinSyncMap) Len() int {
	return -1 // sync.Map doesn't maintain a counter
}

func (m *builtinSyncMap) LoadFactor() float64 {
	return -1
}

func (m *builtinSyncMap) Destroy() {
	m.m = &sync.Map{}
}

func (m *builtinSyncMap) Keys() []I.Key {
	var r []I.Key
	m.m.Range(func(k, v interface{}) bool {
		r = append(r, k.(I.Key))
		return true
	})
	return r
}

func (m *builtinSyncMap) Hash(I.Key) uint64 {
	return 0
}

func (m *builtinSyncMap) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	m.m.Range(func(k, v interface{}) bool {
		r[k.(I.Key)] = v
		return true
	})
	return r
}

func (m *builtinSyncMap) FromSTDMap(in map[I.Key]interface{}) {
	for k, v := range in {
		m.m.Store(k, v)
	}
}
