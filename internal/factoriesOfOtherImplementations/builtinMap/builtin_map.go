package builtinMap

import (
	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(buckets uint64, keyHasher I.Hasher) I.Map {
	return &builtinMap{
		m: make(map[I.Key]interface{}),
	}
}

type builtinMap struct {
	m map[I.Key]interface{}
}

func (m *builtinMap) Insert(key I.Key, value interface{}) (interface{}, bool, error) {
	previous, replaced := m.m[key]
	m.m[key] = value
	if !replaced {
		return nil, false, nil
	}
	return previous, true, nil
}

func (m *builtinMap) Get(key I.Key) (interface{}, error) {
	value, ok := m.m[key]
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}

func (m *builtinMap) Remove(key I.Key) (interface{}, error) {
	value, ok := m.m[key]
	if !ok {
		return nil, errors.NotFound
	}
	delete(m.m, key)
	return value, nil
}

func (m *builtinMap) Len() int {
	return len(m.m)
}

func (m *builtinMap) LoadFactor() float64 {
	return -1 // the builtin map doesn't expose its bucket count
}

func (m *builtinMap) Destroy() {
	m.m = nil
}

func (m *builtinMap) Keys() []I.Key {
	r := make([]I.Key, 0, len(m.m))
	for k := range m.m {
		r = append(r, k)
	}
	return r
}

func (m *builtinMap) Hash(I.Key) uint64 {
	return 0
}

func (m *builtinMap) CheckConsistency() error {
	return nil
}

func (m *builtinMap) ToSTDMap() map[I.Key]interface{} {
	return m.m
}

func (m *builtinMap) FromSTDMap(in map[I.Key]interface{}) {
	m.m = in
}
