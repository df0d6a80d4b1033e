package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func New() I.Map {
	return &hashmapWrapper{}
}

func NewWithArgs(buckets uint64, keyHasher I.Hasher) I.Map {
	return New()
}

type hashmapWrapper struct {
	hashmap.HashMap
}

func (m *hashmapWrapper) Insert(key I.Key, value interface{}) (interface{}, bool, error) {
	previous, replaced := m.HashMap.Get(key)
	m.HashMap.Set(key, value)
	if !replaced {
		return nil, false, nil
	}
	return previous, true, nil
}

func (m *hashmapWrapper) Get(key I.Key) (interface{}, error) {
	v, ok := m.HashMap.Get(key)
	if !ok {
		return nil, errors.NotFound
	}
	return v, nil
}

func (m *hashmapWrapper) Remove(key I.Key) (interface{}, error) {
	v, ok := m.HashMap.Get(key)
	if !ok {
		return nil, errors.NotFound
	}
	m.HashMap.Del(key)
	return v, nil
}

func (m *hashmapWrapper) Len() int {
	return -1 // see cornelk/hashmap: Len() is not cheap there, we don't use it
}

func (m *hashmapWrapper) LoadFactor() float64 {
	return -1
}

func (m *hashmapWrapper) Destroy() {
}

func (m *hashmapWrapper) Keys() []I.Key {
	return nil
}

func (m *hashmapWrapper) Hash(I.Key) uint64 {
	return 0
}

func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	return nil
}

func (m *hashmapWrapper) FromSTDMap(map[I.Key]interface{}) {
}
