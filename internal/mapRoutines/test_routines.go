package mapRoutines

import (
	"strconv"
	"testing"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	growAtLoadFactor = 0.75
)

type checkConsistencier interface {
	CheckConsistency() error
}

func expect(t *testing.T, m I.Map, key I.Key, expectedValue int) {
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v)`, value, expectedValue)
	}
}

func checkConsistency(t *testing.T, m I.Map) {
	cc, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	if err := cc.CheckConsistency(); err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
}

func DoTest(t *testing.T, factoryFunc MapFactoryFunc) {
	m := factoryFunc(0, nil)

	if m.Len() != 0 && m.Len() != -1 { // "-1" means "unsupported"
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	previous, replaced, err := m.Insert("foo", 42)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	if replaced || previous != nil {
		t.Errorf(`An unexpected previous value: %v (replaced == %v)`, previous, replaced)
	}
	if m.Len() != 1 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}
	expect(t, m, "foo", 42)

	previous, replaced, err = m.Insert("foo", 43)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	if !replaced || previous != 42 {
		t.Errorf(`An expected previous value 42, but got: %v (replaced == %v)`, previous, replaced)
	}
	if m.Len() != 1 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}
	expect(t, m, "foo", 43)

	_, err = m.Get("bar")
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	value, err := m.Remove("foo")
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	if value != 43 {
		t.Errorf(`A wrong removed value "%v" (instead of 43)`, value)
	}
	if m.Len() != 0 && m.Len() != -1 {
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	// removing an absent key is a no-op, no matter how many times repeated
	for i := 0; i < 3; i++ {
		_, err = m.Remove("foo")
		if err != errors.NotFound {
			t.Errorf(`An expected "NotFound" error, but got: %v`, err)
		}
		if m.Len() != 0 && m.Len() != -1 {
			t.Errorf("m.Len() is not 0: %v", m.Len())
		}
	}

	for i := 10; i < 1024*8; i++ {
		m.Insert(strconv.Itoa(i*6000), i)
	}
	checkConsistency(t, m)

	for i := 10; i < 1024*8; i++ {
		r, err := m.Get(strconv.Itoa(i * 6000))
		if err != nil {
			t.Errorf("%v not found", i*6000)
			continue
		}
		if r.(int) != i {
			t.Errorf("%v != %v", r, i)
		}
	}

	for i := 10; i < 1024*8; i++ {
		_, err := m.Remove(strconv.Itoa(i * 6000))
		if err != nil {
			t.Errorf("Cannot remove %v: %v", i*6000, err)
			continue
		}
	}
	checkConsistency(t, m)

	m.Destroy()
}

func DoTestResize(t *testing.T, factoryFunc MapFactoryFunc) {
	m := factoryFunc(0, nil)

	for i := 0; i < 1000; i++ {
		_, _, err := m.Insert(strconv.Itoa(i), i)
		if err != nil {
			t.Errorf("Got an unexpected error: %v", err)
		}
		if lf := m.LoadFactor(); lf > growAtLoadFactor {
			t.Errorf("The load factor exceeds %v right after an insert: %v", growAtLoadFactor, lf)
		}
	}

	if m.Len() != 1000 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1000: %v", m.Len())
	}
	for i := 0; i < 1000; i++ {
		expect(t, m, strconv.Itoa(i), i)
	}
	checkConsistency(t, m)

	m.Destroy()
}

func DoTestHashCollisions(t *testing.T, keyHasher I.Hasher, buckets uint64, keyAmount uint64) {
	keys := GenerateKeys(keyAmount)

	perIdx := map[uint64]uint64{}
	collisions := uint64(0)
	for _, key := range keys {
		idx := keyHasher.CompressHash(buckets, keyHasher.Hash(key))
		if idx >= buckets {
			t.Errorf("An out-of-range index: %v >= %v", idx, buckets)
		}
		if perIdx[idx] > 0 {
			collisions++
		}
		perIdx[idx]++
	}

	// for a uniform hash the amount of collisions is bounded by the birthday
	// estimation; the margin is wide to keep the test stable
	expected := float64(keyAmount) * float64(keyAmount) / (2 * float64(buckets))
	if float64(collisions) > expected*4+4 {
		t.Errorf("Too many collisions: %v (expected around %v; buckets == %v; keyAmount == %v)",
			collisions, expected, buckets, keyAmount)
	}
}
