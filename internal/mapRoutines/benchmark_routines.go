package mapRoutines

import (
	"testing"
)

func DoBenchmarkOfInsert(b *testing.B, factoryFunc MapFactoryFunc, buckets uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(buckets, nil)
	keys := GenerateKeys(keyAmount)

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			b.StopTimer()
			m.Destroy()
			m = factoryFunc(buckets, nil)
			currentIdx = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReInsert(b *testing.B, factoryFunc MapFactoryFunc, buckets uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(buckets, nil)
	keys := GenerateKeys(keyAmount)
	for i := uint64(0); i < keyAmount; i++ {
		m.Insert(keys[i], i+1)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc MapFactoryFunc, buckets uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(buckets, nil)
	keys := GenerateKeys(keyAmount)
	for i := uint64(0); i < keyAmount; i++ {
		m.Insert(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc MapFactoryFunc, buckets uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(buckets, nil)
	keys := GenerateKeys(keyAmount)
	missKeys := GenerateKeys(keyAmount)
	for i := uint64(0); i < keyAmount; i++ {
		m.Insert(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(missKeys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRemove(b *testing.B, factoryFunc MapFactoryFunc, buckets uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(buckets, nil)
	keys := GenerateKeys(keyAmount)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Insert(keys[j], j)
			}
			b.StartTimer()
		}
		m.Remove(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}
