package chainmap

import (
	"strconv"
	"sync"
	"testing"
)

func TestLockedMap(t *testing.T) {
	m := NewLocked(New())

	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			prefix := strconv.Itoa(worker) + ":"
			for i := 0; i < 1000; i++ {
				m.Insert(prefix+strconv.Itoa(i), i)
			}
		}(worker)
	}
	wg.Wait()

	if m.Len() != 4000 {
		t.Errorf("m.Len() is not 4000: %v", m.Len())
	}
	for worker := 0; worker < 4; worker++ {
		prefix := strconv.Itoa(worker) + ":"
		for i := 0; i < 1000; i++ {
			value, err := m.Get(prefix + strconv.Itoa(i))
			if err != nil || value != i {
				t.Errorf("Got an unexpected result for %v%v: %v %v", prefix, i, value, err)
			}
		}
	}

	m.Destroy()
}
