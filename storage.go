package chainmap

import (
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// entry is a node of a bucket chain. The hash value is remembered so that
// growing doesn't have to hash every key again.
type entry struct {
	hashValue uint64
	key       I.Key
	value     interface{}
	next      *entry
}

type storage struct {
	hasher  hasher.Hasher
	buckets []*entry
}

func newStorage(size uint64, keyHasher hasher.Hasher) *storage {
	return &storage{
		hasher:  keyHasher,
		buckets: make([]*entry, size),
	}
}

func (stor *storage) size() uint64 {
	if stor == nil {
		return 0
	}
	return uint64(len(stor.buckets))
}

func (stor *storage) getIdx(hashValue uint64) uint64 {
	return stor.hasher.CompressHash(stor.size(), hashValue)
}

func (stor *storage) findEntry(idxValue uint64, key I.Key) *entry {
	for e := stor.buckets[idxValue]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// linkEntry prepends the entry to the chain of the given bucket.
func (stor *storage) linkEntry(idxValue uint64, e *entry) {
	e.next = stor.buckets[idxValue]
	stor.buckets[idxValue] = e
}

// unlinkEntry removes the entry with the given key from its chain and returns
// it (or nil if there's no such key in the chain).
func (stor *storage) unlinkEntry(idxValue uint64, key I.Key) *entry {
	prevPtr := &stor.buckets[idxValue]
	for e := *prevPtr; e != nil; e = e.next {
		if e.key == key {
			*prevPtr = e.next
			e.next = nil
			return e
		}
		prevPtr = &e.next
	}
	return nil
}

// copyOldEntriesAfterGrowing relinks every entry of the old storage into this
// one. It's a full rehash: a bucket index under the new count has no relation
// to the old one, so every chain node is re-placed individually. No entry is
// copied, lost or duplicated.
func (stor *storage) copyOldEntriesAfterGrowing(oldStorage *storage) {
	if oldStorage == nil {
		return
	}
	for i := uint64(0); i < oldStorage.size(); i++ {
		e := oldStorage.buckets[i]
		for e != nil {
			next := e.next
			stor.linkEntry(stor.getIdx(e.hashValue), e)
			e = next
		}
		oldStorage.buckets[i] = nil
	}
}
