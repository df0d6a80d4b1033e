package interfaces

type Key = string

type Map interface {
	// Insert stores the value under the key, taking ownership of it. If the
	// key is already present the old value is returned with replaced == true:
	// the caller owns it again and is responsible for disposing of it.
	Insert(key Key, value interface{}) (previous interface{}, replaced bool, err error)

	// Get returns the stored value without transferring ownership.
	Get(key Key) (value interface{}, err error)

	// Remove unlinks the entry and returns the value, handing ownership of it
	// back to the caller.
	Remove(key Key) (value interface{}, err error)

	Len() int
	LoadFactor() float64

	// Destroy disposes every value still owned by the map (through the
	// release function passed on construction, if any) and drops the bucket
	// storage. The map should not be used afterwards.
	Destroy()

	Keys() []Key
	Hash(key Key) uint64
	ToSTDMap() map[Key]interface{}
	FromSTDMap(map[Key]interface{})
}

type Hasher interface {
	// Hash returns the full hash value of the key. It's deterministic within
	// the lifetime of the Hasher, but not across process runs (hashers are
	// seeded randomly on creation).
	Hash(key Key) uint64

	// CompressHash maps a full hash value into [0, buckets).
	CompressHash(buckets uint64, fullHash uint64) uint64
}
