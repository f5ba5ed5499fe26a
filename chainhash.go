package chainhash

// Map is the interface both hash map instantiations in pkg/chainmap
// satisfy. Pick a bucket variant with chainmap.NewListMap or
// chainmap.NewProbeMap and hold the result behind this type.
type Map[K comparable, V any] interface {
	// Insert adds a new entry and reports whether it was added. An
	// entry already stored under key is left untouched and Insert
	// reports false.
	Insert(key K, item V) bool

	// Has reports whether an entry is stored under key.
	Has(key K) bool

	// Get returns the item stored under key, or false if none exists.
	Get(key K) (V, bool)

	// GetOrInsert returns a pointer to the item stored under key,
	// inserting a zero-valued item first if the key is absent. The
	// pointer stays valid until the next mutation of the map.
	GetOrInsert(key K) *V

	// Del removes the entry stored under key and returns the removed
	// item, or false if no entry was stored under key.
	Del(key K) (V, bool)

	// Len returns the number of entries currently in the map.
	Len() int

	// LoadFactor returns the number of entries divided by the number
	// of non-empty buckets, or 0 for an empty map.
	LoadFactor() float64

	// ActiveBuckets returns the number of non-empty buckets.
	ActiveBuckets() int

	// Rehash redistributes the entries at unchanged capacity while the
	// load factor exceeds ratio, making at most maxTries attempts, and
	// reports whether the load factor ended up below ratio.
	Rehash(ratio float64, maxTries int) bool
}
