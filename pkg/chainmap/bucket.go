package chainmap

// Bucket is the contract every bucket variant satisfies. A bucket owns
// the entries whose keys hash to one slot of the outer array and keeps
// them unique. All implementations live in this package; the map picks
// one at compile time through its type parameters.
type Bucket[K comparable, V any] interface {
	// Insert adds a new entry and reports whether it was added. A key
	// that is already present leaves the bucket untouched.
	Insert(key K, item V) bool

	// Size returns the number of entries stored in the bucket.
	Size() int

	// Has reports whether an entry is stored under key.
	Has(key K) bool

	// Get returns the item stored under key, or false if none exists.
	Get(key K) (V, bool)

	// GetOrInsert returns a pointer to the item stored under key,
	// inserting a zero-valued item first if the key is absent. The
	// pointer stays valid until the next mutation of the bucket.
	GetOrInsert(key K) *V

	// Remove removes the entry stored under key and returns the
	// removed item, or false if no entry was stored under key.
	Remove(key K) (V, bool)

	// moveEntries detaches every entry from the bucket and relocates
	// it into the bucket returned by attach. Callers must hand back a
	// bucket of the same variant, and moveEntries must finish placing
	// an entry before asking attach for the next one--reorganize
	// counts 0->1 size transitions through that ordering.
	moveEntries(attach func(key K) Bucket[K, V])

	// scan calls it for every entry until it returns false, and
	// reports whether the scan ran to completion.
	scan(it func(key K, item V) bool) bool
}

// bucketPtr constrains PB to be a pointer to the bucket struct B that
// implements Bucket, so the map can address buckets in place inside
// its backing slice without boxing them.
type bucketPtr[B any, K comparable, V any] interface {
	*B
	Bucket[K, V]
}

// reorganize redistributes every entry of the old bucket array into a
// fresh array of size buckets, using h for the new placement. Every
// entry survives exactly once; entries are relocated, not duplicated.
// The second return value is the number of non-empty buckets in the
// fresh array.
func reorganize[B any, K comparable, V any, PB bucketPtr[B, K, V]](old []B, size uint64, h hasher[K]) ([]B, int) {
	fresh := make([]B, size)
	used := 0
	for i := range old {
		PB(&old[i]).moveEntries(func(key K) Bucket[K, V] {
			dst := PB(&fresh[h.index(key)])
			if dst.Size() == 0 {
				used++
			}
			return dst
		})
	}
	return fresh, used
}
