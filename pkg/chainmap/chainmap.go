package chainmap

const (
	// DefaultMapSize is the initial number of buckets
	DefaultMapSize = 8
	// DefaultRehashPolicy is the ratio used to derive the element
	// count that triggers the next capacity doubling
	DefaultRehashPolicy = 1.0
)

// Iterator is the function type Range feeds entries to; returning
// false stops the iteration.
type Iterator[K comparable, V any] func(key K, item V) bool

// Map is a hash map that chains colliding entries into per-slot
// buckets. The bucket variant is a compile-time type parameter: B is
// the bucket struct and PB its pointer type implementing Bucket. Use
// NewListMap or NewProbeMap instead of spelling the parameters out.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any, B any, PB bucketPtr[B, K, V]] struct {
	hash         hasher[K]
	raw          KeyHash[K]
	rehashPolicy float64
	nextRehash   int // element count whose crossing doubles capacity
	elems        int // live entries across all buckets
	active       int // non-empty buckets
	buckets      []B
}

// NewListMap returns a map whose buckets chain entries on singly
// linked lists. The bucket array starts at the given size rounded up
// to a power of two, or DefaultMapSize, whichever is larger.
func NewListMap[K comparable, V any](size uint) *Map[K, V, ListBucket[K, V], *ListBucket[K, V]] {
	return newMap[K, V, ListBucket[K, V], *ListBucket[K, V]](size, HashOf[K]())
}

// NewListMapWithHash is NewListMap with a caller-supplied key hash
func NewListMapWithHash[K comparable, V any](size uint, hash KeyHash[K]) *Map[K, V, ListBucket[K, V], *ListBucket[K, V]] {
	return newMap[K, V, ListBucket[K, V], *ListBucket[K, V]](size, hash)
}

// NewProbeMap returns a map whose buckets store entries in small
// open-addressing probe tables with their own growth policy.
func NewProbeMap[K comparable, V any](size uint) *Map[K, V, ProbeBucket[K, V], *ProbeBucket[K, V]] {
	return newMap[K, V, ProbeBucket[K, V], *ProbeBucket[K, V]](size, HashOf[K]())
}

// NewProbeMapWithHash is NewProbeMap with a caller-supplied key hash
func NewProbeMapWithHash[K comparable, V any](size uint, hash KeyHash[K]) *Map[K, V, ProbeBucket[K, V], *ProbeBucket[K, V]] {
	return newMap[K, V, ProbeBucket[K, V], *ProbeBucket[K, V]](size, hash)
}

func newMap[K comparable, V any, B any, PB bucketPtr[B, K, V]](size uint, hash KeyHash[K]) *Map[K, V, B, PB] {
	capacity := alignBucketCount(size)
	if hash == nil {
		hash = HashOf[K]()
	}
	m := &Map[K, V, B, PB]{
		hash:         newHasher(hash, capacity),
		raw:          hash,
		rehashPolicy: DefaultRehashPolicy,
		buckets:      make([]B, capacity),
	}
	m.nextRehash = int(float64(capacity) * m.rehashPolicy)
	return m
}

// alignBucketCount aligns bucket counts to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(DefaultMapSize)
	for count < size {
		count *= 2
	}
	return uint64(count)
}

// Insert adds a new entry and reports whether it was added; an entry
// already stored under key is left untouched (first write wins). When
// the element count exceeds the rehash threshold the bucket array
// doubles and every entry is redistributed.
func (m *Map[K, V, B, PB]) Insert(key K, item V) bool {
	b := PB(&m.buckets[m.hash.index(key)])
	if !b.Insert(key, item) {
		return false
	}
	if b.Size() == 1 {
		m.active++
	}
	m.elems++
	if m.elems > m.nextRehash {
		m.grow()
	}
	return true
}

// Has reports whether an entry is stored under key
func (m *Map[K, V, B, PB]) Has(key K) bool {
	return PB(&m.buckets[m.hash.index(key)]).Has(key)
}

// Get returns the item stored under key, or false if none exists
func (m *Map[K, V, B, PB]) Get(key K) (V, bool) {
	return PB(&m.buckets[m.hash.index(key)]).Get(key)
}

// GetOrInsert returns a pointer to the item stored under key,
// inserting a zero-valued item first if the key is absent. It never
// resizes the bucket array, so the pointer stays valid until the next
// Insert, Del or Rehash.
func (m *Map[K, V, B, PB]) GetOrInsert(key K) *V {
	b := PB(&m.buckets[m.hash.index(key)])
	before := b.Size()
	p := b.GetOrInsert(key)
	if b.Size() > before {
		m.elems++
		if b.Size() == 1 {
			m.active++
		}
	}
	return p
}

// Del removes the entry stored under key and returns the removed item,
// or false if no entry was stored under key. Capacity never shrinks.
func (m *Map[K, V, B, PB]) Del(key K) (V, bool) {
	b := PB(&m.buckets[m.hash.index(key)])
	item, ok := b.Remove(key)
	if !ok {
		return item, false
	}
	m.elems--
	if b.Size() == 0 {
		m.active--
	}
	return item, true
}

// Len returns the number of entries currently in the map
func (m *Map[K, V, B, PB]) Len() int {
	return m.elems
}

// ActiveBuckets returns the number of non-empty buckets
func (m *Map[K, V, B, PB]) ActiveBuckets() int {
	return m.active
}

// Cap returns the total number of buckets, empty ones included
func (m *Map[K, V, B, PB]) Cap() int {
	return len(m.buckets)
}

// LoadFactor returns the number of entries divided by the number of
// non-empty buckets, or 0 for an empty map. Note the denominator: this
// measures how crowded the occupied buckets are, not how full the
// bucket array is.
func (m *Map[K, V, B, PB]) LoadFactor() float64 {
	if m.active == 0 {
		return 0
	}
	return float64(m.elems) / float64(m.active)
}

// RehashPolicy returns the ratio deriving the doubling threshold
func (m *Map[K, V, B, PB]) RehashPolicy() float64 {
	return m.rehashPolicy
}

// SetRehashPolicy changes the ratio deriving the doubling threshold
// and recomputes the threshold from the current capacity.
func (m *Map[K, V, B, PB]) SetRehashPolicy(policy float64) {
	m.rehashPolicy = policy
	m.nextRehash = int(float64(len(m.buckets)) * policy)
}

// Rehash redistributes the entries at unchanged capacity while the
// load factor exceeds ratio, making at most maxTries attempts, and
// reports whether the load factor ended up below ratio. Each attempt
// redistributes under a fresh hasher, so the layout genuinely changes,
// but maxTries is the only termination guarantee: a distribution can
// stay above the ratio no matter how often it is reshuffled.
func (m *Map[K, V, B, PB]) Rehash(ratio float64, maxTries int) bool {
	for tries := 0; m.LoadFactor() > ratio && tries < maxTries; tries++ {
		m.rebuild(uint64(len(m.buckets)))
	}
	return m.LoadFactor() < ratio
}

// Range feeds every entry to it, in no particular order, until it
// returns false. Mutating the map while ranging is not safe.
func (m *Map[K, V, B, PB]) Range(it Iterator[K, V]) {
	for i := range m.buckets {
		if !PB(&m.buckets[i]).scan(it) {
			return
		}
	}
}

// grow doubles the capacity, advances the doubling threshold and
// redistributes every entry.
func (m *Map[K, V, B, PB]) grow() {
	capacity := uint64(len(m.buckets)) * 2
	m.nextRehash = int(float64(capacity) * m.rehashPolicy)
	m.rebuild(capacity)
}

// rebuild replaces the bucket array wholesale: a fresh hasher is bound
// to the target capacity and every entry is relocated through it. The
// active-bucket count is reset from the redistribution itself.
func (m *Map[K, V, B, PB]) rebuild(capacity uint64) {
	m.hash = newHasher(m.raw, capacity)
	m.buckets, m.active = reorganize[B, K, V, PB](m.buckets, capacity, m.hash)
}
