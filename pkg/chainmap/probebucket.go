package chainmap

import (
	"hash/maphash"

	"github.com/scottcagno/chainhash/pkg/bits"
)

const (
	// defaultProbeSize is the initial capacity of a probe table
	defaultProbeSize = 4
	// startGrowThreshold is the element count at which a probe table
	// first doubles; the threshold advances by one after each growth
	startGrowThreshold = 2
)

// slotHash maps keys to slots of one probe table. Every table carries
// its own seed, independent of the outer map's hashing, and a table
// gets a brand new slotHash--never a mutated one--whenever its slots
// are rebuilt.
type slotHash[K comparable] struct {
	seed maphash.Seed
	mask uint64
}

func newSlotHash[K comparable](capacity uint64) slotHash[K] {
	return slotHash[K]{seed: maphash.MakeSeed(), mask: capacity - 1}
}

func (h slotHash[K]) index(key K) uint64 {
	return maphash.Comparable(h.seed, key) & h.mask
}

// ProbeBucket stores its entries in a small open-addressing table:
// parallel key and item slices plus an occupancy bitset, probed
// linearly from the key's home slot. Probing is bounded to half the
// table; a window that fills up forces a same-capacity rebuild under a
// fresh seed, which breaks the cluster without paying for growth. The
// zero value is an empty bucket ready for use.
type ProbeBucket[K comparable, V any] struct {
	hash     slotHash[K]
	keys     []K
	items    []V
	occ      *bits.BitSet
	elems    int
	nextGrow int
	last     int // slot of the most recent successful probe, -1 if stale
}

func (b *ProbeBucket[K, V]) init() {
	if b.keys != nil {
		return
	}
	b.hash = newSlotHash[K](defaultProbeSize)
	b.keys = make([]K, defaultProbeSize)
	b.items = make([]V, defaultProbeSize)
	b.occ = bits.NewBitSet(defaultProbeSize)
	b.nextGrow = startGrowThreshold
	b.last = -1
}

// window is the longest probe run allowed at the current capacity
func (b *ProbeBucket[K, V]) window() int {
	return len(b.keys) / 2
}

// probeFor walks key's probe run and returns the slot holding it
func (b *ProbeBucket[K, V]) probeFor(key K) (int, bool) {
	home := b.hash.index(key)
	for d := 0; d < b.window(); d++ {
		i := (home + uint64(d)) & b.hash.mask
		if !b.occ.IsSet(uint(i)) {
			return -1, false
		}
		if b.keys[i] == key {
			return int(i), true
		}
	}
	return -1, false
}

// cachedSlot resolves key to its slot, reusing the slot remembered
// from the previous probe when it still matches.
func (b *ProbeBucket[K, V]) cachedSlot(key K) (int, bool) {
	if b.last >= 0 && b.occ.IsSet(uint(b.last)) && b.keys[b.last] == key {
		return b.last, true
	}
	return b.probeFor(key)
}

// freeSlot returns an unoccupied slot on key's probe run, or -1 when
// the window is exhausted.
func (b *ProbeBucket[K, V]) freeSlot(key K) int {
	home := b.hash.index(key)
	for d := 0; d < b.window(); d++ {
		i := (home + uint64(d)) & b.hash.mask
		if !b.occ.IsSet(uint(i)) {
			return int(i)
		}
	}
	return -1
}

// Insert adds a new entry and reports whether it was added; a key that
// is already present leaves the table as is. The probed slot is cached
// either way, so a Get or Remove that follows skips re-probing.
func (b *ProbeBucket[K, V]) Insert(key K, item V) bool {
	b.init()
	if i, ok := b.probeFor(key); ok {
		b.last = i
		return false
	}
	b.place(key, item)
	return true
}

// Size returns the number of entries stored in the bucket
func (b *ProbeBucket[K, V]) Size() int {
	return b.elems
}

// Has reports whether an entry is stored under key
func (b *ProbeBucket[K, V]) Has(key K) bool {
	if b.keys == nil {
		return false
	}
	i, ok := b.cachedSlot(key)
	if ok {
		b.last = i
	}
	return ok
}

// Get returns the item stored under key, or false if none exists
func (b *ProbeBucket[K, V]) Get(key K) (V, bool) {
	if b.keys != nil {
		if i, ok := b.cachedSlot(key); ok {
			b.last = i
			return b.items[i], true
		}
	}
	var zero V
	return zero, false
}

// GetOrInsert returns a pointer to the item stored under key, first
// inserting a zero-valued item if the key is absent. The pointer stays
// valid until the next mutation of the bucket.
func (b *ProbeBucket[K, V]) GetOrInsert(key K) *V {
	b.init()
	if i, ok := b.cachedSlot(key); ok {
		b.last = i
		return &b.items[i]
	}
	var zero V
	b.place(key, zero)
	return &b.items[b.last]
}

// Remove removes the entry stored under key and returns the removed
// item, or false if no entry was stored under key.
func (b *ProbeBucket[K, V]) Remove(key K) (V, bool) {
	var zero V
	if b.keys == nil {
		return zero, false
	}
	i, ok := b.cachedSlot(key)
	if !ok {
		return zero, false
	}
	item := b.items[i]
	b.clearSlot(uint64(i))
	b.elems--
	b.last = -1
	// re-place the run that follows the freed slot, otherwise probes
	// for those entries would stop early at the hole
	for j := (uint64(i) + 1) & b.hash.mask; b.occ.IsSet(uint(j)); j = (j + 1) & b.hash.mask {
		k, v := b.keys[j], b.items[j]
		b.clearSlot(j)
		if b.replace(k, v) {
			// replace reseeded the whole table; every entry already
			// sits on its run again
			break
		}
	}
	return item, true
}

func (b *ProbeBucket[K, V]) clearSlot(i uint64) {
	var zeroK K
	var zeroV V
	b.keys[i], b.items[i] = zeroK, zeroV
	b.occ.Unset(uint(i))
}

// place stores a key that is known to be absent, growing the table
// first when the element count crosses the next threshold.
func (b *ProbeBucket[K, V]) place(key K, item V) {
	b.elems++
	if b.elems == b.nextGrow {
		b.nextGrow++
		b.rebuild(uint64(len(b.keys)) * 2)
	}
	b.replace(key, item)
}

// replace puts an entry into a free slot on its run, rebuilding the
// table in place under fresh seeds for as long as the run is full.
// It reports whether a rebuild happened.
func (b *ProbeBucket[K, V]) replace(key K, item V) bool {
	reseeded := false
	for {
		if i := b.freeSlot(key); i >= 0 {
			b.keys[i], b.items[i] = key, item
			b.occ.Set(uint(i))
			b.last = i
			return reseeded
		}
		b.rebuild(uint64(len(b.keys)))
		reseeded = true
	}
}

// rebuild re-places every entry into fresh slots of the requested
// capacity under a brand new seed, retrying with another seed until
// every entry lands inside its probe window. Growth keeps occupancy
// far below the window, so retries are rare.
func (b *ProbeBucket[K, V]) rebuild(capacity uint64) {
retry:
	for {
		h := newSlotHash[K](capacity)
		keys := make([]K, capacity)
		items := make([]V, capacity)
		occ := bits.NewBitSet(uint(capacity))
		window := int(capacity / 2)
		for j := range b.keys {
			if !b.occ.IsSet(uint(j)) {
				continue
			}
			placed := false
			home := h.index(b.keys[j])
			for d := 0; d < window; d++ {
				i := (home + uint64(d)) & h.mask
				if !occ.IsSet(uint(i)) {
					keys[i], items[i] = b.keys[j], b.items[j]
					occ.Set(uint(i))
					placed = true
					break
				}
			}
			if !placed {
				continue retry
			}
		}
		b.hash, b.keys, b.items, b.occ = h, keys, items, occ
		b.last = -1
		return
	}
}

// moveEntries copies every entry out into its new bucket; the old
// table is dropped wholesale by the caller afterwards.
func (b *ProbeBucket[K, V]) moveEntries(attach func(key K) Bucket[K, V]) {
	if b.occ == nil {
		return
	}
	for j := range b.keys {
		if b.occ.IsSet(uint(j)) {
			attach(b.keys[j]).Insert(b.keys[j], b.items[j])
		}
	}
	b.elems = 0
}

func (b *ProbeBucket[K, V]) scan(it func(key K, item V) bool) bool {
	if b.occ == nil {
		return true
	}
	for j := range b.keys {
		if b.occ.IsSet(uint(j)) && !it(b.keys[j], b.items[j]) {
			return false
		}
	}
	return true
}
