package chainmap

import (
	"hash/maphash"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	xxh32 "github.com/scottcagno/chainhash/pkg/hash/xxhash"
)

// KeyHash produces a raw 64-bit hash of a key. The map folds the raw
// hash with a per-instance seed before masking it down to an index,
// so a KeyHash only has to spread keys, not capacities.
type KeyHash[K comparable] func(key K) uint64

// StringHash is the default KeyHash for string keys
func StringHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// String32Hash is an alternate string KeyHash built on the 32-bit
// xxHash; mainly useful when hashes must fit in 32 bits
func String32Hash(key string) uint64 {
	return uint64(xxh32.Checksum32([]byte(key), 0))
}

var comparableSeed = maphash.MakeSeed()

// HashOf returns a KeyHash for any comparable key type. It is the
// fallback the constructors use when no KeyHash is supplied.
func HashOf[K comparable]() KeyHash[K] {
	return func(key K) uint64 {
		return maphash.Comparable(comparableSeed, key)
	}
}

// hasher binds a KeyHash to a capacity. It is constructed fresh--and
// never mutated--whenever the bucket array is rebuilt, whether or not
// the capacity changed: the fresh seed is what makes a same-capacity
// rebuild actually reshuffle the entries. A stale hasher would hand
// out indexes for the wrong capacity, so none may outlive a rebuild.
type hasher[K comparable] struct {
	raw  KeyHash[K]
	seed uint64
	mask uint64 // capacity-1, capacities are always powers of two
}

func newHasher[K comparable](raw KeyHash[K], capacity uint64) hasher[K] {
	return hasher[K]{
		raw:  raw,
		seed: rand.Uint64() | 1,
		mask: capacity - 1,
	}
}

// index maps a key into [0, capacity)
func (h hasher[K]) index(key K) uint64 {
	x := h.raw(key) ^ h.seed
	// finalizer borrowed from murmur3, spreads the seed into the low
	// bits the mask keeps
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x & h.mask
}
