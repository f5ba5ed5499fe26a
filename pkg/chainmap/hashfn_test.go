package chainmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/chainhash/pkg/util"
)

func TestHasher_IndexRange(t *testing.T) {
	for _, capacity := range []uint64{8, 16, 1024} {
		h := newHasher(StringHash, capacity)
		for i := 0; i < 1000; i++ {
			idx := h.index(util.RandString(12))
			require.Less(t, idx, capacity)
		}
	}
}

func TestHasher_FreshInstanceReshuffles(t *testing.T) {
	// two hashers at the same capacity must not agree on the layout,
	// otherwise a same-capacity rehash would always be a no-op
	a := newHasher(StringHash, 1024)
	b := newHasher(StringHash, 1024)
	same := 0
	const n = 1000
	for i := 0; i < n; i++ {
		k := util.RandString(12)
		if a.index(k) == b.index(k) {
			same++
		}
	}
	assert.Less(t, same, n/10)
}

func TestHasher_Spread(t *testing.T) {
	const capacity = 64
	h := newHasher(StringHash, capacity)
	hit := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		hit[h.index(util.RandString(10))] = true
	}
	// with 2000 draws every slot of a 64-wide table should be hit
	assert.Len(t, hit, capacity)
}

func TestHashOf_Comparable(t *testing.T) {
	intHash := HashOf[int]()
	require.Equal(t, intHash(42), intHash(42))

	type pair struct{ a, b int }
	pairHash := HashOf[pair]()
	require.Equal(t, pairHash(pair{1, 2}), pairHash(pair{1, 2}))
	assert.NotEqual(t, pairHash(pair{1, 2}), pairHash(pair{2, 1}))
}

func TestStringHashes_Deterministic(t *testing.T) {
	require.Equal(t, StringHash("abc"), StringHash("abc"))
	require.Equal(t, String32Hash("abc"), String32Hash("abc"))
	assert.NotEqual(t, StringHash("abc"), StringHash("abd"))
}
