package chainmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// The probe table's insert and search paths must agree on one slot
// layout: a key must be found the moment it was placed, through every
// inner growth and reseed.
func TestProbeBucket_SearchAfterInsert(t *testing.T) {
	var b ProbeBucket[string, int]
	for i := 0; i < 10; i++ {
		k := "key-" + strconv.Itoa(i)
		require.True(t, b.Insert(k, i))
		require.True(t, b.Has(k), "key %q lost right after insert", k)
		got, ok := b.Get(k)
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	require.Equal(t, 10, b.Size())
	for i := 0; i < 10; i++ {
		require.True(t, b.Has("key-"+strconv.Itoa(i)))
	}
}

func TestProbeBucket_DuplicateInsert(t *testing.T) {
	var b ProbeBucket[string, int]
	require.True(t, b.Insert("a", 1))
	require.False(t, b.Insert("a", 2))
	require.Equal(t, 1, b.Size())
	got, _ := b.Get("a")
	require.Equal(t, 1, got)
}

func TestProbeBucket_InnerGrowth(t *testing.T) {
	var b ProbeBucket[string, int]
	b.Insert("k1", 1)
	require.Equal(t, defaultProbeSize, len(b.keys))

	// the threshold starts at 2 and advances by one per growth, so
	// every insert from the second on doubles the table first
	b.Insert("k2", 2)
	require.Equal(t, 8, len(b.keys))
	b.Insert("k3", 3)
	require.Equal(t, 16, len(b.keys))

	// occupancy tracks the element count through it all
	require.Equal(t, 3, b.occ.Count())
	require.Equal(t, 3, b.elems)
}

func TestProbeBucket_Remove(t *testing.T) {
	var b ProbeBucket[string, int]
	keys := make([]string, 8)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
		b.Insert(keys[i], i)
	}

	for i, k := range keys {
		if i%2 == 0 {
			got, ok := b.Remove(k)
			require.True(t, ok)
			require.Equal(t, i, got)
		}
	}
	require.Equal(t, 4, b.Size())
	require.Equal(t, 4, b.occ.Count())

	// survivors must still be reachable after the run repairs
	for i, k := range keys {
		require.Equal(t, i%2 != 0, b.Has(k))
	}

	_, ok := b.Remove("missing")
	require.False(t, ok)
	require.Equal(t, 4, b.Size())
}

func TestProbeBucket_RemoveAllThenReuse(t *testing.T) {
	var b ProbeBucket[string, int]
	for i := 0; i < 6; i++ {
		b.Insert("key-"+strconv.Itoa(i), i)
	}
	for i := 0; i < 6; i++ {
		_, ok := b.Remove("key-" + strconv.Itoa(i))
		require.True(t, ok)
	}
	require.Equal(t, 0, b.Size())
	require.Equal(t, 0, b.occ.Count())

	require.True(t, b.Insert("fresh", 42))
	got, ok := b.Get("fresh")
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestProbeBucket_GetOrInsert(t *testing.T) {
	var b ProbeBucket[string, int]
	p := b.GetOrInsert("a")
	require.Zero(t, *p)
	require.Equal(t, 1, b.Size())

	*p = 9
	require.Equal(t, 9, *b.GetOrInsert("a"))
	require.Equal(t, 1, b.Size())

	b.Insert("b", 7)
	require.Equal(t, 7, *b.GetOrInsert("b"))
	require.Equal(t, 2, b.Size())
}

func TestProbeBucket_RebuildKeepsEntries(t *testing.T) {
	var b ProbeBucket[string, int]
	want := map[string]int{}
	for i := 0; i < 8; i++ {
		k := "key-" + strconv.Itoa(i)
		b.Insert(k, i)
		want[k] = i
	}

	// force a same-capacity reseed and a growing rebuild by hand
	b.rebuild(uint64(len(b.keys)))
	b.rebuild(uint64(len(b.keys)) * 2)

	require.Equal(t, len(want), b.Size())
	got := map[string]int{}
	b.scan(func(key string, item int) bool {
		got[key] = item
		return true
	})
	require.Equal(t, want, got)
}

func TestProbeBucket_MoveEntries(t *testing.T) {
	old := make([]ProbeBucket[string, int], 2)
	old[0].Insert("a", 1)
	old[0].Insert("b", 2)
	old[1].Insert("c", 3)

	var dst ProbeBucket[string, int]
	for i := range old {
		old[i].moveEntries(func(key string) Bucket[string, int] {
			return &dst
		})
	}

	require.Equal(t, 3, dst.Size())
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := dst.Get(k)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}
