package chainmap

import (
	"strconv"
	"testing"
)

const benchKeys = 4096

func benchKeySet() []string {
	keys := make([]string, benchKeys)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

func benchInsert[B any, PB bucketPtr[B, string, int]](b *testing.B, mk func() *Map[string, int, B, PB]) {
	keys := benchKeySet()
	b.ResetTimer()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		m := mk()
		for i, k := range keys {
			m.Insert(k, i)
		}
	}
}

func benchGet[B any, PB bucketPtr[B, string, int]](b *testing.B, m *Map[string, int, B, PB]) {
	keys := benchKeySet()
	for i, k := range keys {
		m.Insert(k, i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if _, ok := m.Get(keys[n%benchKeys]); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkListMap_Insert(b *testing.B) {
	benchInsert(b, func() *Map[string, int, ListBucket[string, int], *ListBucket[string, int]] {
		return NewListMap[string, int](0)
	})
}

func BenchmarkProbeMap_Insert(b *testing.B) {
	benchInsert(b, func() *Map[string, int, ProbeBucket[string, int], *ProbeBucket[string, int]] {
		return NewProbeMap[string, int](0)
	})
}

func BenchmarkListMap_Get(b *testing.B) {
	benchGet(b, NewListMap[string, int](0))
}

func BenchmarkProbeMap_Get(b *testing.B) {
	benchGet(b, NewProbeMap[string, int](0))
}
