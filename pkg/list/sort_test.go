package list

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/scottcagno/chainhash/pkg/util"
)

var sorts = map[string]func(*List[int]){
	"insertion": InsertionSort[int],
	"merge":     MergeSort[int],
	"quick":     QuickSort[int],
	"heap":      HeapSort[int],
}

func fillList(vals []int) *List[int] {
	l := New[int]()
	for _, v := range vals {
		l.PushFront(v)
	}
	return l
}

func collect(l *List[int]) []int {
	var out []int
	l.Each(func(val int) bool {
		out = append(out, val)
		return true
	})
	return out
}

func testSortAgainstReference(t *testing.T, doSort func(*List[int]), vals []int) {
	want := make([]int, len(vals))
	copy(want, vals)
	sort.Ints(want)

	l := fillList(vals)
	doSort(l)

	got := collect(l)
	if len(vals) == 0 {
		util.AssertExpected(t, 0, len(got))
		return
	}
	util.AssertExpected(t, want, got)
	util.AssertExpected(t, len(vals), l.Len())
}

func TestSorts(t *testing.T) {
	cases := map[string][]int{
		"empty":      {},
		"single":     {42},
		"mixed":      {14, 5256, 45, 6343, 626, 634, 614, 6346, 346, 209235, 0, -3, 12, -1},
		"duplicates": {14, 14, 14, 14, 14, 14, 2235, 2510, -2142, 412, 41, -24},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
	}
	for sortName, doSort := range sorts {
		for caseName, vals := range cases {
			t.Run(sortName+"/"+caseName, func(t *testing.T) {
				testSortAgainstReference(t, doSort, vals)
			})
		}
	}
}

func TestSortsRandom(t *testing.T) {
	for sortName, doSort := range sorts {
		t.Run(sortName, func(t *testing.T) {
			vals := make([]int, 500)
			for i := range vals {
				vals[i] = rand.Intn(100) - 50
			}
			testSortAgainstReference(t, doSort, vals)
		})
	}
}

func BenchmarkMergeSort(b *testing.B) {
	vals := make([]int, 1000)
	for i := range vals {
		vals[i] = rand.Int()
	}
	b.ResetTimer()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		l := fillList(vals)
		b.StartTimer()
		MergeSort(l)
	}
}
