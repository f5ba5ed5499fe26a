package main

import (
	"fmt"

	"github.com/scottcagno/chainhash"
	"github.com/scottcagno/chainhash/pkg/chainmap"
	"github.com/scottcagno/chainhash/pkg/list"
)

func main() {
	fmt.Println("== chained map, linked-list buckets ==")
	demoMap(chainmap.NewListMap[string, int](0))

	fmt.Println("== chained map, probe-table buckets ==")
	demoMap(chainmap.NewProbeMap[string, int](0))

	fmt.Println("== list sorting ==")
	demoSorting()
}

// demoMap only talks to the chainhash.Map interface; swapping the
// bucket variant is a one-line change at the call site.
func demoMap(m chainhash.Map[string, int]) {
	for i := 0; i < 12; i++ {
		m.Insert(fmt.Sprintf("foo-%d", i), i)
	}
	fmt.Printf("len=%d active=%d load=%.2f\n", m.Len(), m.ActiveBuckets(), m.LoadFactor())

	v, ok := m.Get("foo-7")
	fmt.Printf("get foo-7: %d (%t)\n", v, ok)

	if !m.Insert("foo-7", -1) {
		fmt.Println("insert foo-7 again: kept first value")
	}

	counter := m.GetOrInsert("hits")
	*counter += 1
	fmt.Printf("hits: %d\n", *counter)

	v, ok = m.Del("foo-3")
	fmt.Printf("del foo-3: %d (%t)\n", v, ok)
	fmt.Printf("len=%d active=%d load=%.2f\n\n", m.Len(), m.ActiveBuckets(), m.LoadFactor())
}

func demoSorting() {
	items1 := []int{14, 5256, 45, 6343, 626, 634, 614, 6346, 346, 209235, 0, -3, 12, -1}
	items2 := []int{14, 14, 14, 14, 14, 14, 2235, 2510, -2142, 412, 41, -24}

	l1, l2 := list.New[int](), list.New[int]()
	for _, item := range items1 {
		l1.PushFront(item)
	}
	for _, item := range items2 {
		l2.PushFront(item)
	}

	fmt.Println("list1 before sorting:", l1)
	list.HeapSort(l1)
	fmt.Println("list1 after heap sort:", l1)

	fmt.Println("list2 before sorting:", l2)
	list.MergeSort(l2)
	fmt.Println("list2 after merge sort:", l2)

	l1.Clear()
	l2.Clear()
}
