package list

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// InsertionSort sorts the list ascending by relinking each node into
// an already sorted chain. O(n^2), cheap on short or nearly sorted lists.
func InsertionSort[T constraints.Ordered](l *List[T]) {
	var sorted *Node[T]
	for n := l.head; n != nil; {
		next := n.next
		if sorted == nil || n.val <= sorted.val {
			n.next = sorted
			sorted = n
		} else {
			p := sorted
			for p.next != nil && p.next.val < n.val {
				p = p.next
			}
			n.next = p.next
			p.next = n
		}
		n = next
	}
	l.head = sorted
}

// MergeSort sorts the list ascending. O(n log n), stable.
func MergeSort[T constraints.Ordered](l *List[T]) {
	l.head = mergeSort(l.head)
}

func mergeSort[T constraints.Ordered](head *Node[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	// split at the middle using fast and slow walkers
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	second := slow.next
	slow.next = nil
	return merge(mergeSort(head), mergeSort(second))
}

func merge[T constraints.Ordered](a, b *Node[T]) *Node[T] {
	var root Node[T]
	tail := &root
	for a != nil && b != nil {
		if b.val < a.val {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return root.next
}

// QuickSort sorts the list ascending, partitioning around the head
// node. O(n log n) expected.
func QuickSort[T constraints.Ordered](l *List[T]) {
	l.head = quickSort(l.head)
}

func quickSort[T constraints.Ordered](head *Node[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	pivot, rest := head, head.next
	pivot.next = nil
	var less, more *Node[T]
	for rest != nil {
		next := rest.next
		if rest.val < pivot.val {
			rest.next, less = less, rest
		} else {
			rest.next, more = more, rest
		}
		rest = next
	}
	pivot.next = quickSort(more)
	less = quickSort(less)
	if less == nil {
		return pivot
	}
	tail := less
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = pivot
	return less
}

// HeapSort sorts the list ascending by heapifying the values and
// writing them back front to back. O(n log n), O(n) extra space.
func HeapSort[T constraints.Ordered](l *List[T]) {
	h := make(ordHeap[T], 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		h = append(h, n.val)
	}
	heap.Init(&h)
	for n := l.head; n != nil; n = n.next {
		n.val = heap.Pop(&h).(T)
	}
}

type ordHeap[T constraints.Ordered] []T

func (h ordHeap[T]) Len() int           { return len(h) }
func (h ordHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h ordHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *ordHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *ordHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
