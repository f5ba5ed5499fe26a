package list

import (
	"fmt"
	"strings"
)

// Node is a single element of a List
type Node[T any] struct {
	next *Node[T]
	val  T
}

// Next returns the node that follows n, or nil at the end of the list
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Value returns the value held by n
func (n *Node[T]) Value() T {
	return n.val
}

// List is a generic singly linked list with O(1) head insertion. The
// zero value is an empty list ready for use.
type List[T any] struct {
	head *Node[T]
	size int
}

// New returns a new empty List
func New[T any]() *List[T] {
	return &List[T]{}
}

// PushFront adds a value at the head of the list
func (l *List[T]) PushFront(val T) {
	l.head = &Node[T]{next: l.head, val: val}
	l.size++
}

// Front returns the first node of the list, or nil when it is empty
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Len returns the number of values in the list
func (l *List[T]) Len() int {
	return l.size
}

// Each calls fn for every value, front to back, until fn returns false
func (l *List[T]) Each(fn func(val T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.val) {
			return
		}
	}
}

// Clear drops every node from the list
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}

// String renders the list front to back, eg. [3 2 1]
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}
