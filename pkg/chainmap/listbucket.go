package chainmap

// listNode is a node in a bucket's chain
type listNode[K comparable, V any] struct {
	next *listNode[K, V]
	key  K
	item V
}

// ListBucket chains its entries on a singly linked list behind a
// permanent sentinel head. The sentinel never holds data; it exists so
// inserting and unlinking at the head never special-case an empty
// chain. The zero value is an empty bucket ready for use.
type ListBucket[K comparable, V any] struct {
	root  *listNode[K, V] // sentinel
	elems int
}

// sentinel returns the sentinel head, creating it on first use
func (b *ListBucket[K, V]) sentinel() *listNode[K, V] {
	if b.root == nil {
		b.root = &listNode[K, V]{}
	}
	return b.root
}

// Insert adds a new entry at the head of the chain and reports whether
// it was added; a key that is already present leaves the chain as is.
func (b *ListBucket[K, V]) Insert(key K, item V) bool {
	root := b.sentinel()
	for n := root.next; n != nil; n = n.next {
		if n.key == key {
			return false
		}
	}
	root.next = &listNode[K, V]{next: root.next, key: key, item: item}
	b.elems++
	return true
}

// Size returns the number of entries stored in the bucket
func (b *ListBucket[K, V]) Size() int {
	return b.elems
}

// Has reports whether an entry is stored under key
func (b *ListBucket[K, V]) Has(key K) bool {
	if b.root == nil {
		return false
	}
	for n := b.root.next; n != nil; n = n.next {
		if n.key == key {
			return true
		}
	}
	return false
}

// Get returns the item stored under key, or false if none exists
func (b *ListBucket[K, V]) Get(key K) (V, bool) {
	if b.root != nil {
		for n := b.root.next; n != nil; n = n.next {
			if n.key == key {
				return n.item, true
			}
		}
	}
	var zero V
	return zero, false
}

// GetOrInsert returns a pointer to the item stored under key, first
// inserting a zero-valued item at the head if the key is absent. The
// pointer stays valid until the next mutation of the bucket.
func (b *ListBucket[K, V]) GetOrInsert(key K) *V {
	root := b.sentinel()
	for n := root.next; n != nil; n = n.next {
		if n.key == key {
			return &n.item
		}
	}
	root.next = &listNode[K, V]{next: root.next, key: key}
	b.elems++
	return &root.next.item
}

// Remove unlinks the entry stored under key and returns the removed
// item, or false if no entry was stored under key.
func (b *ListBucket[K, V]) Remove(key K) (V, bool) {
	var zero V
	if b.root == nil {
		return zero, false
	}
	for prev := b.root; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			item := prev.next.item
			prev.next = prev.next.next
			b.elems--
			return item, true
		}
	}
	return zero, false
}

// detachFirst unlinks and returns the first data node. The caller owns
// the returned node; the bucket it came from is about to be discarded,
// so the element count is left alone.
func (b *ListBucket[K, V]) detachFirst() *listNode[K, V] {
	n := b.root.next
	b.root.next = n.next
	return n
}

// attachFirst links an existing node in at the head. Used to adopt
// nodes handed over from an old bucket during redistribution.
func (b *ListBucket[K, V]) attachFirst(n *listNode[K, V]) {
	root := b.sentinel()
	n.next = root.next
	root.next = n
	b.elems++
}

// moveEntries hands every node over to its new bucket. Nodes are
// transferred, never copied, so relocation is O(1) per entry.
func (b *ListBucket[K, V]) moveEntries(attach func(key K) Bucket[K, V]) {
	if b.root == nil {
		return
	}
	for b.root.next != nil {
		n := b.detachFirst()
		attach(n.key).(*ListBucket[K, V]).attachFirst(n)
	}
	b.elems = 0
}

func (b *ListBucket[K, V]) scan(it func(key K, item V) bool) bool {
	if b.root == nil {
		return true
	}
	for n := b.root.next; n != nil; n = n.next {
		if !it(n.key, n.item) {
			return false
		}
	}
	return true
}
