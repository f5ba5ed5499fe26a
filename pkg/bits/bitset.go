package bits

import (
	"fmt"
	"strconv"
)

const (
	ws    uint = 64 // word size; if ever on a 32 bit arch, change to 32
	lg2ws uint = 6  // log2(ws), so 6 for 64 and 5 for 32
)

// BitSet is a fixed-length bit set. It backs the occupancy vector of
// the probe-table buckets in pkg/chainmap, which allocate their exact
// capacity up front, so bits outside the length are simply ignored.
type BitSet struct {
	length uint
	bits   []uint
}

// alignedSize returns the number of words needed to hold size bits
func alignedSize(size uint) uint {
	return (size + (ws - 1)) >> lg2ws
}

// NewBitSet sets up and returns a new BitSet of the given length,
// with every bit unset.
func NewBitSet(length uint) *BitSet {
	return &BitSet{
		length: length,
		bits:   make([]uint, alignedSize(length)),
	}
}

// Set sets bit i to 1
func (b *BitSet) Set(i uint) *BitSet {
	if i >= b.length {
		return b
	}
	b.bits[i>>lg2ws] |= 1 << (i & (ws - 1))
	return b
}

// Unset clears bit i, aka sets it to 0
func (b *BitSet) Unset(i uint) *BitSet {
	if i >= b.length {
		return b
	}
	b.bits[i>>lg2ws] &^= 1 << (i & (ws - 1))
	return b
}

// IsSet tests and returns a boolean if bit i is set
func (b *BitSet) IsSet(i uint) bool {
	if i >= b.length {
		return false
	}
	return b.bits[i>>lg2ws]&(1<<(i&(ws-1))) != 0
}

// Count returns the number of set bits
func (b *BitSet) Count() int {
	var set int
	for i := uint(0); i < b.length; i++ {
		if b.bits[i>>lg2ws]&(1<<(i&(ws-1))) != 0 {
			set++
		}
	}
	return set
}

// Len returns the number of bits in the bitset
func (b *BitSet) Len() uint {
	return b.length
}

// String prints the binary value of the bitset
func (b *BitSet) String() string {
	res := strconv.Itoa(int(b.length))
	return fmt.Sprintf("%."+res+"b (%s bits)", b.bits, res)
}
