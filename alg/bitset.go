package alg

import "strconv"

// BitSet is a fixed-capacity set of small non-negative integers,
// used to track token indices retired from stack consideration.
// Membership tests are O(1) and the backing array is cache friendly.
type BitSet struct {
	words []uint64
	size  int
}

func NewBitSet(capacity int) *BitSet {
	return &BitSet{words: make([]uint64, (capacity+63)/64), size: capacity}
}

func (b *BitSet) Add(i int) {
	if i < 0 || i >= b.size {
		panic("BitSet index out of range: " + strconv.Itoa(i))
	}
	b.words[i>>6] |= 1 << uint(i&63)
}

func (b *BitSet) Has(i int) bool {
	if i < 0 || i >= b.size {
		return false
	}
	return b.words[i>>6]&(1<<uint(i&63)) != 0
}

func (b *BitSet) Count() int {
	var total int
	for _, w := range b.words {
		for ; w != 0; w &= w - 1 {
			total++
		}
	}
	return total
}

func (b *BitSet) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

func (b *BitSet) Copy() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words, size: b.size}
}

func (b *BitSet) Equal(other *BitSet) bool {
	if b.size != other.size {
		return false
	}
	for i, w := range b.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}
