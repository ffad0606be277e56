package deque

import (
	"github.com/Invicton-Labs/go-deque/linkedlist"
	"github.com/Invicton-Labs/go-deque/numbers"
)

// rebalance recomputes the target block size from the total element count
// and, only when the target changed, walks every block splitting the ones
// that grew past twice the target and merging the ones that shrank below
// half of it. The walk is O(number of blocks) and each split or merge
// moves O(sqrt(n)) elements, so the amortized cost per deque operation
// stays O(sqrt(n)).
func (d *deque[T]) rebalance() {
	target := numbers.IntSqrt(d.total) + 1
	if target == d.blockSize {
		return
	}
	d.blockSize = target
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		b := be.Value()
		if b.items.Len() > 2*d.blockSize {
			d.split(be)
		} else if b.items.Len()*2 < d.blockSize {
			d.merge(be)
		}
	}
}

// split moves the latter half of the block's items into a new block
// inserted immediately after it.
func (d *deque[T]) split(be linkedlist.Element[*block[T]]) {
	b := be.Value()
	nb := newBlock[T]()
	el := b.items.FrontElement()
	for i := b.items.Len() / 2; i > 0; i-- {
		el = el.Next()
	}
	for el != nil {
		nb.items.PushBack(el.Value())
		el, _ = b.items.Remove(el)
	}
	_, _ = d.blocks.InsertAfter(nb, be)
}

// merge appends the next block's items onto this block and removes the
// emptied next block, provided the combined size fits within the target.
func (d *deque[T]) merge(be linkedlist.Element[*block[T]]) {
	next := be.Next()
	if next == nil {
		return
	}
	b, nb := be.Value(), next.Value()
	if b.items.Len()+nb.items.Len() > d.blockSize {
		return
	}
	b.items.PushBackList(nb.items)
	_, _ = d.blocks.Remove(next)
}
