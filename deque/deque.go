// Package deque implements a double-ended queue backed by a sqrt
// decomposition: a linked list of blocks, where each block keeps its
// elements in its own linked list. Push and pop at either end are O(1)
// amortized, and positional access, insertion, and erasure anywhere are
// O(sqrt(n)), because rebalancing keeps every block's size close to the
// square root of the total element count.
package deque

import (
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"

	"github.com/Invicton-Labs/go-deque/dequeerr"
	"github.com/Invicton-Labs/go-deque/linkedlist"
	"github.com/Invicton-Labs/go-deque/numbers"
	"github.com/Invicton-Labs/go-deque/zero"
)

// initialTargetBlockSize is the target block size of a deque that has not
// yet grown enough for the sqrt-derived target to take over.
const initialTargetBlockSize = 4

// Deque is a double-ended queue with O(sqrt(n)) positional operations.
// A Deque must not be used concurrently from multiple goroutines; it
// assumes a single owner at a time.
type Deque[T any] interface {
	// Len returns the number of elements in the deque.
	// The complexity is O(1).
	Len() int
	// Empty returns whether the deque has no elements.
	Empty() bool
	// Front returns the first element. It fails with a ContainerEmpty
	// error if the deque is empty.
	Front() (T, dequeerr.Error)
	// Back returns the last element. It fails with a ContainerEmpty
	// error if the deque is empty.
	Back() (T, dequeerr.Error)
	// At returns the element at the given logical position. It fails with
	// an IndexOutOfBound error if pos is outside [0, Len()).
	At(pos int) (T, dequeerr.Error)
	// Set replaces the element at the given logical position. It fails
	// with an IndexOutOfBound error if pos is outside [0, Len()).
	Set(pos int, value T) dequeerr.Error
	// PushFront prepends a value to the deque.
	PushFront(value T)
	// PushBack appends a value to the deque.
	PushBack(value T)
	// PopFront removes and returns the first element. It fails with a
	// ContainerEmpty error if the deque is empty.
	PopFront() (T, dequeerr.Error)
	// PopBack removes and returns the last element. It fails with a
	// ContainerEmpty error if the deque is empty.
	PopBack() (T, dequeerr.Error)
	// Insert inserts a value immediately before the given iterator's
	// position and returns an iterator to the inserted value's logical
	// position, recomputed after rebalancing. Inserting at End appends.
	// It fails with an InvalidIterator error if pos does not belong to
	// this deque.
	Insert(pos Iterator[T], value T) (Iterator[T], dequeerr.Error)
	// Erase removes the element at the given iterator's position and
	// returns an iterator to the element that logically followed it, or
	// End if there is none. It fails with an InvalidIterator error if pos
	// does not belong to this deque or equals End.
	Erase(pos Iterator[T]) (Iterator[T], dequeerr.Error)
	// Begin returns an iterator to the first element. On an empty deque
	// it equals End.
	Begin() Iterator[T]
	// End returns the one-past-last iterator. It is not dereferenceable.
	End() Iterator[T]
	// Clear removes every element and resets the target block size to its
	// initial default.
	Clear()
	// Clone returns a deep copy of the deque. The copy reproduces the
	// source's target block size so it keeps the same structural shape
	// until its next mutation triggers a rebalance.
	Clone() Deque[T]
	// ToSlice returns the elements in logical order.
	ToSlice() []T
	// ForEach calls f on every element in logical order.
	ForEach(f func(value T))
	// Validate checks the structural invariants of the deque and returns
	// every violation combined into a single error, or nil.
	Validate() stackerr.Error
}

// block is a contiguous run of deque elements in logical order, the unit
// of rebalancing. A block has no identity beyond its position in the
// outer block sequence.
type block[T any] struct {
	items linkedlist.List[T]
}

func newBlock[T any]() *block[T] {
	return &block[T]{items: linkedlist.New[T]()}
}

type deque[T any] struct {
	blocks    linkedlist.List[*block[T]]
	total     int
	blockSize int
}

// New returns an initialized empty deque.
func New[T any]() Deque[T] {
	return &deque[T]{
		blocks:    linkedlist.New[*block[T]](),
		blockSize: initialTargetBlockSize,
	}
}

// NewFromSlice returns a deque containing the values of the slice in
// order. The slice is not retained.
func NewFromSlice[T any](values []T) Deque[T] {
	d := New[T]()
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

func (d *deque[T]) Len() int {
	return d.total
}

func (d *deque[T]) Empty() bool {
	return d.total == 0
}

func (d *deque[T]) Front() (T, dequeerr.Error) {
	if d.total == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("front of an empty deque")
	}
	return d.blocks.FrontElement().Value().items.Front()
}

func (d *deque[T]) Back() (T, dequeerr.Error) {
	if d.total == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("back of an empty deque")
	}
	return d.blocks.BackElement().Value().items.Back()
}

func (d *deque[T]) At(pos int) (T, dequeerr.Error) {
	el, err := d.elementAt(pos)
	if err != nil {
		return zero.ZeroValue[T](), err
	}
	return el.Value(), nil
}

func (d *deque[T]) Set(pos int, value T) dequeerr.Error {
	el, err := d.elementAt(pos)
	if err != nil {
		return err
	}
	el.Set(value)
	return nil
}

// elementAt finds the list element at the given logical position by
// walking blocks with a running offset, then walking within the owning
// block. The cost is O(sqrt(n)).
func (d *deque[T]) elementAt(pos int) (linkedlist.Element[T], dequeerr.Error) {
	if pos < 0 || pos >= d.total {
		return nil, dequeerr.IndexOutOfBound("position %d is outside the valid range [0, %d)", pos, d.total)
	}
	it := d.iteratorAt(pos)
	if it.itemElement == nil {
		return nil, dequeerr.Runtime("element count %d does not match block contents", d.total)
	}
	return it.itemElement, nil
}

func (d *deque[T]) PushFront(value T) {
	be := d.blocks.FrontElement()
	if be == nil || be.Value().items.Len() >= d.blockSize {
		be = d.blocks.PushFront(newBlock[T]())
	}
	be.Value().items.PushFront(value)
	d.total++
	d.rebalance()
}

func (d *deque[T]) PushBack(value T) {
	be := d.blocks.BackElement()
	if be == nil || be.Value().items.Len() >= d.blockSize {
		be = d.blocks.PushBack(newBlock[T]())
	}
	be.Value().items.PushBack(value)
	d.total++
	d.rebalance()
}

func (d *deque[T]) PopFront() (T, dequeerr.Error) {
	if d.total == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("pop from an empty deque")
	}
	be := d.blocks.FrontElement()
	b := be.Value()
	value, _ := b.items.PopFront()
	if b.items.Empty() {
		_, _ = d.blocks.Remove(be)
	}
	d.total--
	d.rebalance()
	return value, nil
}

func (d *deque[T]) PopBack() (T, dequeerr.Error) {
	if d.total == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("pop from an empty deque")
	}
	be := d.blocks.BackElement()
	b := be.Value()
	value, _ := b.items.PopBack()
	if b.items.Empty() {
		_, _ = d.blocks.Remove(be)
	}
	d.total--
	d.rebalance()
	return value, nil
}

func (d *deque[T]) Insert(pos Iterator[T], value T) (Iterator[T], dequeerr.Error) {
	if pos.d != d {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to this deque")
	}
	if d.total == 0 {
		if pos.blockElement != nil || pos.itemElement != nil {
			return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not reference a position in this deque")
		}
		be := d.blocks.PushBack(newBlock[T]())
		be.Value().items.PushBack(value)
		d.total++
		d.rebalance()
		return d.Begin(), nil
	}
	dist, err := d.logicalIndex(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if pos.itemElement == nil {
		// End: append, opening a new back block when the current one is
		// already at the target size, exactly as PushBack does.
		be := d.blocks.BackElement()
		if be.Value().items.Len() >= d.blockSize {
			be = d.blocks.PushBack(newBlock[T]())
		}
		be.Value().items.PushBack(value)
	} else {
		b := pos.blockElement.Value()
		if _, ierr := b.items.InsertBefore(value, pos.itemElement); ierr != nil {
			return Iterator[T]{}, ierr
		}
	}
	d.total++
	d.rebalance()
	// Rebalancing may have moved the inserted element to a different
	// block, so re-derive the iterator from the logical position.
	return d.iteratorAt(dist), nil
}

func (d *deque[T]) Erase(pos Iterator[T]) (Iterator[T], dequeerr.Error) {
	if pos.d != d {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to this deque")
	}
	if pos.itemElement == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("cannot erase the end position")
	}
	dist, err := d.logicalIndex(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	b := pos.blockElement.Value()
	if _, rerr := b.items.Remove(pos.itemElement); rerr != nil {
		return Iterator[T]{}, rerr
	}
	if b.items.Empty() {
		_, _ = d.blocks.Remove(pos.blockElement)
	}
	d.total--
	d.rebalance()
	return d.iteratorAt(dist), nil
}

func (d *deque[T]) Begin() Iterator[T] {
	be := d.blocks.FrontElement()
	if be == nil {
		return Iterator[T]{d: d}
	}
	return Iterator[T]{d: d, blockElement: be, itemElement: be.Value().items.FrontElement()}
}

func (d *deque[T]) End() Iterator[T] {
	be := d.blocks.BackElement()
	if be == nil {
		return Iterator[T]{d: d}
	}
	return Iterator[T]{d: d, blockElement: be}
}

func (d *deque[T]) Clear() {
	d.blocks.Clear()
	d.total = 0
	d.blockSize = initialTargetBlockSize
}

func (d *deque[T]) Clone() Deque[T] {
	c := &deque[T]{
		blocks:    linkedlist.New[*block[T]](),
		total:     d.total,
		blockSize: d.blockSize,
	}
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		nb := newBlock[T]()
		nb.items.PushBackList(be.Value().items)
		c.blocks.PushBack(nb)
	}
	return c
}

func (d *deque[T]) ToSlice() []T {
	out := make([]T, 0, d.total)
	d.ForEach(func(value T) {
		out = append(out, value)
	})
	return out
}

func (d *deque[T]) ForEach(f func(value T)) {
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		for el := be.Value().items.FrontElement(); el != nil; el = el.Next() {
			f(el.Value())
		}
	}
}

func (d *deque[T]) Validate() stackerr.Error {
	var err error
	sum := 0
	maxLen := 0
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		b := be.Value()
		if b.items.Empty() {
			err = multierr.Append(err, stackerr.Errorf("deque contains an empty block"))
		}
		sum += b.items.Len()
		maxLen = numbers.Max(maxLen, b.items.Len())
	}
	if sum != d.total {
		err = multierr.Append(err, stackerr.Errorf("element count %d does not match block contents %d", d.total, sum))
	}
	if maxLen > 2*d.blockSize {
		err = multierr.Append(err, stackerr.Errorf("a block of %d elements exceeds the bound %d for target block size %d", maxLen, 2*d.blockSize, d.blockSize))
	}
	if err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}
