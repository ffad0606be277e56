package deque

import (
	"github.com/Invicton-Labs/go-deque/dequeerr"
	"github.com/Invicton-Labs/go-deque/linkedlist"
	"github.com/Invicton-Labs/go-deque/zero"
)

// Iterator references a logical position in a deque as a (block, item)
// pair, plus a non-owning handle to the deque itself, which is needed to
// detect the one-past-last position and to cross block boundaries. A nil
// item element marks the one-past-last position. The zero Iterator belongs
// to no deque; every operation on it fails with an InvalidIterator error.
//
// An iterator stays usable only as long as the element it references has
// not been erased or relocated by a rebalance; Insert and Erase return a
// freshly derived iterator for exactly that reason.
type Iterator[T any] struct {
	d            *deque[T]
	blockElement linkedlist.Element[*block[T]]
	itemElement  linkedlist.Element[T]
}

// Value returns the element the iterator references. It fails with an
// InvalidIterator error at the end position or on the zero Iterator.
func (it Iterator[T]) Value() (T, dequeerr.Error) {
	if it.d == nil || it.itemElement == nil {
		return zero.ZeroValue[T](), dequeerr.InvalidIterator("iterator is not dereferenceable")
	}
	return it.itemElement.Value(), nil
}

// Set replaces the element the iterator references. It fails with an
// InvalidIterator error at the end position or on the zero Iterator.
func (it Iterator[T]) Set(value T) dequeerr.Error {
	if it.d == nil || it.itemElement == nil {
		return dequeerr.InvalidIterator("iterator is not dereferenceable")
	}
	it.itemElement.Set(value)
	return nil
}

// Equal reports whether both iterators reference the same logical
// position in the same deque.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.d != other.d {
		return false
	}
	if it.itemElement == nil || other.itemElement == nil {
		return it.itemElement == nil && other.itemElement == nil
	}
	return it.blockElement == other.blockElement && it.itemElement == other.itemElement
}

// Next returns an iterator advanced by one position, crossing a block
// boundary if needed. Advancing from the last element lands on End;
// advancing past End fails with an IndexOutOfBound error.
func (it Iterator[T]) Next() (Iterator[T], dequeerr.Error) {
	if it.d == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to a deque")
	}
	if it.itemElement == nil {
		return Iterator[T]{}, dequeerr.IndexOutOfBound("cannot advance past the end position")
	}
	if next := it.itemElement.Next(); next != nil {
		return Iterator[T]{d: it.d, blockElement: it.blockElement, itemElement: next}, nil
	}
	nextBlock := it.blockElement.Next()
	if nextBlock == nil {
		return Iterator[T]{d: it.d, blockElement: it.blockElement}, nil
	}
	return Iterator[T]{d: it.d, blockElement: nextBlock, itemElement: nextBlock.Value().items.FrontElement()}, nil
}

// Prev returns an iterator retreated by one position, crossing a block
// boundary if needed. Retreating from End lands on the last element;
// retreating before the first element fails with an IndexOutOfBound error.
func (it Iterator[T]) Prev() (Iterator[T], dequeerr.Error) {
	if it.d == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to a deque")
	}
	if it.itemElement == nil {
		be := it.d.blocks.BackElement()
		if be == nil {
			return Iterator[T]{}, dequeerr.IndexOutOfBound("cannot retreat before the first element")
		}
		return Iterator[T]{d: it.d, blockElement: be, itemElement: be.Value().items.BackElement()}, nil
	}
	if prev := it.itemElement.Prev(); prev != nil {
		return Iterator[T]{d: it.d, blockElement: it.blockElement, itemElement: prev}, nil
	}
	prevBlock := it.blockElement.Prev()
	if prevBlock == nil {
		return Iterator[T]{}, dequeerr.IndexOutOfBound("cannot retreat before the first element")
	}
	return Iterator[T]{d: it.d, blockElement: prevBlock, itemElement: prevBlock.Value().items.BackElement()}, nil
}

// Add returns an iterator advanced by n logical positions, hopping whole
// blocks as it goes. A negative n retreats instead. Landing exactly on the
// tail boundary yields End; moving past it fails with an IndexOutOfBound
// error.
func (it Iterator[T]) Add(n int) (Iterator[T], dequeerr.Error) {
	if it.d == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to a deque")
	}
	if n < 0 {
		return it.Sub(-n)
	}
	if n == 0 {
		return it, nil
	}
	if it.itemElement == nil {
		return Iterator[T]{}, dequeerr.IndexOutOfBound("advance of %d moves past the end position", n)
	}
	if it.blockElement == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not reference a position in this deque")
	}
	remain := n
	blockElement := it.blockElement

	// Steps that stay within the current block, counting from the
	// referenced item to the block's last item.
	rest := 0
	for el := it.itemElement; el != nil; el = el.Next() {
		rest++
	}
	if remain < rest {
		el := it.itemElement
		for ; remain > 0; remain-- {
			el = el.Next()
		}
		return Iterator[T]{d: it.d, blockElement: blockElement, itemElement: el}, nil
	}
	remain -= rest

	for {
		next := blockElement.Next()
		if next == nil {
			if remain == 0 {
				return Iterator[T]{d: it.d, blockElement: blockElement}, nil
			}
			return Iterator[T]{}, dequeerr.IndexOutOfBound("advance of %d moves past the end position", n)
		}
		blockElement = next
		b := blockElement.Value()
		if remain < b.items.Len() {
			el := b.items.FrontElement()
			for ; remain > 0; remain-- {
				el = el.Next()
			}
			return Iterator[T]{d: it.d, blockElement: blockElement, itemElement: el}, nil
		}
		remain -= b.items.Len()
	}
}

// Sub returns an iterator retreated by n logical positions, hopping whole
// blocks as it goes. A negative n advances instead. Moving before the
// first element fails with an IndexOutOfBound error.
func (it Iterator[T]) Sub(n int) (Iterator[T], dequeerr.Error) {
	if it.d == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not belong to a deque")
	}
	if n < 0 {
		return it.Add(-n)
	}
	if n == 0 {
		return it, nil
	}
	blockElement := it.blockElement
	itemElement := it.itemElement
	remain := n
	if itemElement == nil {
		blockElement = it.d.blocks.BackElement()
		if blockElement == nil {
			return Iterator[T]{}, dequeerr.IndexOutOfBound("retreat of %d moves before the first element", n)
		}
		itemElement = blockElement.Value().items.BackElement()
		remain--
	} else if blockElement == nil {
		return Iterator[T]{}, dequeerr.InvalidIterator("iterator does not reference a position in this deque")
	}

	// Steps available before the referenced item within its own block.
	avail := 0
	for el := itemElement.Prev(); el != nil; el = el.Prev() {
		avail++
	}
	if remain <= avail {
		for ; remain > 0; remain-- {
			itemElement = itemElement.Prev()
		}
		return Iterator[T]{d: it.d, blockElement: blockElement, itemElement: itemElement}, nil
	}
	remain -= avail

	for {
		prev := blockElement.Prev()
		if prev == nil {
			return Iterator[T]{}, dequeerr.IndexOutOfBound("retreat of %d moves before the first element", n)
		}
		blockElement = prev
		b := blockElement.Value()
		itemElement = b.items.BackElement()
		remain--
		if remain < b.items.Len() {
			for ; remain > 0; remain-- {
				itemElement = itemElement.Prev()
			}
			return Iterator[T]{d: it.d, blockElement: blockElement, itemElement: itemElement}, nil
		}
		remain -= b.items.Len() - 1
	}
}

// Diff returns the signed logical distance between the two iterators,
// it minus other. Both iterators must belong to the same deque.
func (it Iterator[T]) Diff(other Iterator[T]) (int, dequeerr.Error) {
	if it.d == nil || it.d != other.d {
		return 0, dequeerr.InvalidIterator("iterators do not belong to the same deque")
	}
	a, err := it.d.logicalIndex(it)
	if err != nil {
		return 0, err
	}
	b, err := it.d.logicalIndex(other)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// logicalIndex returns the logical position of the iterator by walking
// the block sequence with a running offset. The end position maps to the
// total element count. An iterator whose elements are not found in this
// deque fails with an InvalidIterator error.
func (d *deque[T]) logicalIndex(it Iterator[T]) (int, dequeerr.Error) {
	if it.itemElement == nil {
		return d.total, nil
	}
	offset := 0
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		if be != it.blockElement {
			offset += be.Value().items.Len()
			continue
		}
		for el := be.Value().items.FrontElement(); el != nil; el = el.Next() {
			if el == it.itemElement {
				return offset, nil
			}
			offset++
		}
		break
	}
	return 0, dequeerr.InvalidIterator("iterator does not reference a position in this deque")
}

// iteratorAt derives an iterator from a logical position. Positions at or
// past the element count map to End.
func (d *deque[T]) iteratorAt(dist int) Iterator[T] {
	if dist < 0 || dist >= d.total {
		return d.End()
	}
	offset := dist
	for be := d.blocks.FrontElement(); be != nil; be = be.Next() {
		b := be.Value()
		if offset < b.items.Len() {
			el := b.items.FrontElement()
			for ; offset > 0; offset-- {
				el = el.Next()
			}
			return Iterator[T]{d: d, blockElement: be, itemElement: el}
		}
		offset -= b.items.Len()
	}
	return d.End()
}
