package deque

import (
	"testing"

	"github.com/Invicton-Labs/go-deque/dequeerr"
)

// Large enough that the elements span several blocks.
const iterTestSize = 100

func newIterTestDeque(t *testing.T) Deque[int] {
	t.Helper()
	d := New[int]()
	for i := 0; i < iterTestSize; i++ {
		d.PushBack(i)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() returned %v", err)
	}
	return d
}

func TestIteratorWalk(t *testing.T) {
	d := newIterTestDeque(t)

	it := d.Begin()
	for i := 0; i < iterTestSize; i++ {
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value() at position %d returned %v", i, err)
		}
		if v != i {
			t.Fatalf("Value() at position %d = %d", i, v)
		}
		it, err = it.Next()
		if err != nil {
			t.Fatalf("Next() at position %d returned %v", i, err)
		}
	}
	if !it.Equal(d.End()) {
		t.Error("walking Len() positions forward did not land on End")
	}

	for i := iterTestSize - 1; i >= 0; i-- {
		var err dequeerr.Error
		it, err = it.Prev()
		if err != nil {
			t.Fatalf("Prev() toward position %d returned %v", i, err)
		}
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value() at position %d returned %v", i, err)
		}
		if v != i {
			t.Fatalf("Value() at position %d = %d", i, v)
		}
	}
	if !it.Equal(d.Begin()) {
		t.Error("walking back did not land on Begin")
	}
}

func TestIteratorWalkBounds(t *testing.T) {
	d := newIterTestDeque(t)

	if _, err := d.End().Next(); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("End().Next() returned %v, want an IndexOutOfBound error", err)
	}
	if _, err := d.Begin().Prev(); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("Begin().Prev() returned %v, want an IndexOutOfBound error", err)
	}

	empty := New[int]()
	if !empty.Begin().Equal(empty.End()) {
		t.Error("Begin() != End() on an empty deque")
	}
	if _, err := empty.End().Prev(); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("End().Prev() on an empty deque returned %v, want an IndexOutOfBound error", err)
	}
}

func TestIteratorAdd(t *testing.T) {
	d := newIterTestDeque(t)

	// Offsets chosen to land within the first block, on block boundaries,
	// and in later blocks.
	for _, n := range []int{0, 1, 7, 10, 11, 12, 50, iterTestSize - 1} {
		it, err := d.Begin().Add(n)
		if err != nil {
			t.Fatalf("Begin().Add(%d) returned %v", n, err)
		}
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value() after Add(%d) returned %v", n, err)
		}
		if v != n {
			t.Errorf("Begin().Add(%d) references %d", n, v)
		}
	}

	// Advancing by exactly Len() lands on End.
	it, err := d.Begin().Add(iterTestSize)
	if err != nil {
		t.Fatalf("Begin().Add(Len()) returned %v", err)
	}
	if !it.Equal(d.End()) {
		t.Error("Begin().Add(Len()) is not End")
	}

	if _, err := d.Begin().Add(iterTestSize + 1); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("Begin().Add(Len()+1) returned %v, want an IndexOutOfBound error", err)
	}
	if _, err := d.End().Add(1); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("End().Add(1) returned %v, want an IndexOutOfBound error", err)
	}

	// A negative count retreats.
	it, err = d.End().Add(-1)
	if err != nil {
		t.Fatalf("End().Add(-1) returned %v", err)
	}
	if v, _ := it.Value(); v != iterTestSize-1 {
		t.Errorf("End().Add(-1) references %d, want %d", v, iterTestSize-1)
	}
}

func TestIteratorSub(t *testing.T) {
	d := newIterTestDeque(t)

	for _, n := range []int{1, 7, 11, 12, 50, iterTestSize} {
		it, err := d.End().Sub(n)
		if err != nil {
			t.Fatalf("End().Sub(%d) returned %v", n, err)
		}
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value() after Sub(%d) returned %v", n, err)
		}
		if v != iterTestSize-n {
			t.Errorf("End().Sub(%d) references %d, want %d", n, v, iterTestSize-n)
		}
	}

	it, err := d.End().Sub(iterTestSize)
	if err != nil {
		t.Fatalf("End().Sub(Len()) returned %v", err)
	}
	if !it.Equal(d.Begin()) {
		t.Error("End().Sub(Len()) is not Begin")
	}

	if _, err := d.End().Sub(iterTestSize + 1); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("End().Sub(Len()+1) returned %v, want an IndexOutOfBound error", err)
	}
	if _, err := d.Begin().Sub(1); !dequeerr.HasKind(err, dequeerr.KindIndexOutOfBound) {
		t.Errorf("Begin().Sub(1) returned %v, want an IndexOutOfBound error", err)
	}

	// Sub(0) is the identity.
	it, err = d.Begin().Sub(0)
	if err != nil {
		t.Fatalf("Begin().Sub(0) returned %v", err)
	}
	if !it.Equal(d.Begin()) {
		t.Error("Begin().Sub(0) is not Begin")
	}
}

func TestIteratorAddSubInverse(t *testing.T) {
	d := newIterTestDeque(t)

	for _, start := range []int{0, 13, 57, iterTestSize - 1} {
		base, err := d.Begin().Add(start)
		if err != nil {
			t.Fatalf("Begin().Add(%d) returned %v", start, err)
		}
		for _, n := range []int{1, 5, 20} {
			if start+n > iterTestSize {
				continue
			}
			fwd, err := base.Add(n)
			if err != nil {
				t.Fatalf("Add(%d) from position %d returned %v", n, start, err)
			}
			back, err := fwd.Sub(n)
			if err != nil {
				t.Fatalf("Sub(%d) from position %d returned %v", n, start+n, err)
			}
			if !back.Equal(base) {
				t.Errorf("Add(%d) then Sub(%d) from position %d did not land back on it", n, n, start)
			}
		}
	}
}

func TestIteratorDiff(t *testing.T) {
	d := newIterTestDeque(t)

	dist, err := d.End().Diff(d.Begin())
	if err != nil {
		t.Fatalf("End().Diff(Begin()) returned %v", err)
	}
	if dist != iterTestSize {
		t.Errorf("End().Diff(Begin()) = %d, want %d", dist, iterTestSize)
	}

	dist, err = d.Begin().Diff(d.End())
	if err != nil {
		t.Fatalf("Begin().Diff(End()) returned %v", err)
	}
	if dist != -iterTestSize {
		t.Errorf("Begin().Diff(End()) = %d, want %d", dist, -iterTestSize)
	}

	a, err := d.Begin().Add(17)
	if err != nil {
		t.Fatalf("Begin().Add(17) returned %v", err)
	}
	b, err := d.Begin().Add(63)
	if err != nil {
		t.Fatalf("Begin().Add(63) returned %v", err)
	}
	if dist, err = b.Diff(a); err != nil || dist != 46 {
		t.Errorf("Diff() = (%d, %v), want (46, nil)", dist, err)
	}
	if dist, err = a.Diff(b); err != nil || dist != -46 {
		t.Errorf("Diff() = (%d, %v), want (-46, nil)", dist, err)
	}
	if dist, err = a.Diff(a); err != nil || dist != 0 {
		t.Errorf("Diff() of an iterator with itself = (%d, %v), want (0, nil)", dist, err)
	}

	other := New[int]()
	other.PushBack(1)
	if _, err := d.Begin().Diff(other.Begin()); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Diff() across deques returned %v, want an InvalidIterator error", err)
	}
}

func TestIteratorValueSet(t *testing.T) {
	d := NewFromSlice([]int{1, 2, 3})

	it, err := d.Begin().Add(1)
	if err != nil {
		t.Fatalf("Begin().Add(1) returned %v", err)
	}
	if err := it.Set(20); err != nil {
		t.Fatalf("Set() returned %v", err)
	}
	if v, err := d.At(1); err != nil || v != 20 {
		t.Errorf("At(1) = (%d, %v), want (20, nil)", v, err)
	}

	if _, err := d.End().Value(); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("End().Value() returned %v, want an InvalidIterator error", err)
	}
	if err := d.End().Set(0); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("End().Set() returned %v, want an InvalidIterator error", err)
	}
}

func TestZeroIterator(t *testing.T) {
	var it Iterator[int]
	if _, err := it.Value(); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Value() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
	if err := it.Set(1); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Set() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
	if _, err := it.Next(); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Next() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
	if _, err := it.Prev(); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Prev() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
	if _, err := it.Add(1); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Add() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
	if _, err := it.Diff(it); !dequeerr.HasKind(err, dequeerr.KindInvalidIterator) {
		t.Errorf("Diff() on the zero iterator returned %v, want an InvalidIterator error", err)
	}
}

func TestIteratorEqual(t *testing.T) {
	d := newIterTestDeque(t)

	if !d.Begin().Equal(d.Begin()) {
		t.Error("Begin() is not equal to itself")
	}
	if !d.End().Equal(d.End()) {
		t.Error("End() is not equal to itself")
	}
	if d.Begin().Equal(d.End()) {
		t.Error("Begin() equals End() on a non-empty deque")
	}

	next, err := d.Begin().Next()
	if err != nil {
		t.Fatalf("Begin().Next() returned %v", err)
	}
	added, err := d.Begin().Add(1)
	if err != nil {
		t.Fatalf("Begin().Add(1) returned %v", err)
	}
	if !next.Equal(added) {
		t.Error("Begin().Next() does not equal Begin().Add(1)")
	}

	other := New[int]()
	if d.End().Equal(other.End()) {
		t.Error("end positions of different deques compare equal")
	}
}
