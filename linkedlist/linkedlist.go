// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linkedlist implements a doubly linked list with stable element
// identity. It is the storage layer beneath the block deque: each deque
// block keeps its items in one of these lists, and the deque's outer block
// sequence is itself one of these lists.
//
// To iterate over a list (where l is a List[T]):
//
//	for e := l.FrontElement(); e != nil; e = e.Next() {
//		// do something with e.Value()
//	}
package linkedlist

import (
	"github.com/Invicton-Labs/go-deque/dequeerr"
	"github.com/Invicton-Labs/go-deque/zero"
)

// Element is a node of a List. The list exclusively owns its elements;
// an element holds exactly one value.
type Element[T any] interface {
	// List returns the list that the element belongs to, or nil if the
	// element has been removed from its list.
	List() List[T]
	// Next returns the next list element, or nil if this is the last one.
	Next() Element[T]
	// Prev returns the previous list element, or nil if this is the first one.
	Prev() Element[T]
	// Value returns the value stored in the element.
	Value() T
	// Set replaces the value stored in the element.
	Set(value T)
}

// element is an element of a linked list.
type element[T any] struct {
	// Next and previous pointers in the doubly-linked list of elements.
	// To simplify the implementation, internally a list l is implemented
	// as a ring, such that &l.root is both the next element of the last
	// list element and the previous element of the first list element.
	nextElement, prevElement *element[T]

	// The list to which this element belongs.
	list *list[T]

	// The value stored with this element.
	value T
}

func (e *element[T]) List() List[T] {
	if e.list == nil {
		return nil
	}
	return e.list
}

// Next returns the next list element or nil.
func (e *element[T]) Next() Element[T] {
	if e.list != nil && e.nextElement != &e.list.root {
		return e.nextElement
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *element[T]) Prev() Element[T] {
	if e.list != nil && e.prevElement != &e.list.root {
		return e.prevElement
	}
	return nil
}

func (e *element[T]) Value() T {
	return e.value
}

func (e *element[T]) Set(value T) {
	e.value = value
}

type List[T any] interface {
	// Init initializes or clears list l.
	Init() List[T]
	// Len returns the number of elements of list l.
	// The complexity is O(1).
	Len() int
	// Empty returns whether the list has no elements.
	Empty() bool
	// Front returns the value of the first element. It fails with a
	// ContainerEmpty error if the list has no elements.
	Front() (T, dequeerr.Error)
	// Back returns the value of the last element. It fails with a
	// ContainerEmpty error if the list has no elements.
	Back() (T, dequeerr.Error)
	// FrontElement returns the first element of list l or nil if the list
	// is empty.
	FrontElement() Element[T]
	// BackElement returns the last element of list l or nil if the list
	// is empty.
	BackElement() Element[T]
	// PushFront inserts a new element e with value v at the front of
	// list l and returns e.
	PushFront(value T) Element[T]
	// PushBack inserts a new element e with value v at the back of
	// list l and returns e.
	PushBack(value T) Element[T]
	// PopFront removes the first element and returns its value. It is a
	// no-op on an empty list, reported by the second return value.
	PopFront() (T, bool)
	// PopBack removes the last element and returns its value. It is a
	// no-op on an empty list, reported by the second return value.
	PopBack() (T, bool)
	// InsertBefore inserts a new element with the given value immediately
	// before mark and returns it. A nil mark is the one-past-last
	// position, so the value is appended at the back. It fails with an
	// InvalidIterator error if mark belongs to a different list.
	InsertBefore(value T, mark Element[T]) (Element[T], dequeerr.Error)
	// InsertAfter inserts a new element with the given value immediately
	// after mark and returns it. It fails with an InvalidIterator error
	// if mark is nil or belongs to a different list.
	InsertAfter(value T, mark Element[T]) (Element[T], dequeerr.Error)
	// Remove removes mark from the list and returns the element that
	// followed it, or nil if mark was the last element. It fails with an
	// InvalidIterator error if mark is nil or belongs to a different list.
	Remove(mark Element[T]) (Element[T], dequeerr.Error)
	// PushBackList inserts a copy of another list's values at the back of
	// list l. The lists l and other may be the same. Other must not be nil.
	PushBackList(other List[T])
	// Clear removes every element from the list. Elements removed this
	// way no longer belong to the list.
	Clear()
}

// list represents a doubly linked list.
// The zero value for list is an empty list ready to use.
type list[T any] struct {
	root element[T] // sentinel list element, only &root, root.prevElement, and root.nextElement are used
	len  int        // current list length excluding (this) sentinel element
}

// New returns an initialized list.
func New[T any]() List[T] {
	return new(list[T]).Init()
}

func (l *list[T]) Init() List[T] {
	l.root.nextElement = &l.root
	l.root.prevElement = &l.root
	l.len = 0
	return l
}

// lazyInit lazily initializes a zero list value.
func (l *list[T]) lazyInit() {
	if l.root.nextElement == nil {
		l.Init()
	}
}

func (l *list[T]) Len() int {
	return l.len
}

func (l *list[T]) Empty() bool {
	return l.len == 0
}

func (l *list[T]) Front() (T, dequeerr.Error) {
	if l.len == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("front of an empty list")
	}
	return l.root.nextElement.value, nil
}

func (l *list[T]) Back() (T, dequeerr.Error) {
	if l.len == 0 {
		return zero.ZeroValue[T](), dequeerr.ContainerEmpty("back of an empty list")
	}
	return l.root.prevElement.value, nil
}

func (l *list[T]) FrontElement() Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.nextElement
}

func (l *list[T]) BackElement() Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prevElement
}

// insert inserts e after at, increments l.len, and returns e.
func (l *list[T]) insert(e, at *element[T]) *element[T] {
	e.prevElement = at
	e.nextElement = at.nextElement
	e.prevElement.nextElement = e
	e.nextElement.prevElement = e
	e.list = l
	l.len++
	return e
}

// insertValue is a convenience wrapper for insert(&element{value: v}, at).
func (l *list[T]) insertValue(v T, at *element[T]) *element[T] {
	return l.insert(&element[T]{value: v}, at)
}

// remove removes e from its list and decrements l.len.
func (l *list[T]) remove(e *element[T]) {
	e.prevElement.nextElement = e.nextElement
	e.nextElement.prevElement = e.prevElement
	e.nextElement = nil // avoid memory leaks
	e.prevElement = nil // avoid memory leaks
	e.list = nil
	l.len--
}

// own checks that mark is an element created by this list.
func (l *list[T]) own(mark Element[T]) (*element[T], bool) {
	e, ok := mark.(*element[T])
	return e, ok && e.list == l
}

func (l *list[T]) PushFront(value T) Element[T] {
	l.lazyInit()
	return l.insertValue(value, &l.root)
}

func (l *list[T]) PushBack(value T) Element[T] {
	l.lazyInit()
	return l.insertValue(value, l.root.prevElement)
}

func (l *list[T]) PopFront() (T, bool) {
	if l.len == 0 {
		return zero.ZeroValue[T](), false
	}
	e := l.root.nextElement
	l.remove(e)
	return e.value, true
}

func (l *list[T]) PopBack() (T, bool) {
	if l.len == 0 {
		return zero.ZeroValue[T](), false
	}
	e := l.root.prevElement
	l.remove(e)
	return e.value, true
}

func (l *list[T]) InsertBefore(value T, mark Element[T]) (Element[T], dequeerr.Error) {
	if mark == nil {
		return l.PushBack(value), nil
	}
	m, ok := l.own(mark)
	if !ok {
		return nil, dequeerr.InvalidIterator("insert mark does not belong to this list")
	}
	return l.insertValue(value, m.prevElement), nil
}

func (l *list[T]) InsertAfter(value T, mark Element[T]) (Element[T], dequeerr.Error) {
	if mark == nil {
		return nil, dequeerr.InvalidIterator("insert mark is nil")
	}
	m, ok := l.own(mark)
	if !ok {
		return nil, dequeerr.InvalidIterator("insert mark does not belong to this list")
	}
	return l.insertValue(value, m), nil
}

func (l *list[T]) Remove(mark Element[T]) (Element[T], dequeerr.Error) {
	if mark == nil {
		return nil, dequeerr.InvalidIterator("cannot remove the one-past-last position")
	}
	m, ok := l.own(mark)
	if !ok {
		return nil, dequeerr.InvalidIterator("removal mark does not belong to this list")
	}
	successor := m.nextElement
	l.remove(m)
	if successor == &l.root {
		return nil, nil
	}
	return successor, nil
}

func (l *list[T]) PushBackList(other List[T]) {
	l.lazyInit()
	for i, e := other.Len(), other.FrontElement(); i > 0; i, e = i-1, e.Next() {
		l.insertValue(e.Value(), l.root.prevElement)
	}
}

func (l *list[T]) Clear() {
	if l.root.nextElement == nil {
		l.Init()
		return
	}
	// Detach every element so stale references cannot pass the ownership
	// checks after the clear.
	for e := l.root.nextElement; e != &l.root; {
		next := e.nextElement
		e.nextElement = nil
		e.prevElement = nil
		e.list = nil
		e = next
	}
	l.Init()
}
