// Package arraydeque provides a fixed-capacity double-ended queue stored in a
// fixed-size array held by value, so that a Deque can live on the stack or
// inside another struct and never allocates.
//
// The capacity of a Deque is always one less than the length of its backing
// array. The unused slot tells an empty Deque (head == tail) apart from a
// full one.
package arraydeque

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Deque is a double-ended queue with a fixed capacity. It can be used for
// either LIFO or FIFO ordering, or something in between, and supports
// indexing, insertion and removal at arbitrary positions.
//
// The elements live in slots of the backing array A. The type parameter PA
// is always *A and is inferred, so a Deque is usually named through one of
// the shorthands:
//
//	var d arraydeque.Deque8[int] // capacity 7
//
// The zero value is an empty Deque ready to use. Assigning a Deque copies
// its whole backing array. A Deque is not safe for concurrent use; wrap it
// with a mutex if several goroutines need it.
type Deque[T, A any, PA Storage[T, A]] struct {
	// Slots [head, tail) modulo len(slots) are live. Invariants:
	// - 0 <= head, tail < len(slots).
	// - (tail-head) mod len(slots) < len(slots).
	slots      A
	head, tail int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty Deque. It is equivalent to new(Deque[T, A, PA]).
func New[T, A any, PA Storage[T, A]]() *Deque[T, A, PA] {
	return new(Deque[T, A, PA])
}

// FromSeq pushes every element of seq to the back of a new Deque, in order.
// If seq yields more elements than the Deque can hold, FromSeq stops
// consuming seq and returns the full Deque along with a *CapacityError
// holding the element that did not fit. Elements already pushed are kept.
func FromSeq[T, A any, PA Storage[T, A]](seq iter.Seq[T]) (*Deque[T, A, PA], error) {
	d := New[T, A, PA]()
	for t := range seq {
		if err := d.PushBack(t); err != nil {
			return d, err
		}
	}
	return d, nil
}

// FromSlice copies the elements of s into a new Deque. It has the same
// overflow semantics as FromSeq.
func FromSlice[T, A any, PA Storage[T, A]](s []T) (*Deque[T, A, PA], error) {
	return FromSeq[T, A, PA](slices.Values(s))
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T, A, PA]) Len() int {
	if d == nil {
		return 0
	}
	return d.len()
}
func (d *Deque[T, A, PA]) len() int { return d.wrapSub(d.tail, d.head) }

// Cap returns the number of elements the Deque can hold, which is the length
// of the backing array minus one.
func (d *Deque[T, A, PA]) Cap() int { return d.size() - 1 }

// Empty returns whether the Deque is empty.
func (d *Deque[T, A, PA]) Empty() bool { return d.tail == d.head }

// Full returns whether the Deque is full. Pushing to a full Deque fails.
func (d *Deque[T, A, PA]) Full() bool { return d.len() == d.Cap() }

// PushBack puts t at the back of the Deque. Use PushBack and PopFront for
// FIFO ordering, or PushBack and PopBack for LIFO ordering.
//
// If the Deque is full, it is left untouched and a *CapacityError holding t
// is returned.
func (d *Deque[T, A, PA]) PushBack(t T) error {
	if d.Full() {
		return &CapacityError[T]{Element: t}
	}
	d.pushBack(t)
	return nil
}

func (d *Deque[T, A, PA]) pushBack(t T) {
	d.slot(d.tail).put(t)
	d.tail = d.wrapAdd(d.tail, 1)
}

// PushFront puts t at the front of the Deque. If the Deque is full, it is
// left untouched and a *CapacityError holding t is returned.
func (d *Deque[T, A, PA]) PushFront(t T) error {
	if d.Full() {
		return &CapacityError[T]{Element: t}
	}
	d.head = d.wrapSub(d.head, 1)
	d.slot(d.head).put(t)
	return nil
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T, A, PA]) PeekBack() (t T, ok bool) {
	if p := d.BackPtr(); p != nil {
		return *p, true
	}
	return
}

// BackPtr returns a pointer to the last element in the Deque, or nil if it is
// empty. The pointer is only valid until the next mutation of the Deque.
func (d *Deque[T, A, PA]) BackPtr() *T {
	if d.Empty() {
		return nil
	}
	return d.slot(d.wrapSub(d.tail, 1)).ref()
}

// PeekFront returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T, A, PA]) PeekFront() (t T, ok bool) {
	if p := d.FrontPtr(); p != nil {
		return *p, true
	}
	return
}

// FrontPtr returns a pointer to the first element in the Deque, or nil if it
// is empty. The pointer is only valid until the next mutation of the Deque.
func (d *Deque[T, A, PA]) FrontPtr() *T {
	if d.Empty() {
		return nil
	}
	return d.slot(d.head).ref()
}

// PopBack removes the last element in the Deque and returns it. If it's
// empty, returns false. The vacated slot is zeroed, so the Deque keeps no
// reference to the element.
func (d *Deque[T, A, PA]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	d.tail = d.wrapSub(d.tail, 1)
	return d.slot(d.tail).take(), true
}

// PopFront removes the first element in the Deque and returns it. If it's
// empty, returns false. The vacated slot is zeroed, so the Deque keeps no
// reference to the element.
func (d *Deque[T, A, PA]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	t = d.slot(d.head).take()
	d.head = d.wrapAdd(d.head, 1)
	return t, true
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// At returns the element at the i-th position in the Deque. It returns false
// if i is out of bounds.
func (d *Deque[T, A, PA]) At(i int) (t T, ok bool) {
	if p := d.Ptr(i); p != nil {
		return *p, true
	}
	return
}

// Ptr returns a pointer to the element at the i-th position in the Deque, or
// nil if i is out of bounds. The pointer is only valid until the next
// mutation of the Deque.
func (d *Deque[T, A, PA]) Ptr(i int) *T {
	if !d.inBounds(i) {
		return nil
	}
	return d.ref(i)
}

// Set writes t to the i-th position in the Deque. It returns false, and
// writes nothing, if i is out of bounds.
func (d *Deque[T, A, PA]) Set(i int, t T) bool {
	p := d.Ptr(i)
	if p == nil {
		return false
	}
	*p = t
	return true
}

// Swap swaps the elements in the i-th and j-th positions. It returns false,
// and swaps nothing, if either index is out of bounds.
func (d *Deque[T, A, PA]) Swap(i, j int) bool {
	if !d.inBounds(i) || !d.inBounds(j) {
		return false
	}
	a, b := d.ref(i), d.ref(j)
	*a, *b = *b, *a
	return true
}

// Insert places t at the i-th position, moving the elements after it one
// position back. i may be Len(), which is the same as PushBack.
//
// Only the shorter side of the Deque is shifted: elements before i move one
// slot toward the front when i is in the first half, otherwise elements from
// i on move one slot toward the back. Insert at 0 or Len() shifts nothing.
//
// It returns an error wrapping ErrIndexOutOfRange if i is not in
// [0, Len()], and a *CapacityError holding t if the Deque is full. The index
// is checked first, so an invalid index on a full Deque reports
// ErrIndexOutOfRange. In both cases the Deque is left untouched.
func (d *Deque[T, A, PA]) Insert(i int, t T) error {
	n := d.len()
	if i < 0 || i > n {
		return fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, i, n)
	}
	if d.Full() {
		return &CapacityError[T]{Element: t}
	}

	if i < n-i {
		d.head = d.wrapSub(d.head, 1)
		for k := 0; k < i; k++ {
			d.move(k, k+1)
		}
	} else {
		d.tail = d.wrapAdd(d.tail, 1)
		for k := n; k > i; k-- {
			d.move(k, k-1)
		}
	}
	d.slot(d.phys(i)).put(t)
	return nil
}

// Remove removes the element at the i-th position and returns it, closing
// the gap by shifting the shorter side of the Deque, the back side on a tie.
// It returns false if i is out of bounds.
func (d *Deque[T, A, PA]) Remove(i int) (t T, ok bool) {
	if !d.inBounds(i) {
		return
	}
	n := d.len()
	t = d.slot(d.phys(i)).take()

	if i < n-i-1 {
		for k := i; k > 0; k-- {
			d.move(k, k-1)
		}
		d.head = d.wrapAdd(d.head, 1)
	} else {
		for k := i; k < n-1; k++ {
			d.move(k, k+1)
		}
		d.tail = d.wrapSub(d.tail, 1)
	}
	return t, true
}

// SwapRemoveBack removes the element at the i-th position in O(1) by
// replacing it with the last element. Ordering is not preserved. It returns
// false if i is out of bounds.
func (d *Deque[T, A, PA]) SwapRemoveBack(i int) (t T, ok bool) {
	if !d.Swap(i, d.len()-1) {
		return
	}
	return d.PopBack()
}

// SwapRemoveFront removes the element at the i-th position in O(1) by
// replacing it with the first element. Ordering is not preserved. It returns
// false if i is out of bounds.
func (d *Deque[T, A, PA]) SwapRemoveFront(i int) (t T, ok bool) {
	if !d.Swap(i, 0) {
		return
	}
	return d.PopFront()
}

// Extend pushes the elements of seq to the back of the Deque until it is
// full. Once the Deque is full, the rest of seq is dropped silently: seq is
// not consumed further and no error is reported. Extend returns the number
// of elements pushed, so a caller that cares can tell truncation happened.
func (d *Deque[T, A, PA]) Extend(seq iter.Seq[T]) int {
	var n int
	if d.Full() {
		return n
	}
	for t := range seq {
		d.pushBack(t)
		n++
		if d.Full() {
			break
		}
	}
	return n
}

// Append moves every element of src to the back of dst, leaving src empty.
// It is all or nothing: if dst cannot hold every element of src, neither
// Deque is modified and an error wrapping ErrCapacity is returned. dst and
// src must be different Deques.
//
// Append is a function rather than a method so that src may use a different
// backing array than dst.
func Append[T, A, B any, PA Storage[T, A], PB Storage[T, B]](dst *Deque[T, A, PA], src *Deque[T, B, PB]) error {
	n := src.Len()
	if free := dst.Cap() - dst.Len(); n > free {
		return fmt.Errorf("%w: appending %d elements with %d free", ErrCapacity, n, free)
	}
	for range n {
		t, _ := src.PopFront()
		dst.pushBack(t)
	}
	return nil
}

// Truncate keeps the first n elements of the Deque and removes the rest. It
// does nothing if n >= Len(). A negative n removes every element.
func (d *Deque[T, A, PA]) Truncate(n int) {
	for d.len() > max(n, 0) {
		d.PopBack()
	}
}

// Retain keeps only the elements for which keep returns true, preserving
// their order, and removes the rest. If keep panics, the elements it already
// rejected are removed and every other element is kept.
func (d *Deque[T, A, PA]) Retain(keep func(T) bool) {
	n := d.len()
	var r, w int
	defer func() {
		// [r, n) was not visited
		for ; r < n; r, w = r+1, w+1 {
			if w != r {
				d.move(w, r)
			}
		}
		d.tail = d.wrapAdd(d.head, w)
	}()

	for ; r < n; r++ {
		if !keep(*d.ref(r)) {
			d.slot(d.phys(r)).take()
			continue
		}
		if w != r {
			d.move(w, r)
		}
		w++
	}
}

// Clear removes every element in O(Len()), zeroing their slots.
func (d *Deque[T, A, PA]) Clear() {
	for !d.Empty() {
		d.PopBack()
	}
	d.head, d.tail = 0, 0
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them
// in order. Prefer passing a buffer to CopySlice for memory reuse.
func (d *Deque[T, A, PA]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	_ = d.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until the buffer is
// full or the Deque is over, whichever happens first.
//
// CopySlice returns the number of elements copied. A start index out of
// bounds copies nothing.
func (d *Deque[T, A, PA]) CopySlice(start int, buf []T) int {
	if start < 0 {
		return 0
	}
	n := min(len(buf), d.Len()-start)
	for i := range n {
		buf[i] = *d.ref(start + i)
	}
	return max(n, 0)
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable, A any, PA Storage[T, A]](d *Deque[T, A, PA], t T) bool {
	return Index(d, t) >= 0
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T, A, PA]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) >= 0
}

// Index returns the index of the first occurrence of t in the Deque or -1 if
// absent. It cannot be a method, otherwise Deque would be constrained to
// comparable elements only. Index has the same semantics as slices.Index.
func Index[T comparable, A any, PA Storage[T, A]](d *Deque[T, A, PA], t T) int {
	return d.IndexFunc(func(e T) bool { return e == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T, A, PA]) IndexFunc(f func(T) bool) int {
	for i, t := range d.All() {
		if f(t) {
			return i
		}
	}
	return -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Where the elements sit in the backing arrays does not
// matter, and the backing arrays may differ. Two nil Deques are equal, but an
// empty Deque and nil are not.
func Equal[T comparable, A, B any, PA Storage[T, A], PB Storage[T, B]](d1 *Deque[T, A, PA], d2 *Deque[T, B, PB]) bool {
	return EqualFunc(d1, d2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, A, B any, PA Storage[T, A], PB Storage[T, B]](d1 *Deque[T, A, PA], d2 *Deque[T, B, PB], eq func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == nil && d2 == nil
	}
	if d1.len() != d2.len() {
		return false
	}
	for i := range d1.len() {
		if !eq(*d1.ref(i), *d2.ref(i)) {
			return false
		}
	}
	return true
}

// Compare compares the elements of both Deques in order, the same way as
// slices.Compare. A nil Deque compares like an empty one.
func Compare[T cmp.Ordered, A, B any, PA Storage[T, A], PB Storage[T, B]](d1 *Deque[T, A, PA], d2 *Deque[T, B, PB]) int {
	return CompareFunc(d1, d2, cmp.Compare[T])
}

// CompareFunc is like Compare, but compares elements with f.
func CompareFunc[T, A, B any, PA Storage[T, A], PB Storage[T, B]](d1 *Deque[T, A, PA], d2 *Deque[T, B, PB], f func(T, T) int) int {
	n1, n2 := d1.Len(), d2.Len()
	for i := range min(n1, n2) {
		if c := f(*d1.ref(i), *d2.ref(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(n1, n2)
}

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the queue, or until the first call that returns false.
func (d *Deque[T, A, PA]) ForEach(f func(T) bool) {
	for t := range d.Iter() {
		if !f(t) {
			return
		}
	}
}

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
// Does not panic if modified during iteration.
func (d *Deque[T, A, PA]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		for i := 0; i < d.len(); i++ {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front. It
// has the same semantics as slices.Backward. Does not panic if modified
// during iteration.
func (d *Deque[T, A, PA]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		for i := d.len() - 1; i >= 0; i-- {
			if i >= d.len() {
				continue
			}
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead. Does not panic if the Deque is modified during iteration.
func (d *Deque[T, A, PA]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.All() {
			if !yield(t) {
				return
			}
		}
	}
}

// RIter returns an iterator over values only, from back to front.
func (d *Deque[T, A, PA]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.Backward() {
			if !yield(t) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes elements from the front as it
// yields them. When the loop stops early, the elements not yet yielded are
// removed anyway, so after ranging over Drain the Deque is always empty.
// Nothing is removed until the iterator is ranged over.
func (d *Deque[T, A, PA]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Clear()
		for {
			t, ok := d.PopFront()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrCapacity is matched by every error caused by a Deque not having room for
// more elements.
var ErrCapacity = errors.New("insufficient capacity")

// ErrIndexOutOfRange is returned when inserting at an index outside
// [0, Len()].
var ErrIndexOutOfRange = errors.New("index out of range")

// CapacityError is returned when an element cannot be added to a full Deque.
// It hands the rejected element back to the caller. errors.Is(err,
// ErrCapacity) holds for every CapacityError.
type CapacityError[T any] struct {
	Element T
}

func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("%v: element %v rejected", ErrCapacity, e.Element)
}

func (e *CapacityError[T]) Unwrap() error { return ErrCapacity }

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// size is the length of the backing array.
func (d *Deque[T, A, PA]) size() int { return PA(&d.slots).Len() }

func (d *Deque[T, A, PA]) slot(p int) *Slot[T] { return PA(&d.slots).At(p) }

func (d *Deque[T, A, PA]) wrapAdd(p, k int) int { return (p + k) % d.size() }

func (d *Deque[T, A, PA]) wrapSub(p, k int) int {
	n := d.size()
	return (p - k%n + n) % n
}

// phys maps logical position i to its slot in the backing array.
func (d *Deque[T, A, PA]) phys(i int) int { return d.wrapAdd(d.head, i) }

func (d *Deque[T, A, PA]) ref(i int) *T { return d.slot(d.phys(i)).ref() }

// move takes the element at logical position from and puts it at to, which
// must be empty.
func (d *Deque[T, A, PA]) move(to, from int) {
	d.slot(d.phys(to)).put(d.slot(d.phys(from)).take())
}

func (d *Deque[T, A, PA]) inBounds(i int) bool {
	return i >= 0 && i < d.Len()
}
