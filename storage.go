package arraydeque

// Slot is one cell of backing storage. A Slot is either empty or holds
// exactly one live element. Only the Deque reads and writes slots; the zero
// Slot is empty.
type Slot[T any] struct {
	value T
	live  bool
}

// Live reports whether the slot holds an element.
func (s *Slot[T]) Live() bool { return s.live }

func (s *Slot[T]) put(t T) {
	if s.live {
		panic("arraydeque: write to a live slot")
	}
	s.value, s.live = t, true
}

// take moves the element out and leaves the slot empty, so the slot keeps no
// reference to it.
func (s *Slot[T]) take() T {
	if !s.live {
		panic("arraydeque: read of an empty slot")
	}
	t := s.value
	var zero T
	s.value, s.live = zero, false
	return t
}

func (s *Slot[T]) ref() *T {
	if !s.live {
		panic("arraydeque: reference to an empty slot")
	}
	return &s.value
}

// Storage is the constraint satisfied by a pointer to a fixed-size array of
// slots. A Deque embeds A by value, so the backing array lives wherever the
// Deque lives and no operation allocates.
//
// Len must be constant for a given A and at least 1. The usable capacity of
// a Deque backed by A is Len()-1.
//
// Any fixed array type can serve as backing storage:
//
//	type Array3[T any] [3]arraydeque.Slot[T]
//
//	func (a *Array3[T]) Len() int                     { return len(a) }
//	func (a *Array3[T]) At(i int) *arraydeque.Slot[T] { return &a[i] }
type Storage[T, A any] interface {
	*A
	Len() int
	At(i int) *Slot[T]
}

// Array2 is a backing array of 2 slots (capacity 1).
type Array2[T any] [2]Slot[T]

func (a *Array2[T]) Len() int          { return len(a) }
func (a *Array2[T]) At(i int) *Slot[T] { return &a[i] }

// Array4 is a backing array of 4 slots (capacity 3).
type Array4[T any] [4]Slot[T]

func (a *Array4[T]) Len() int          { return len(a) }
func (a *Array4[T]) At(i int) *Slot[T] { return &a[i] }

// Array8 is a backing array of 8 slots (capacity 7).
type Array8[T any] [8]Slot[T]

func (a *Array8[T]) Len() int          { return len(a) }
func (a *Array8[T]) At(i int) *Slot[T] { return &a[i] }

// Array16 is a backing array of 16 slots (capacity 15).
type Array16[T any] [16]Slot[T]

func (a *Array16[T]) Len() int          { return len(a) }
func (a *Array16[T]) At(i int) *Slot[T] { return &a[i] }

// Array32 is a backing array of 32 slots (capacity 31).
type Array32[T any] [32]Slot[T]

func (a *Array32[T]) Len() int          { return len(a) }
func (a *Array32[T]) At(i int) *Slot[T] { return &a[i] }

// Array64 is a backing array of 64 slots (capacity 63).
type Array64[T any] [64]Slot[T]

func (a *Array64[T]) Len() int          { return len(a) }
func (a *Array64[T]) At(i int) *Slot[T] { return &a[i] }

// Array128 is a backing array of 128 slots (capacity 127).
type Array128[T any] [128]Slot[T]

func (a *Array128[T]) Len() int          { return len(a) }
func (a *Array128[T]) At(i int) *Slot[T] { return &a[i] }

// Array256 is a backing array of 256 slots (capacity 255).
type Array256[T any] [256]Slot[T]

func (a *Array256[T]) Len() int          { return len(a) }
func (a *Array256[T]) At(i int) *Slot[T] { return &a[i] }

// Array512 is a backing array of 512 slots (capacity 511).
type Array512[T any] [512]Slot[T]

func (a *Array512[T]) Len() int          { return len(a) }
func (a *Array512[T]) At(i int) *Slot[T] { return &a[i] }

// Array1024 is a backing array of 1024 slots (capacity 1023).
type Array1024[T any] [1024]Slot[T]

func (a *Array1024[T]) Len() int          { return len(a) }
func (a *Array1024[T]) At(i int) *Slot[T] { return &a[i] }

// Shorthands for a Deque over each provided backing array.
type (
	Deque2[T any]    = Deque[T, Array2[T], *Array2[T]]
	Deque4[T any]    = Deque[T, Array4[T], *Array4[T]]
	Deque8[T any]    = Deque[T, Array8[T], *Array8[T]]
	Deque16[T any]   = Deque[T, Array16[T], *Array16[T]]
	Deque32[T any]   = Deque[T, Array32[T], *Array32[T]]
	Deque64[T any]   = Deque[T, Array64[T], *Array64[T]]
	Deque128[T any]  = Deque[T, Array128[T], *Array128[T]]
	Deque256[T any]  = Deque[T, Array256[T], *Array256[T]]
	Deque512[T any]  = Deque[T, Array512[T], *Array512[T]]
	Deque1024[T any] = Deque[T, Array1024[T], *Array1024[T]]
)
