package vector

import (
	"fmt"
	"iter"
	"unsafe"
)

// Vector is a contiguous, resizable sequence of T. Slots [0, Len())
// hold live elements in order; slots [Len(), Cap()) are dead memory
// owned by the underlying RawMemory. Capacity grows on demand and is
// never released while the vector lives.
//
// Not goroutine-safe: callers sharing a vector must serialize access
// externally.
type Vector[T any] struct {
	data  RawMemory[T]
	size  int
	fn    Funcs[T]
	grows uint64
}

// New creates an empty vector: size 0, capacity 0, no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithFuncs creates an empty vector with element lifetime hooks.
func NewWithFuncs[T any](fn Funcs[T]) *Vector[T] {
	return &Vector[T]{fn: fn}
}

// NewWithSize creates a vector of n default-constructed elements with
// capacity exactly n.
func NewWithSize[T any](n int) (*Vector[T], error) {
	return NewWithSizeFuncs[T](n, Funcs[T]{})
}

// NewWithSizeFuncs creates a vector of n elements built by fn.New with
// capacity exactly n. If a construction fails, the elements built so
// far are destroyed and the error is returned.
func NewWithSizeFuncs[T any](n int, fn Funcs[T]) (*Vector[T], error) {
	v := &Vector[T]{fn: fn}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. Precondition: i < Len(), checked
// only in vectordebug builds. The address is invalidated by any
// reallocating operation.
func (v *Vector[T]) At(i int) *T {
	if debugChecks && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.size))
	}
	return v.data.At(i)
}

// All ranges over (index, element) pairs of the live range in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values ranges over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Slice returns a mutable view of the live range [0, Len()). The view
// shares storage with the vector and is invalidated by any reallocating
// operation. Returns nil for an empty vector.
func (v *Vector[T]) Slice() []T {
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice(v.data.At(0), v.size)
}

// Reserve guarantees capacity for at least n elements. When growth is
// needed it allocates exactly n slots, migrates the live range, and
// swaps storage; on any migration failure the vector is unchanged
// (strong guarantee). Element addresses change when storage is
// replaced.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}
	if n <= v.data.Cap() {
		return nil
	}
	var nd RawMemory[T]
	if err := nd.alloc(n); err != nil {
		return err
	}
	if err := v.constructInto(&nd, 0, &v.data, 0, v.size); err != nil {
		nd.Release()
		return fmt.Errorf("vector: reserve: %w", err)
	}
	v.retireRange(&v.data, 0, v.size)
	v.data.Swap(&nd)
	nd.Release()
	v.grows++
	return nil
}

// Resize sets the element count to n. Shrinking destroys the trailing
// elements in place and keeps the capacity. Growing reserves exactly n
// slots, then default-constructs the new tail; if a construction fails
// the partial tail is destroyed and the size is unchanged, though the
// capacity may already have grown.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return ErrInvalidCapacity
	case n < v.size:
		v.destroyRange(&v.data, n, v.size)
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			x, err := v.fn.makeNew()
			if err != nil {
				v.destroyRange(&v.data, v.size, i)
				return fmt.Errorf("vector: resize: %w", err)
			}
			*v.data.At(i) = x
		}
	}
	v.size = n
	return nil
}

// Swap exchanges the contents of two vectors in O(1), no allocation.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.fn, other.fn = other.fn, v.fn
	v.grows, other.grows = other.grows, v.grows
}

// Move transfers v's storage and elements into a freshly returned
// vector in O(1). v is left valid and empty with size 0 and capacity 0,
// keeping its lifetime hooks.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{size: v.size, fn: v.fn, grows: v.grows}
	out.data.MoveFrom(&v.data)
	v.size = 0
	v.grows = 0
	return out
}

// MoveFrom replaces v's contents with other's storage and elements in
// O(1), destroying v's current elements first. other is left valid and
// empty. Self move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Clear()
	v.data.MoveFrom(&other.data)
	v.size = other.size
	v.grows = other.grows
	other.size = 0
	other.grows = 0
}

// Clone returns an independent duplicate: fresh storage of exactly
// Len() slots with every element duplicated via Funcs.Clone (plain
// assignment when unset). On a mid-copy failure the partial duplicate
// is destroyed and the error returned; the source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{fn: v.fn}
	if err := out.data.alloc(v.size); err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		c, err := v.fn.clone(*v.data.At(i))
		if err != nil {
			out.destroyRange(&out.data, 0, i)
			out.data.Release()
			return nil, fmt.Errorf("vector: clone: %w", err)
		}
		*out.data.At(i) = c
	}
	out.size = v.size
	return out, nil
}

// CopyFrom replaces v's contents with an independent copy of rhs. The
// copies are made with v's own Funcs, which v keeps regardless of the
// path taken. When rhs does not fit in the current capacity the copy is
// built in fresh storage and swapped in, leaving v unchanged on failure
// (strong guarantee). Otherwise the existing capacity is reused and
// elements are overwritten in place, which avoids allocation but leaves
// v in a valid mixed state if a clone fails partway (basic guarantee).
// Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		var nd RawMemory[T]
		if err := nd.alloc(rhs.size); err != nil {
			return err
		}
		for i := 0; i < rhs.size; i++ {
			c, err := v.fn.clone(*rhs.data.At(i))
			if err != nil {
				v.destroyRange(&nd, 0, i)
				nd.Release()
				return fmt.Errorf("vector: copy: %w", err)
			}
			*nd.At(i) = c
		}
		v.Clear()
		v.data.Swap(&nd)
		nd.Release()
		v.size = rhs.size
		v.grows++
		return nil
	}
	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		c, err := v.fn.clone(*rhs.data.At(i))
		if err != nil {
			return fmt.Errorf("vector: copy: %w", err)
		}
		p := v.data.At(i)
		if v.fn.Drop != nil {
			v.fn.Drop(p)
		}
		*p = c
	}
	if rhs.size < v.size {
		v.destroyRange(&v.data, rhs.size, v.size)
	} else {
		for i := v.size; i < rhs.size; i++ {
			c, err := v.fn.clone(*rhs.data.At(i))
			if err != nil {
				v.destroyRange(&v.data, v.size, i)
				return fmt.Errorf("vector: copy: %w", err)
			}
			*v.data.At(i) = c
		}
	}
	v.size = rhs.size
	return nil
}

// Clear destroys all elements and keeps the allocated capacity.
func (v *Vector[T]) Clear() {
	v.destroyRange(&v.data, 0, v.size)
	v.size = 0
}

// Release destroys all elements and releases the storage. The vector
// remains valid and empty. Call it when elements carry Drop hooks; the
// garbage collector reclaims the memory either way but never runs
// teardown.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// destroyRange tears down elements [from, to): Drop hook, then clearing
// the slot so dead memory holds no references.
func (v *Vector[T]) destroyRange(m *RawMemory[T], from, to int) {
	var zero T
	for i := from; i < to; i++ {
		p := m.At(i)
		if v.fn.Drop != nil {
			v.fn.Drop(p)
		}
		*p = zero
	}
}

// clearRange zeroes slots [from, to) without running Drop. Used after a
// bit move, when ownership of the values travelled with the bits.
func (v *Vector[T]) clearRange(m *RawMemory[T], from, to int) {
	var zero T
	for i := from; i < to; i++ {
		*m.At(i) = zero
	}
}

// constructInto builds n elements into dst starting at dstOff from the
// source range starting at srcOff, leaving the source untouched.
// Trivially relocatable elements are bit copied and cannot fail.
// Otherwise each element is cloned; when the k-th clone fails, the k
// destination elements already built are destroyed before the error is
// returned, so dst holds nothing constructed by this call.
func (v *Vector[T]) constructInto(dst *RawMemory[T], dstOff int, src *RawMemory[T], srcOff, n int) error {
	if v.fn.Clone == nil {
		for k := 0; k < n; k++ {
			*dst.At(dstOff + k) = *src.At(srcOff + k)
		}
		return nil
	}
	for k := 0; k < n; k++ {
		c, err := v.fn.Clone(*src.At(srcOff + k))
		if err != nil {
			v.destroyRange(dst, dstOff, dstOff+k)
			return err
		}
		*dst.At(dstOff + k) = c
	}
	return nil
}

// retireRange destroys a migrated-from source range. Cloned elements
// get their Drop hook; bit-moved values only have their slots cleared,
// since ownership travelled with the bits.
func (v *Vector[T]) retireRange(m *RawMemory[T], from, to int) {
	if v.fn.Clone == nil {
		v.clearRange(m, from, to)
		return
	}
	v.destroyRange(m, from, to)
}
