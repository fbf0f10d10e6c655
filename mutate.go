package vector

import (
	"fmt"
	"math"
)

// nextCap returns the doubled growth capacity: 1 from empty, otherwise
// twice the current capacity. Saturates instead of overflowing; the
// allocation itself rejects capacities the element size cannot fit.
func (v *Vector[T]) nextCap() int {
	c := v.data.Cap()
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	default:
		return c * 2
	}
}

// PushBack appends x, growing by doubling when at capacity. Ownership
// of x transfers to the vector on success; on error the vector is
// unchanged and the caller keeps x (strong guarantee).
func (v *Vector[T]) PushBack(x T) error {
	if v.size < v.data.Cap() {
		*v.data.At(v.size) = x
		v.size++
		return nil
	}
	_, err := v.emplaceGrow(v.size, func() (T, error) { return x, nil }, false)
	return err
}

// EmplaceBack constructs a new last element via construct and returns
// its address. When growth is needed, the element is constructed
// directly at its slot in the new storage before existing elements
// migrate around it; any failure rolls the operation back completely
// (strong guarantee).
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	return v.Emplace(v.size, construct)
}

// PopBack destroys the last element. Precondition: non-empty vector,
// checked only in vectordebug builds.
func (v *Vector[T]) PopBack() {
	if debugChecks && v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.destroyRange(&v.data, v.size-1, v.size)
	v.size--
}

// Insert places x before index i, preserving the relative order of all
// other elements. Valid positions are [0, Len()]; i == Len() appends.
// Ownership of x transfers on success, as with PushBack. Growth paths
// give the strong guarantee; the in-capacity interior path shifts
// elements by plain assignment with no rollback and offers only the
// basic guarantee, trading recovery for O(1) extra memory.
func (v *Vector[T]) Insert(i int, x T) error {
	if debugChecks && (i < 0 || i > v.size) {
		panic(fmt.Sprintf("vector: insert position %d out of range [0,%d]", i, v.size))
	}
	if v.size == v.data.Cap() {
		_, err := v.emplaceGrow(i, func() (T, error) { return x, nil }, false)
		return err
	}
	_, err := v.Emplace(i, func() (T, error) { return x, nil })
	return err
}

// Emplace constructs a new element before index i via construct and
// returns its address. Position and guarantee rules match Insert.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (*T, error) {
	if debugChecks && (i < 0 || i > v.size) {
		panic(fmt.Sprintf("vector: insert position %d out of range [0,%d]", i, v.size))
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(i, construct, true)
	}
	x, err := construct()
	if err != nil {
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	if i == v.size {
		p := v.data.At(v.size)
		*p = x
		v.size++
		return p, nil
	}
	// Interior with room: move the last element into the fresh tail
	// slot, then shift [i, size-1) right one slot back to front so no
	// source is overwritten before it has been read.
	*v.data.At(v.size) = *v.data.At(v.size - 1)
	for j := v.size - 1; j > i; j-- {
		*v.data.At(j) = *v.data.At(j - 1)
	}
	p := v.data.At(i)
	*p = x
	v.size++
	return p, nil
}

// Erase removes the element at index i, shifting every later element
// one slot left by assignment; the element formerly at i+1 ends up at
// i. Precondition: i < Len(), checked only in vectordebug builds. Like
// interior Insert, the shift is assignment-based with no rollback and
// carries the basic guarantee.
func (v *Vector[T]) Erase(i int) {
	if debugChecks && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: erase position %d out of range [0,%d)", i, v.size))
	}
	if v.fn.Drop != nil {
		v.fn.Drop(v.data.At(i))
	}
	for j := i; j < v.size-1; j++ {
		*v.data.At(j) = *v.data.At(j + 1)
	}
	v.clearRange(&v.data, v.size-1, v.size)
	v.size--
}

// emplaceGrow reallocates at the doubled capacity with the new element
// constructed directly at slot i of the new storage, then migrates the
// prefix [0, i) and the suffix [i, size) around it. Originals are
// retired only after every construction has succeeded, so any failure
// leaves the vector untouched (strong guarantee). ownsNew tells
// rollback whether the new element was built by this operation (Drop
// it) or moved in by the caller, who still holds it on failure.
func (v *Vector[T]) emplaceGrow(i int, construct func() (T, error), ownsNew bool) (*T, error) {
	var nd RawMemory[T]
	if err := nd.alloc(v.nextCap()); err != nil {
		return nil, err
	}
	x, err := construct()
	if err != nil {
		nd.Release()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	*nd.At(i) = x

	rollback := func() {
		if ownsNew && v.fn.Drop != nil {
			v.fn.Drop(nd.At(i))
		}
		nd.Release()
	}
	if err := v.constructInto(&nd, 0, &v.data, 0, i); err != nil {
		rollback()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	if err := v.constructInto(&nd, i+1, &v.data, i, v.size-i); err != nil {
		v.destroyRange(&nd, 0, i)
		rollback()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	v.retireRange(&v.data, 0, v.size)
	v.data.Swap(&nd)
	nd.Release()
	v.grows++
	v.size++
	return v.data.At(i), nil
}
