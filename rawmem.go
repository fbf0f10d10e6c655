package vector

import (
	"math"
	"unsafe"
)

// noCopy suppresses copying of the type embedding it: go vet's
// copylocks check reports any copy by assignment or argument passing.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawMemory owns one contiguous block of memory sized for a fixed
// number of element slots. It knows nothing about element lifetime:
// slots are handed out as raw addresses and the owner decides which of
// them hold live values. Release never tears elements down; whoever
// placed values into the block must destroy them before discarding it.
//
// RawMemory values must not be duplicated. Transfer ownership with
// MoveFrom or Swap.
type RawMemory[T any] struct {
	noCopy noCopy

	ptr unsafe.Pointer // first slot; nil when cap == 0
	cap int
}

// NewRawMemory allocates a block for capacity slots of T. Capacity 0
// allocates nothing. Returns ErrInvalidCapacity for a negative request
// and ErrCapacityOverflow when capacity times the element size exceeds
// the addressable size; no partial allocation is left behind on error.
func NewRawMemory[T any](capacity int) (*RawMemory[T], error) {
	m := new(RawMemory[T])
	if err := m.alloc(capacity); err != nil {
		return nil, err
	}
	return m, nil
}

// alloc points m, which must be empty, at a freshly allocated block.
// The backing array is typed so the garbage collector keeps scanning
// pointers held by stored elements; ptr alone keeps it reachable.
func (m *RawMemory[T]) alloc(capacity int) error {
	if capacity < 0 {
		return ErrInvalidCapacity
	}
	if capacity == 0 {
		return nil
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(capacity) > uintptr(math.MaxInt)/size {
		return ErrCapacityOverflow
	}
	buf := make([]T, capacity)
	m.ptr = unsafe.Pointer(&buf[0])
	m.cap = capacity
	return nil
}

// At returns the address offset slots from the start of the block.
// Precondition: 0 <= offset <= Cap(). offset == Cap() addresses one
// past the last slot and must not be dereferenced. Checked only in
// vectordebug builds.
func (m *RawMemory[T]) At(offset int) *T {
	if debugChecks && (offset < 0 || offset > m.cap) {
		panic("vector: raw memory offset out of range")
	}
	var zero T
	return (*T)(unsafe.Add(m.ptr, uintptr(offset)*unsafe.Sizeof(zero)))
}

// Cap returns the slot count of the block.
func (m *RawMemory[T]) Cap() int {
	return m.cap
}

// MoveFrom transfers ownership of other's block to m in O(1) and leaves
// other empty. Any block m previously held is released; its live
// elements must already have been destroyed by their owner.
func (m *RawMemory[T]) MoveFrom(other *RawMemory[T]) {
	if m == other {
		return
	}
	m.ptr, m.cap = other.ptr, other.cap
	other.ptr, other.cap = nil, 0
}

// Swap exchanges the blocks of m and other in O(1), no allocation.
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	m.ptr, other.ptr = other.ptr, m.ptr
	m.cap, other.cap = other.cap, m.cap
}

// Release drops the block and leaves m empty. Elements still live
// inside the block are not destroyed.
func (m *RawMemory[T]) Release() {
	m.ptr, m.cap = nil, 0
}
