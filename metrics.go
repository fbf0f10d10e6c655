package vector

import "unsafe"

// SizeInUse returns the number of bytes held by live elements.
func (v *Vector[T]) SizeInUse() int {
	var zero T
	return v.size * int(unsafe.Sizeof(zero))
}

// CapacityBytes returns the number of bytes reserved by the storage
// block.
func (v *Vector[T]) CapacityBytes() int {
	var zero T
	return v.data.Cap() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live slots to allocated slots
// (0.0 to 1.0). Returns 0.0 if nothing is allocated.
func (v *Vector[T]) Utilization() float64 {
	if v.data.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.data.Cap())
}

// Grows returns how many times the vector has replaced its storage to
// grow.
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	var zero T
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.data.Cap(),
		ElemSize:    int(unsafe.Sizeof(zero)),
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.CapacityBytes(),
		Utilization: v.Utilization(),
		Grows:       v.grows,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes held by live elements
	Capacity    int     // Bytes reserved by the storage block
	Utilization float64 // Ratio of live to allocated slots (0.0-1.0)
	Grows       uint64  // Growth reallocations so far
}
