// Package vector implements a generic, contiguous, resizable sequence
// container with explicit control over storage allocation and element
// lifetime.
//
// # Overview
//
// The package is built as two layers:
//
//   - RawMemory owns one contiguous block of slots and knows nothing
//     about which slots hold live values.
//   - Vector composes a RawMemory with a live-element count and performs
//     all construction and destruction of elements inside the block.
//
// Owning that boundary is the point: growth, insertion, and copying can
// give precise failure-safety guarantees because the container decides
// exactly when each slot becomes live and when it is torn down. This is
// aimed at library and runtime authors; for everyday use a plain slice
// is the right tool.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(1, 9) // [1 9 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifetime
//
// Element types with non-trivial lifetimes register hooks through Funcs:
// New for default construction, Clone for duplication, Drop for
// teardown. New and Clone may fail; the per-operation documentation
// states whether a failure rolls the container back completely (strong
// guarantee) or leaves it in a valid but unspecified arrangement (basic
// guarantee). A nil Clone declares the type trivially relocatable, which
// lets reallocation move elements with infallible bit copies.
//
// # Growth
//
// Capacity never shrinks. Reserve and Resize allocate exactly what is
// asked for; PushBack and Insert grow by doubling (floor 1), which
// amortizes migration cost to O(1) per appended element. Any operation
// that replaces storage invalidates addresses obtained from At and
// views obtained from Slice.
//
// # Thread Safety
//
// Vector and RawMemory perform no internal synchronization. Callers
// sharing a vector across goroutines must serialize access externally.
//
// # Precondition Checks
//
// Indexed access and position arguments carry preconditions rather than
// returning errors. Build with -tags vectordebug to turn violations
// into panics; release builds leave them unchecked.
package vector
