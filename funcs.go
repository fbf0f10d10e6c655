package vector

// Funcs customizes element lifetime management for a Vector. The zero
// value treats T as a plain value type: default construction yields the
// zero value, duplication is assignment, teardown is clearing the slot.
type Funcs[T any] struct {
	// New default-constructs an element for size-growing Resize and the
	// sized constructors. nil means the zero value.
	New func() (T, error)

	// Clone duplicates an element for Clone, CopyFrom, and copy-based
	// migration during reallocation. nil declares T trivially
	// relocatable: duplication is plain assignment and migration is an
	// infallible bit move. Set Clone for identity-carrying types whose
	// values must not be duplicated by assignment.
	Clone func(T) (T, error)

	// Drop tears an element down before its slot is vacated or reused.
	// nil means no teardown beyond clearing the slot.
	Drop func(*T)
}

func (f Funcs[T]) makeNew() (T, error) {
	if f.New == nil {
		var zero T
		return zero, nil
	}
	return f.New()
}

func (f Funcs[T]) clone(x T) (T, error) {
	if f.Clone == nil {
		return x, nil
	}
	return f.Clone(x)
}
