//go:build !vectordebug

package vector

// Preconditions are unchecked in release builds; violating them is
// undefined behavior. See debug.go.
const debugChecks = false
