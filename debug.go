//go:build vectordebug

package vector

// debugChecks enables precondition checks on indexed access, positions,
// and pops. Violations panic. Enable with -tags vectordebug.
const debugChecks = true
