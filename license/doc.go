// Package license implements the one-time authorization gate consulted
// by every engine operation.
//
// Init latches the process-wide default gate from four opaque identity
// hash values; the hashes are treated as policy inputs and are not
// interpreted beyond a non-zero check. Engine operations consult the
// gate through its Authorized predicate and fail until the gate is
// satisfied.
//
// Independent Gate values can be constructed with NewGate so the
// algorithmic core stays testable without touching process-wide state.
package license
