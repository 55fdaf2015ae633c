// Package scan provides linear and class-membership scans over closed
// byte windows.
//
// All functions operate on a window [left, right] of the backing slice,
// with both bounds inclusive. Callers are responsible for bounds
// validation: every function assumes 0 <= left <= right < len(data).
// Not-found is reported as -1.
//
// The class scans (FirstOf, FirstNotOf, LastOf, LastNotOf) treat the set
// argument as an unordered collection of byte values; duplicates are
// harmless.
package scan
