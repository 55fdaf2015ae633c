// Package ansi provides allocation-free algorithms over fixed-capacity
// byte buffers: single-byte strings that may contain embedded zero
// bytes and end with one trailing zero byte.
//
// The package never owns memory. A Buffer is a borrowed view over a
// caller-supplied region plus a tracked logical size; every operation
// works in place and the caller keeps full ownership of the region's
// lifetime. Capacity is the maximum number of content bytes and does
// not include the terminator, so the physical region must be at least
// capacity+1 bytes.
//
// Basic usage:
//
//	mem := make([]byte, 16)
//	copy(mem, "  hello  ")
//	buf, err := ansi.Attach(mem, 9)
//	if err != nil {
//	    // capacity/size/terminator problem
//	}
//
//	pos, _ := buf.Find(0, buf.Size()-1, []byte("ll"))  // 4
//	_ = buf.Trim(0, buf.Size()-1, []byte(" "))         // "hello", size 5
//
// Windows:
//
// Search, count, and trim operations take a closed window [left, right]
// over content positions. The right bound must address an existing
// content byte; passing NotFound (or any negative value) as right is
// always rejected with ErrBigRight so a failed search result cannot be
// silently reused as a bound.
//
// Error discipline:
//
// Every operation validates its arguments in a fixed priority order and
// returns the first violated precondition as one of the package's
// sentinel errors. Read-only operations report "legitimately absent" as
// (NotFound, nil); an error return always means the call itself was
// invalid. Mutating operations are all-or-nothing: on error the buffer
// bytes and size are untouched.
//
// Authorization:
//
// Operations consult the authorization gate bound at Attach time
// (license.Default unless overridden with WithGate) and fail with
// ErrLicense before touching any memory while the gate is unsatisfied.
//
// Concurrency:
//
// Operations assume exclusive access to the buffer for their duration
// and hold no state across calls. Views over disjoint regions may be
// used concurrently; serializing calls on one region is the caller's
// job.
package ansi
