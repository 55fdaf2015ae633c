package ansi

import (
	"github.com/maxdz-gmbh/mdz-ansi-alg/license"
)

// NotFound is the position reported when a search has no match. It is
// also rejected as a window bound, so a failed search result fed back
// in as right yields ErrBigRight rather than an empty scan.
const NotFound = -1

// Buffer is a borrowed view over a caller-owned byte region with a
// tracked logical size. The zero value is detached and fails every
// operation with ErrNilBuffer.
type Buffer struct {
	mem  []byte // physical region, len(mem) >= capacity+1
	size int
	gate *license.Gate
}

// Option configures a Buffer view at Attach time.
type Option func(*Buffer)

// WithGate binds an explicit authorization gate instead of the
// process-wide default.
func WithGate(g *license.Gate) Option {
	return func(b *Buffer) {
		b.gate = g
	}
}

// Attach binds a view over mem with the given logical size. The
// capacity is len(mem)-1: one byte is always reserved for the
// terminator. Attach validates the view's shape only; content checks
// such as the terminator happen on entry to each operation.
func Attach(mem []byte, size int, opts ...Option) (*Buffer, error) {
	if mem == nil {
		return nil, ErrNilBuffer
	}
	if len(mem) < 2 {
		return nil, ErrCapacity
	}
	if size < 0 || size > len(mem)-1 {
		return nil, ErrBigSize
	}

	b := &Buffer{
		mem:  mem,
		size: size,
		gate: license.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Size returns the current logical content length.
func (b *Buffer) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Capacity returns the maximum content length, not counting the
// terminator byte.
func (b *Buffer) Capacity() int {
	if b == nil || b.mem == nil {
		return 0
	}
	return len(b.mem) - 1
}

// Bytes returns the active content as a sub-slice of the caller's
// region. It shares memory with the buffer and is invalidated by the
// next mutation.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.mem == nil {
		return nil
	}
	return b.mem[:b.size]
}

// String returns a copy of the active content. Unlike the engine
// operations it allocates; it is meant for diagnostics and tests.
func (b *Buffer) String() string {
	return string(b.Bytes())
}
