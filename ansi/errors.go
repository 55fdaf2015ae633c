package ansi

import "errors"

// Errors returned by engine operations. Each one identifies the first
// violated precondition; mutating operations leave the buffer unchanged
// when any of them is returned.
var (
	// ErrLicense indicates the bound authorization gate is not satisfied.
	ErrLicense = errors.New("license not initialized")

	// ErrNilBuffer indicates the view has no backing memory.
	ErrNilBuffer = errors.New("nil buffer")

	// ErrNilSize indicates there is no size holder (nil view pointer).
	ErrNilSize = errors.New("nil size holder")

	// ErrCapacity indicates the backing region has no room for content
	// plus the terminator.
	ErrCapacity = errors.New("invalid capacity")

	// ErrZeroSize indicates the operation requires content but the
	// buffer is empty.
	ErrZeroSize = errors.New("size is zero")

	// ErrBigSize indicates the declared size exceeds the capacity.
	ErrBigSize = errors.New("size exceeds capacity")

	// ErrZeroCount indicates an empty pattern or zero count.
	ErrZeroCount = errors.New("count is zero")

	// ErrBigCount indicates the count does not fit the window, the
	// remaining size, or the spare capacity.
	ErrBigCount = errors.New("count too big")

	// ErrBigLeft indicates the left position is negative, past the
	// right position, or past the size.
	ErrBigLeft = errors.New("left position too big")

	// ErrBigRight indicates the right position is the not-found
	// sentinel or past the last content byte.
	ErrBigRight = errors.New("right position too big")

	// ErrItems indicates a nil pattern.
	ErrItems = errors.New("nil items")

	// ErrTerminator indicates the byte at offset size is not zero.
	ErrTerminator = errors.New("missing terminator")

	// ErrOverlap indicates the buffer's active region and the pattern
	// occupy intersecting memory.
	ErrOverlap = errors.New("buffer and items overlap")
)
