package ansi

import (
	"unsafe"

	"github.com/maxdz-gmbh/mdz-ansi-alg/license"
)

// check runs the preconditions shared by every operation: the
// authorization gate, the view pointer, and the backing memory, in that
// order. A nil view pointer is the "no size holder" failure; a view
// without backing memory is the nil-buffer failure.
func (b *Buffer) check() error {
	g := license.Default()
	if b != nil && b.gate != nil {
		g = b.gate
	}
	if !g.Authorized() {
		return ErrLicense
	}
	if b == nil {
		return ErrNilSize
	}
	if b.mem == nil {
		return ErrNilBuffer
	}
	return nil
}

// checkWindow validates a closed [left, right] window over content
// positions. The sentinel (or any negative right) is rejected before
// the ordering check so it never masquerades as an empty window.
func (b *Buffer) checkWindow(left, right int) error {
	if right < 0 || right >= b.size {
		return ErrBigRight
	}
	if left < 0 || left > right {
		return ErrBigLeft
	}
	return nil
}

// checkTerminator enforces the zero byte at offset size. Size-changing
// operations run it on entry so a corrupted view is rejected before any
// shifting happens.
func (b *Buffer) checkTerminator() error {
	if b.mem[b.size] != 0 {
		return ErrTerminator
	}
	return nil
}

// checkItems validates a pattern argument.
func checkItems(items []byte) error {
	if items == nil {
		return ErrItems
	}
	if len(items) == 0 {
		return ErrZeroCount
	}
	return nil
}

// overlaps reports whether the closed address ranges
// [data, data+extent] and [items, items+len(items)] intersect. The test
// is on addresses only, independent of byte content.
func overlaps(data []byte, extent int, items []byte) bool {
	d := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(items)))
	return p <= d+uintptr(extent) && d <= p+uintptr(len(items))
}
