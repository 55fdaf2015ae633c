package ansi

import (
	"github.com/maxdz-gmbh/mdz-ansi-alg/internal/horspool"
	"github.com/maxdz-gmbh/mdz-ansi-alg/internal/scan"
)

// FindByte returns the position of the first occurrence of item in the
// closed window [left, right], or NotFound.
func (b *Buffer) FindByte(left, right int, item byte) (int, error) {
	if err := b.check(); err != nil {
		return NotFound, err
	}
	if err := b.checkWindow(left, right); err != nil {
		return NotFound, err
	}
	return scan.IndexByte(b.mem, left, right, item), nil
}

// RFindByte returns the position of the last occurrence of item in the
// closed window [left, right], or NotFound.
func (b *Buffer) RFindByte(left, right int, item byte) (int, error) {
	if err := b.check(); err != nil {
		return NotFound, err
	}
	if err := b.checkWindow(left, right); err != nil {
		return NotFound, err
	}
	return scan.LastIndexByte(b.mem, left, right, item), nil
}

// Find returns the position of the first occurrence of items in the
// closed window [left, right], or NotFound. A pattern longer than the
// window is ErrBigCount, not a miss.
func (b *Buffer) Find(left, right int, items []byte) (int, error) {
	if err := b.checkSearch(left, right, items); err != nil {
		return NotFound, err
	}
	return horspool.Index(b.mem, left, right, items), nil
}

// RFind returns the position of the last occurrence of items in the
// closed window [left, right], or NotFound.
func (b *Buffer) RFind(left, right int, items []byte) (int, error) {
	if err := b.checkSearch(left, right, items); err != nil {
		return NotFound, err
	}
	return horspool.LastIndex(b.mem, left, right, items), nil
}

// FirstOf returns the position of the first byte in [left, right] that
// is a member of items, or NotFound.
func (b *Buffer) FirstOf(left, right int, items []byte) (int, error) {
	if err := b.checkClass(left, right, items); err != nil {
		return NotFound, err
	}
	return scan.FirstOf(b.mem, left, right, items), nil
}

// FirstNotOf returns the position of the first byte in [left, right]
// that is not a member of items, or NotFound.
func (b *Buffer) FirstNotOf(left, right int, items []byte) (int, error) {
	if err := b.checkClass(left, right, items); err != nil {
		return NotFound, err
	}
	return scan.FirstNotOf(b.mem, left, right, items), nil
}

// LastOf returns the position of the last byte in [left, right] that is
// a member of items, or NotFound.
func (b *Buffer) LastOf(left, right int, items []byte) (int, error) {
	if err := b.checkClass(left, right, items); err != nil {
		return NotFound, err
	}
	return scan.LastOf(b.mem, left, right, items), nil
}

// LastNotOf returns the position of the last byte in [left, right] that
// is not a member of items, or NotFound.
func (b *Buffer) LastNotOf(left, right int, items []byte) (int, error) {
	if err := b.checkClass(left, right, items); err != nil {
		return NotFound, err
	}
	return scan.LastNotOf(b.mem, left, right, items), nil
}

// checkSearch validates substring-search arguments: the pattern must
// additionally fit the window.
func (b *Buffer) checkSearch(left, right int, items []byte) error {
	if err := b.checkClass(left, right, items); err != nil {
		return err
	}
	if len(items) > right-left+1 {
		return ErrBigCount
	}
	return nil
}

// checkClass validates class-scan arguments (no window-fit requirement:
// the pattern is a set, not a substring).
func (b *Buffer) checkClass(left, right int, items []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	return b.checkWindow(left, right)
}
