package ansi

import (
	"bytes"

	"github.com/maxdz-gmbh/mdz-ansi-alg/internal/horspool"
)

// Compare reports whether the content starting at left equals items.
// With partial set, exactly len(items) bytes are compared; otherwise
// the remaining content from left must also have the same length, and a
// length mismatch is a non-equal result, not an error.
func (b *Buffer) Compare(left int, items []byte, partial bool) (bool, error) {
	if err := b.check(); err != nil {
		return false, err
	}
	if b.size == 0 {
		return false, ErrZeroSize
	}
	if err := checkItems(items); err != nil {
		return false, err
	}
	count := len(items)
	if left < 0 || left >= b.size {
		return false, ErrBigLeft
	}
	if left+count > b.size {
		return false, ErrBigCount
	}

	if !partial && b.size-left != count {
		return false, nil
	}
	return bytes.Equal(b.mem[left:left+count], items), nil
}

// Count returns the number of occurrences of items in the closed window
// [left, right]. With allowOverlap the scan resumes one byte past each
// match; without it the scan skips the whole match, Horspool-style.
func (b *Buffer) Count(left, right int, items []byte, allowOverlap bool) (int, error) {
	if err := b.checkSearch(left, right, items); err != nil {
		return 0, err
	}

	count := len(items)
	n := 0
	pos := left
	for pos+count-1 <= right {
		m := horspool.Index(b.mem, pos, right, items)
		if m < 0 {
			break
		}
		n++
		if allowOverlap {
			pos = m + 1
		} else {
			pos = m + count
		}
	}
	return n, nil
}
