package ansi

import (
	"github.com/maxdz-gmbh/mdz-ansi-alg/internal/horspool"
	"github.com/maxdz-gmbh/mdz-ansi-alg/internal/scan"
)

// Insert copies items into the buffer at position left, shifting the
// tail right. left == Size() appends. The pattern must not share memory
// with the destination's active region.
func (b *Buffer) Insert(left int, items []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	if b.Capacity() == 0 {
		return ErrCapacity
	}
	if err := b.checkTerminator(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	count := len(items)
	if left < 0 || left > b.size {
		return ErrBigLeft
	}
	if b.size+count > b.Capacity() {
		return ErrBigCount
	}
	if overlaps(b.mem, b.size+count, items) {
		return ErrOverlap
	}

	// Tail shift is a self-overlapping move; copy tolerates that.
	copy(b.mem[left+count:b.size+count], b.mem[left:b.size])
	copy(b.mem[left:], items)
	b.size += count
	b.mem[b.size] = 0
	return nil
}

// RemoveFrom deletes exactly count bytes starting at left, shifting the
// remainder over the gap.
func (b *Buffer) RemoveFrom(left, count int) error {
	if err := b.checkMutate(); err != nil {
		return err
	}
	if count <= 0 {
		return ErrZeroCount
	}
	if left < 0 || left >= b.size {
		return ErrBigLeft
	}
	if left+count > b.size {
		return ErrBigCount
	}

	b.removeSpan(left, count)
	return nil
}

// Remove deletes every occurrence of items inside the closed window
// [left, right]. After each deletion the scan resumes at the position
// the removed span occupied, over the already-compacted tail, so bytes
// left of a removal are never rematched and nothing is double-counted.
func (b *Buffer) Remove(left, right int, items []byte) error {
	if err := b.checkMutate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := b.checkWindow(left, right); err != nil {
		return err
	}
	count := len(items)
	if count > right-left+1 {
		return ErrBigCount
	}

	pos := left
	for pos+count-1 <= right {
		m := horspool.Index(b.mem, pos, right, items)
		if m < 0 {
			break
		}
		b.removeSpan(m, count)
		right -= count
		pos = m
	}
	return nil
}

// TrimLeft deletes the run of items-member bytes at the left edge of
// the window [left, right], stopping at the first non-member. A window
// made entirely of members is deleted whole.
func (b *Buffer) TrimLeft(left, right int, items []byte) error {
	if err := b.checkTrim(left, right, items); err != nil {
		return err
	}
	b.trimLeftSpan(left, right, items)
	return nil
}

// TrimRight deletes the run of items-member bytes at the right edge of
// the window [left, right], stopping at the first non-member.
func (b *Buffer) TrimRight(left, right int, items []byte) error {
	if err := b.checkTrim(left, right, items); err != nil {
		return err
	}
	b.trimRightSpan(left, right, items)
	return nil
}

// Trim deletes items-member runs at both edges of the window
// [left, right]. The right edge goes first so the left scan works on
// final positions.
func (b *Buffer) Trim(left, right int, items []byte) error {
	if err := b.checkTrim(left, right, items); err != nil {
		return err
	}
	removed := b.trimRightSpan(left, right, items)
	right -= removed
	if right >= left {
		b.trimLeftSpan(left, right, items)
	}
	return nil
}

// trimLeftSpan removes the member prefix of the window and reports how
// many bytes went away.
func (b *Buffer) trimLeftSpan(left, right int, items []byte) int {
	stop := scan.FirstNotOf(b.mem, left, right, items)
	end := right // whole window is members
	if stop == left {
		return 0
	}
	if stop > left {
		end = stop - 1
	}
	n := end - left + 1
	b.removeSpan(left, n)
	return n
}

// trimRightSpan removes the member suffix of the window and reports how
// many bytes went away.
func (b *Buffer) trimRightSpan(left, right int, items []byte) int {
	stop := scan.LastNotOf(b.mem, left, right, items)
	start := left // whole window is members
	if stop == right {
		return 0
	}
	if stop >= left {
		start = stop + 1
	}
	n := right - start + 1
	b.removeSpan(start, n)
	return n
}

// checkMutate runs the preconditions shared by the size-changing
// operations that require existing content.
func (b *Buffer) checkMutate() error {
	if err := b.check(); err != nil {
		return err
	}
	if b.size == 0 {
		return ErrZeroSize
	}
	return b.checkTerminator()
}

func (b *Buffer) checkTrim(left, right int, items []byte) error {
	if err := b.checkMutate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	return b.checkWindow(left, right)
}

// removeSpan shifts the tail left over [from, from+n) and restores the
// terminator at the new size.
func (b *Buffer) removeSpan(from, n int) {
	copy(b.mem[from:], b.mem[from+n:b.size])
	b.size -= n
	b.mem[b.size] = 0
}
