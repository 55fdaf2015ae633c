package horspool

// Index returns the position of the first (leftmost) occurrence of
// pattern in data[left..right], or -1.
func Index(data []byte, left, right int, pattern []byte) int {
	m := len(pattern)

	// Bad-character table: distance from the last occurrence of each
	// byte value to the pattern's end. The final pattern byte does not
	// contribute, otherwise mismatching on it would shift by zero.
	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}

	pos := left
	for pos+m-1 <= right {
		i := m - 1
		for i >= 0 && data[pos+i] == pattern[i] {
			i--
		}
		if i < 0 {
			return pos
		}
		pos += shift[data[pos+m-1]]
	}
	return -1
}

// LastIndex returns the position of the last (rightmost) occurrence of
// pattern in data[left..right], or -1. Construction and scan direction
// mirror Index: the table records first occurrences scanned right to
// left, and trial positions move right to left.
func LastIndex(data []byte, left, right int, pattern []byte) int {
	m := len(pattern)

	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := m - 1; i >= 1; i-- {
		shift[pattern[i]] = i
	}

	pos := right - m + 1
	for pos >= left {
		i := 0
		for i < m && data[pos+i] == pattern[i] {
			i++
		}
		if i == m {
			return pos
		}
		pos -= shift[data[pos]]
	}
	return -1
}
