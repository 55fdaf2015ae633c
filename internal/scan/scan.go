package scan

// IndexByte returns the position of the first occurrence of item in
// data[left..right], or -1 if the window does not contain it.
func IndexByte(data []byte, left, right int, item byte) int {
	for i := left; i <= right; i++ {
		if data[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the position of the last occurrence of item in
// data[left..right], or -1 if the window does not contain it.
func LastIndexByte(data []byte, left, right int, item byte) int {
	for i := right; i >= left; i-- {
		if data[i] == item {
			return i
		}
	}
	return -1
}

// FirstOf returns the position of the first byte in data[left..right]
// that is a member of set, or -1.
func FirstOf(data []byte, left, right int, set []byte) int {
	for i := left; i <= right; i++ {
		if member(set, data[i]) {
			return i
		}
	}
	return -1
}

// FirstNotOf returns the position of the first byte in data[left..right]
// that is not a member of set, or -1.
func FirstNotOf(data []byte, left, right int, set []byte) int {
	for i := left; i <= right; i++ {
		if !member(set, data[i]) {
			return i
		}
	}
	return -1
}

// LastOf returns the position of the last byte in data[left..right]
// that is a member of set, or -1.
func LastOf(data []byte, left, right int, set []byte) int {
	for i := right; i >= left; i-- {
		if member(set, data[i]) {
			return i
		}
	}
	return -1
}

// LastNotOf returns the position of the last byte in data[left..right]
// that is not a member of set, or -1.
func LastNotOf(data []byte, left, right int, set []byte) int {
	for i := right; i >= left; i-- {
		if !member(set, data[i]) {
			return i
		}
	}
	return -1
}

func member(set []byte, b byte) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}
