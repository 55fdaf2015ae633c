// Package horspool implements Boyer-Moore-Horspool substring search in
// both directions over closed byte windows.
//
// Index scans the window [left, right] left to right and returns the
// first match; LastIndex mirrors the construction and scan direction and
// returns the last match. Both compute a 256-entry bad-character shift
// table per call; the table lives on the stack, so searches stay
// allocation-free.
//
// Callers are responsible for bounds validation: both functions assume
// 0 <= left <= right < len(data) and 1 <= len(pattern) <= right-left+1.
// Not-found is reported as -1.
package horspool
