package ansi

import (
	"bytes"
	"testing"
)

// FuzzInsertRemoveRoundTrip inserts at an arbitrary position and removes
// the same span again; content and size must return to the initial
// state.
func FuzzInsertRemoveRoundTrip(f *testing.F) {
	f.Add([]byte("abcdef"), 2, []byte("XY"))
	f.Add([]byte("a"), 0, []byte("bb"))
	f.Add([]byte(""), 0, []byte("x"))
	f.Add([]byte("\x00a\x00"), 1, []byte("\x00"))

	f.Fuzz(func(t *testing.T, initial []byte, pos int, items []byte) {
		if len(items) == 0 || len(items) > 32 || len(initial) > 256 {
			return
		}
		if pos < 0 || pos > len(initial) {
			return
		}
		mem := make([]byte, len(initial)+len(items)+1)
		copy(mem, initial)
		b, err := Attach(mem, len(initial), WithGate(testGate()))
		if err != nil {
			t.Fatalf("Attach failed: %v", err)
		}

		if err := b.Insert(pos, items); err != nil {
			// The overlap test is on closed address ranges, so two
			// allocations that happen to touch are rejected.
			if err == ErrOverlap {
				return
			}
			t.Fatalf("Insert failed: %v", err)
		}
		if b.Size() != len(initial)+len(items) {
			t.Fatalf("size after insert = %d, want %d", b.Size(), len(initial)+len(items))
		}
		if err := b.RemoveFrom(pos, len(items)); err != nil {
			t.Fatalf("RemoveFrom failed: %v", err)
		}

		if b.Size() != len(initial) || !bytes.Equal(b.Bytes(), initial) {
			t.Errorf("round trip got %q size %d, want %q", b.Bytes(), b.Size(), initial)
		}
		if mem[b.Size()] != 0 {
			t.Error("terminator missing after round trip")
		}
	})
}

// FuzzCount compares Count against a naive rescan of the same window.
func FuzzCount(f *testing.F) {
	f.Add([]byte("aaaa"), []byte("aa"), true)
	f.Add([]byte("aaaa"), []byte("aa"), false)
	f.Add([]byte("abcabcabc"), []byte("abc"), false)

	f.Fuzz(func(t *testing.T, data, pattern []byte, overlap bool) {
		if len(pattern) == 0 || len(pattern) > len(data) || len(data) > 256 {
			return
		}

		mem := make([]byte, len(data)+1)
		copy(mem, data)
		b, err := Attach(mem, len(data), WithGate(testGate()))
		if err != nil {
			t.Fatalf("Attach failed: %v", err)
		}

		got, err := b.Count(0, len(data)-1, pattern, overlap)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}

		want := 0
		for pos := 0; pos+len(pattern) <= len(data); {
			if bytes.Equal(data[pos:pos+len(pattern)], pattern) {
				want++
				if overlap {
					pos++
				} else {
					pos += len(pattern)
				}
			} else {
				pos++
			}
		}

		if got != want {
			t.Errorf("Count(%q, %q, overlap=%v) = %d, want %d", data, pattern, overlap, got, want)
		}
	})
}

// FuzzTrim compares Trim over the full window against bytes.Trim.
func FuzzTrim(f *testing.F) {
	f.Add([]byte("  hello  "), []byte(" "))
	f.Add([]byte("xxyyxx"), []byte("xy"))
	f.Add([]byte("aaa"), []byte("a"))

	f.Fuzz(func(t *testing.T, data, set []byte) {
		if len(data) == 0 || len(set) == 0 || len(data) > 256 || len(set) > 16 {
			return
		}
		if bytes.IndexByte(data, 0) >= 0 || bytes.IndexByte(set, 0) >= 0 {
			return
		}

		mem := make([]byte, len(data)+1)
		copy(mem, data)
		b, err := Attach(mem, len(data), WithGate(testGate()))
		if err != nil {
			t.Fatalf("Attach failed: %v", err)
		}

		if err := b.Trim(0, len(data)-1, set); err != nil {
			t.Fatalf("Trim failed: %v", err)
		}

		want := bytes.Trim(data, string(set))
		if !bytes.Equal(b.Bytes(), want) {
			t.Errorf("Trim(%q, %q) = %q, want %q", data, set, b.Bytes(), want)
		}
	})
}
