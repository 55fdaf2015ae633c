package ansi

import (
	"errors"
	"testing"

	"github.com/maxdz-gmbh/mdz-ansi-alg/license"
)

// testGate returns a satisfied gate so tests do not touch the
// process-wide default.
func testGate() *license.Gate {
	return license.NewGate(1, 2, 3, 4)
}

// mustAttach builds an authorized view over a fresh region holding
// content, with the given capacity.
func mustAttach(t *testing.T, content string, capacity int) *Buffer {
	t.Helper()

	if len(content) > capacity {
		t.Fatalf("content %q does not fit capacity %d", content, capacity)
	}
	mem := make([]byte, capacity+1)
	copy(mem, content)

	b, err := Attach(mem, len(content), WithGate(testGate()))
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	return b
}

func TestAttach(t *testing.T) {
	b := mustAttach(t, "hello", 8)

	if b.Size() != 5 {
		t.Errorf("Size = %d, want 5", b.Size())
	}
	if b.Capacity() != 8 {
		t.Errorf("Capacity = %d, want 8", b.Capacity())
	}
	if b.String() != "hello" {
		t.Errorf("String = %q, want %q", b.String(), "hello")
	}
}

func TestAttachErrors(t *testing.T) {
	tests := []struct {
		name string
		mem  []byte
		size int
		want error
	}{
		{"nil region", nil, 0, ErrNilBuffer},
		{"no room for terminator", make([]byte, 1), 0, ErrCapacity},
		{"empty region", []byte{}, 0, ErrCapacity},
		{"size exceeds capacity", make([]byte, 4), 4, ErrBigSize},
		{"negative size", make([]byte, 4), -1, ErrBigSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Attach(tt.mem, tt.size); !errors.Is(err, tt.want) {
				t.Errorf("Attach = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnauthorizedGate(t *testing.T) {
	mem := make([]byte, 8)
	copy(mem, "abc")
	b, err := Attach(mem, 3, WithGate(&license.Gate{}))
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if _, err := b.FindByte(0, 2, 'a'); !errors.Is(err, ErrLicense) {
		t.Errorf("FindByte = %v, want ErrLicense", err)
	}
	if err := b.Insert(0, []byte("x")); !errors.Is(err, ErrLicense) {
		t.Errorf("Insert = %v, want ErrLicense", err)
	}
	if b.String() != "abc" {
		t.Errorf("buffer mutated by unauthorized call: %q", b.String())
	}
}

func TestDefaultGateLatch(t *testing.T) {
	defer license.Deinit()
	license.Deinit()

	mem := make([]byte, 8)
	copy(mem, "abc")
	b, err := Attach(mem, 3)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if _, err := b.FindByte(0, 2, 'a'); !errors.Is(err, ErrLicense) {
		t.Errorf("before Init: FindByte = %v, want ErrLicense", err)
	}

	license.Init(1, 2, 3, 4)
	if pos, err := b.FindByte(0, 2, 'a'); err != nil || pos != 0 {
		t.Errorf("after Init: FindByte = (%d, %v), want (0, nil)", pos, err)
	}
}

func TestNilView(t *testing.T) {
	var b *Buffer

	defer license.Deinit()
	license.Init(1, 2, 3, 4)

	if _, err := b.FindByte(0, 0, 'a'); !errors.Is(err, ErrNilSize) {
		t.Errorf("nil view FindByte = %v, want ErrNilSize", err)
	}
	if err := b.RemoveFrom(0, 1); !errors.Is(err, ErrNilSize) {
		t.Errorf("nil view RemoveFrom = %v, want ErrNilSize", err)
	}
	if b.Size() != 0 || b.Capacity() != 0 || b.Bytes() != nil {
		t.Error("nil view accessors should report an empty detached view")
	}
}

func TestZeroValueView(t *testing.T) {
	b := &Buffer{gate: testGate()}

	if _, err := b.FindByte(0, 0, 'a'); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("detached view FindByte = %v, want ErrNilBuffer", err)
	}
}

func TestBytesSharesMemory(t *testing.T) {
	b := mustAttach(t, "abc", 8)

	view := b.Bytes()
	if err := b.Insert(3, []byte("d")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if view[0] != 'a' {
		t.Error("Bytes should alias the caller's region")
	}
	if b.String() != "abcd" {
		t.Errorf("content = %q, want %q", b.String(), "abcd")
	}
}
