package license

import "sync"

// Gate is a latched authorization state. Its zero value is unsatisfied.
type Gate struct {
	mu sync.RWMutex
	ok bool
}

// NewGate creates an independent gate from the four identity hashes.
// The gate is satisfied when every hash is non-zero.
func NewGate(firstNameHash, lastNameHash, emailHash, licenseHash uint64) *Gate {
	g := &Gate{}
	g.set(firstNameHash, lastNameHash, emailHash, licenseHash)
	return g
}

func (g *Gate) set(firstNameHash, lastNameHash, emailHash, licenseHash uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ok = firstNameHash != 0 && lastNameHash != 0 && emailHash != 0 && licenseHash != 0
	return g.ok
}

// Authorized reports whether the gate has been satisfied.
func (g *Gate) Authorized() bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ok
}

// defaultGate is the process-wide gate bound by engine views unless an
// explicit gate is supplied.
var defaultGate Gate

// Init latches the process-wide default gate. It should be called once
// before any engine operation. It reports whether the gate was
// satisfied.
func Init(firstNameHash, lastNameHash, emailHash, licenseHash uint64) bool {
	return defaultGate.set(firstNameHash, lastNameHash, emailHash, licenseHash)
}

// Deinit clears the process-wide default gate. Subsequent engine
// operations bound to it fail until Init is called again.
func Deinit() {
	defaultGate.mu.Lock()
	defer defaultGate.mu.Unlock()
	defaultGate.ok = false
}

// Default returns the process-wide default gate.
func Default() *Gate {
	return &defaultGate
}
