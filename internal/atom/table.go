package atom

import (
	"fmt"
	"hash/crc32"
)

// loadFactorNum/loadFactorDen is the 0.8 load-factor trigger (count*10/8 >= cap
// in the original), expressed as a fraction to avoid float comparisons.
const (
	loadFactorNum = 10
	loadFactorDen = 8
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Table is an open-addressed, linear-probed intern table. The index array is
// sized 2*cap so there are always empty slots; a stored index is
// atomPosition+1 so that the zero value means "empty" without a separate
// occupancy bitmap.
type Table struct {
	atoms []*Atom
	index []uint32 // len == 2*cap
	cap   int

	// Special holds the reserved atoms registered at construction time,
	// keyed by a small enum so callers never re-atomize well-known strings.
	Special [numSpecial]*Atom
}

// NewTable creates an empty table and interns the reserved atoms used by the
// rest of the shell (built-in names, recognized environment keys, booleans).
func NewTable() *Table {
	t := &Table{}
	t.registerSpecials()
	return t
}

// hash computes the table's 32-bit hash for a byte sequence. hash/crc32's
// Castagnoli table transparently uses the CPU's CRC32C instruction when the
// runtime detects SSE4.2 (amd64) or the ARM64 CRC32 extension, and falls
// back to a software implementation otherwise -- collapsing the spec's
// explicit "hardware CRC32C, else software Murmur" branch into one call.
func hash(b []byte) uint32 {
	h := crc32.Checksum(b, crc32cTable)
	if h == 0 {
		h = 1024 // fixed sentinel for the all-zero hash, per the atom-table contract
	}
	return h
}

// fastReduce maps a hash into [0, n) via Lemire's 32x32->high-32 multiply
// reduction, avoiding a modulo.
func fastReduce(x uint32, n int) int {
	return int((uint64(x) * uint64(n)) >> 32)
}

// Atomize returns the canonical atom for b, interning a new one if needed.
func (t *Table) Atomize(b []byte) (*Atom, error) {
	if uint64(len(b)) >= 1<<32 {
		return nil, fmt.Errorf("atom: %w: length %d exceeds 2^32", ErrValue, len(b))
	}
	if t.count()*loadFactorNum >= t.cap*loadFactorDen {
		if err := t.grow(); err != nil {
			return nil, err
		}
	}
	h := hash(b)
	idx := fastReduce(h, 2*t.cap)
	for {
		stored := t.index[idx]
		if stored == 0 {
			break
		}
		existing := t.atoms[stored-1]
		if existing.hash == h && bytesEqual(existing.bytes, b) {
			return existing, nil
		}
		idx++
		if idx >= 2*t.cap {
			idx = 0
		}
	}
	// Register the slot before computing the lowercase twin below: if that
	// computation causes a recursive Atomize to rehash the table, this atom
	// must already be visible so the rehash relocates it correctly instead
	// of orphaning its index slot.
	owned := make([]byte, len(b))
	copy(owned, b)
	a := &Atom{bytes: owned, hash: h}
	t.index[idx] = uint32(len(t.atoms) + 1)
	t.atoms = append(t.atoms, a)

	lower := make([]byte, len(b))
	needRecurse := false
	for i, c := range b {
		if c|0x20 != c {
			needRecurse = true
		}
		lower[i] = c | 0x20
	}
	if !needRecurse {
		a.lowercase = a
		return a, nil
	}
	twin, err := t.Atomize(lower)
	if err != nil {
		return nil, err
	}
	a.lowercase = twin
	return a, nil
}

// AtomizeString is a convenience wrapper for Atomize([]byte(s)).
func (t *Table) AtomizeString(s string) (*Atom, error) {
	return t.Atomize([]byte(s))
}

func (t *Table) count() int { return len(t.atoms) }

func (t *Table) grow() error {
	oldCap := t.cap
	newCap := 4
	if oldCap != 0 {
		newCap = 2 * oldCap
	}
	t.cap = newCap
	t.index = make([]uint32, 2*newCap)
	for i, a := range t.atoms {
		idx := fastReduce(a.hash, 2*newCap)
		for t.index[idx] != 0 {
			idx++
			if idx >= 2*newCap {
				idx = 0
			}
		}
		t.index[idx] = uint32(i + 1)
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
