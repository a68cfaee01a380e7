// Package buffer implements a single contiguous dynamic byte array with
// append/insert/remove/reserve primitives, the Go analogue of the C
// original's DrshGrowBuffer: a mutable slice that only ever grows.
package buffer

// Grow is a dynamically resized contiguous byte buffer. Its zero value is
// an empty, ready-to-use buffer. Unlike a bare []byte, offsets returned by
// Writable/Readable stay valid across Append/Insert calls within the same
// growth epoch, mirroring the original's data/count/cap split.
type Grow struct {
	data []byte
}

// Len returns the number of bytes currently stored.
func (g *Grow) Len() int { return len(g.data) }

// Cap returns the buffer's current capacity.
func (g *Grow) Cap() int { return cap(g.data) }

// Clear empties the buffer without releasing its backing array.
func (g *Grow) Clear() { g.data = g.data[:0] }

// Ensure grows the backing array, if necessary, so that at least need more
// bytes can be appended without reallocating. It never shrinks.
func (g *Grow) Ensure(need int) { g.Ensure2(need, need) }

// Ensure2 is Ensure with a separate grow hint, used to amortize repeated
// small grows (the original's drsh_gb_ensure2).
func (g *Grow) Ensure2(need, growHint int) {
	if cap(g.data)-len(g.data) >= need {
		return
	}
	grow := need
	if growHint > grow {
		grow = growHint
	}
	newCap := cap(g.data) + grow
	if newCap < 2*cap(g.data) {
		newCap = 2 * cap(g.data)
	}
	if newCap < len(g.data)+need {
		newCap = len(g.data) + need
	}
	next := make([]byte, len(g.data), newCap)
	copy(next, g.data)
	g.data = next
}

// Append adds p to the end of the buffer.
func (g *Grow) Append(p []byte) {
	g.Ensure(len(p))
	g.data = append(g.data, p...)
}

// AppendByte adds a single byte to the end of the buffer.
func (g *Grow) AppendByte(c byte) {
	g.Ensure(1)
	g.data = append(g.data, c)
}

// AppendString adds s to the end of the buffer.
func (g *Grow) AppendString(s string) {
	g.Ensure(len(s))
	g.data = append(g.data, s...)
}

// Insert inserts p at offset whence, shifting existing bytes right.
func (g *Grow) Insert(whence int, p []byte) {
	g.Ensure(len(p))
	g.data = g.data[:len(g.data)+len(p)]
	copy(g.data[whence+len(p):], g.data[whence:len(g.data)-len(p)])
	copy(g.data[whence:], p)
}

// Remove deletes n bytes starting at offset whence, shifting the remainder
// left (the original's memremove, expressed as a slice shift).
func (g *Grow) Remove(whence, n int) {
	copy(g.data[whence:], g.data[whence+n:])
	g.data = g.data[:len(g.data)-n]
}

// Writable returns the unused tail of the buffer, sized n, growing first if
// necessary. Writing into the returned slice and calling Commit(n) makes
// those bytes part of the buffer's used prefix.
func (g *Grow) Writable(n int) []byte {
	g.Ensure(n)
	return g.data[len(g.data) : len(g.data)+n : cap(g.data)]
}

// Commit marks n bytes of a previously returned Writable slice as used.
func (g *Grow) Commit(n int) {
	g.data = g.data[:len(g.data)+n]
}

// Readable returns the used prefix of the buffer.
func (g *Grow) Readable() []byte { return g.data }

// Bytes is an alias for Readable, for callers that just want the contents.
func (g *Grow) Bytes() []byte { return g.data }

// SetLen truncates (or, if already short, is a no-op) the used length to n.
func (g *Grow) SetLen(n int) {
	if n < len(g.data) {
		g.data = g.data[:n]
	}
}
