package visibility

import (
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// Oracle reports whether the straight segment between two world points is
// free of obstacles. true = unobstructed.
type Oracle interface {
	Unobstructed(from, to r3.Vec) bool
}

// Func adapts an ordinary function to the Oracle interface.
// The function must follow Oracle polarity: true = unobstructed.
type Func func(from, to r3.Vec) bool

// Unobstructed calls f(from, to).
func (f Func) Unobstructed(from, to r3.Vec) bool {
	return f(from, to)
}

// FromLinecast adapts a blocked-polarity predicate, where true means the
// segment hit something, into an Oracle.
func FromLinecast(hit func(from, to r3.Vec) bool) Oracle {
	return Func(func(from, to r3.Vec) bool {
		return !hit(from, to)
	})
}

// Always is an Oracle for an empty world: every segment is clear.
var Always Oracle = Func(func(_, _ r3.Vec) bool { return true })

// Never is an Oracle for which every segment is blocked.
var Never Oracle = Func(func(_, _ r3.Vec) bool { return false })

// Counting wraps an Oracle and counts the queries made through it.
type Counting struct {
	Oracle Oracle
	n      atomic.Int64
}

// NewCounting wraps o.
func NewCounting(o Oracle) *Counting {
	return &Counting{Oracle: o}
}

// Unobstructed forwards to the wrapped oracle and counts the call.
func (c *Counting) Unobstructed(from, to r3.Vec) bool {
	c.n.Add(1)

	return c.Oracle.Unobstructed(from, to)
}

// Count returns the number of queries so far.
func (c *Counting) Count() int64 {
	return c.n.Load()
}

// Reset zeroes the counter.
func (c *Counting) Reset() {
	c.n.Store(0)
}
