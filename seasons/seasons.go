package seasons

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/maintsched/ids"
)

// Seasons is a fixed-capacity bitset over season identifiers, including one
// synthetic "off-season" bit reserved for days that no named season covers.
type Seasons struct {
	bits     *bitset.BitSet
	capacity uint
}

// New returns an empty Seasons mask with room for nseasons bits (the named
// seasons plus, by convention, one synthetic off-season bit — callers pick
// its index and set it like any other).
func New(nseasons int) Seasons {
	return Seasons{bits: bitset.New(uint(nseasons)), capacity: uint(nseasons)}
}

// Capacity returns the number of bits the mask was built for.
func (s Seasons) Capacity() int { return int(s.capacity) }

// Set turns the bit for sid on.
func (s Seasons) Set(sid ids.SID) {
	s.bits.Set(uint(sid))
}

// Clear turns the bit for sid off.
func (s Seasons) Clear(sid ids.SID) {
	s.bits.Clear(uint(sid))
}

// Test reports whether the bit for sid is set.
func (s Seasons) Test(sid ids.SID) bool {
	return s.bits.Test(uint(sid))
}

// Intersects reports whether s and other share at least one set bit.
func (s Seasons) Intersects(other Seasons) bool {
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// IsDisjoint is the complement of Intersects.
func (s Seasons) IsDisjoint(other Seasons) bool {
	return !s.Intersects(other)
}

// Clone returns an independent copy of s.
func (s Seasons) Clone() Seasons {
	return Seasons{bits: s.bits.Clone(), capacity: s.capacity}
}

// Ones calls fn for every set bit, in increasing order.
func (s Seasons) Ones(fn func(ids.SID)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(ids.SID(i))
	}
}

// Any reports whether at least one bit in the mask is set.
func (s Seasons) Any() bool {
	return s.bits.Any()
}

// SetAll turns every bit in the mask on; used to seed PossibleSeasons
// accumulators (exclusion.InterventionExclusions.PossibleSeasons) that start
// from "everything allowed" and progressively clear bits.
func (s Seasons) SetAll() {
	for i := uint(0); i < s.capacity; i++ {
		s.bits.Set(i)
	}
}
