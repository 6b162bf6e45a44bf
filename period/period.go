package period

import "github.com/katalvlaran/maintsched/ids"

// Period represents the non-empty, contiguous run of days [start, start+duration)
// a scheduled intervention occupies.
type Period struct {
	start    ids.Day
	duration ids.Day
}

// New constructs a Period starting at first and spanning duration days.
// It returns ErrEmptyPeriod if duration is zero; a Period can never be empty.
func New(first, duration ids.Day) (Period, error) {
	if duration == 0 {
		return Period{}, ErrEmptyPeriod
	}
	return Period{start: first, duration: duration}, nil
}

// MustNew is like New but panics on error; reserved for call sites (builders,
// tests) that have already validated duration > 0 and treat violation as a
// programmer error rather than a recoverable one.
func MustNew(first, duration ids.Day) Period {
	p, err := New(first, duration)
	if err != nil {
		panic(err)
	}
	return p
}

// Start returns the first day of p.
func (p Period) Start() ids.Day { return p.start }

// Duration returns the number of days p spans.
func (p Period) Duration() ids.Day { return p.duration }

// End returns the last day included in p (inclusive).
func (p Period) End() ids.Day { return p.start.Add(p.duration) - 1 }

// EndExclusive returns the first day after p ends.
func (p Period) EndExclusive() ids.Day { return p.start.Add(p.duration) }

// Days returns the inclusive (start, end) pair.
func (p Period) Days() (ids.Day, ids.Day) { return p.start, p.End() }

// DaysExclusive returns the (start, endExclusive) pair.
func (p Period) DaysExclusive() (ids.Day, ids.Day) { return p.start, p.EndExclusive() }

// Contains reports whether other lies entirely within p.
func (p Period) Contains(other Period) bool {
	return p.start <= other.start && p.EndExclusive() >= other.EndExclusive()
}

// Intersects reports whether p and other share at least one day.
//
// The predicate is written as the negation of "strictly before or strictly
// after" on purpose: !(other.start() > p.end()) && !(p.start() > other.end()).
func (p Period) Intersects(other Period) bool {
	return !(other.start > p.End() || p.start > other.End())
}

// Intersection returns the overlapping Period of p and other, or false if
// they do not intersect.
func (p Period) Intersection(other Period) (Period, bool) {
	if other.start > p.End() || p.start > other.End() {
		return Period{}, false
	}
	start := maxDay(p.start, other.start)
	end := minDay(p.EndExclusive(), other.EndExclusive())
	return Period{start: start, duration: end - start}, true
}

func maxDay(a, b ids.Day) ids.Day {
	if a > b {
		return a
	}
	return b
}

func minDay(a, b ids.Day) ids.Day {
	if a < b {
		return a
	}
	return b
}
