// Package period implements the non-empty, half-open-by-construction Period
// type used to represent the contiguous run of days a scheduled intervention
// occupies.
//
// A Period is a pair (start Day, duration Day) with duration > 0; the
// invariant is enforced at construction — New returns ErrEmptyPeriod rather
// than a zero-duration value. End/EndExclusive and the two Allen-relation
// predicates Contains/Intersects follow the usual interval-overlap
// convention: Intersects is true when the inclusive day ranges overlap (see
// the table in period_test.go).
package period
