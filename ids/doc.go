// Package ids defines the opaque integer handles used throughout maintsched:
// Day, IID (intervention), RID (resource), SID (season) and PID (period slot,
// a synonym for a candidate start day).
//
// Every handle wraps a plain int and exists only so the compiler rejects
// cross-use — passing an RID where an IID is expected is a compile error, not
// a runtime surprise. None of these types carry any validation of their own;
// constructing one from an out-of-range int is a programmer error, not a
// recoverable one, and callers at the arena boundary (the maintenance/
// intervention builders) are expected to validate before handing a value
// into the hot path.
package ids
