// Package seasons implements the fixed-capacity season bitset used as an
// exclusion-rule dimension.
//
// Seasons wraps github.com/bits-and-blooms/bitset behind a small,
// capacity-fixed API: Set/Clear/Test a bit, Intersects/IsDisjoint two masks,
// and iterate the set bits. One index is reserved by convention for an
// off-season bit covering days not covered by any named season; the package
// defines no constant for it and maintsched itself never treats it
// specially: callers building Seasons values from instance data pick its
// index and decide whether to set it.
package seasons
