package search

import "errors"

// ErrInfeasiblePlacement is returned by Schedule and TryMove when the
// requested (intervention, day) pair violates an exclusion rule or a
// resource's max bound.
var ErrInfeasiblePlacement = errors.New("search: infeasible placement")

// ErrNotScheduled is returned by Unschedule and Move when the intervention
// named has no current placement to remove.
var ErrNotScheduled = errors.New("search: intervention is not scheduled")

// ErrSelectOutOfRange is returned by Select/SelectInPlace when the
// requested order-statistic position is not a valid index into the input.
var ErrSelectOutOfRange = errors.New("search: select index out of range")
