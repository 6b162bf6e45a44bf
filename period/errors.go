package period

import "errors"

// ErrEmptyPeriod is returned by New when the requested duration is zero.
// A Period must always span at least one day.
var ErrEmptyPeriod = errors.New("period: duration must be > 0")
