package risks

import "errors"

// ErrBuilderIncomplete is returned by Builder's final Build step when a
// required field was never set.
var ErrBuilderIncomplete = errors.New("risks: builder incomplete")

// ErrBadPeriodSlice is returned when the supplied offset table's length or
// stride is inconsistent with the declared scenario count.
var ErrBadPeriodSlice = errors.New("risks: period slice inconsistent with scenario count")
