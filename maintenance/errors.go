package maintenance

import "errors"

// ErrBuilderIncomplete is returned by Builder.Build when a required field
// was never set.
var ErrBuilderIncomplete = errors.New("maintenance: builder incomplete")

// ErrEmptyScenariosNumber is returned by Builder.Build when the per-day
// scenario-count table is empty; the quantile index cannot be derived
// without it.
var ErrEmptyScenariosNumber = errors.New("maintenance: scenarios_number must not be empty")
