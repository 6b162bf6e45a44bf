package intervention

import "errors"

// ErrBuilderIncomplete is returned by Builder.Build when a
// required field was never set.
var ErrBuilderIncomplete = errors.New("intervention: builder incomplete")
