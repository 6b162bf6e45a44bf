package workload

// Resource holds the ndays-long lower and upper capacity bound arrays for
// one resource. Min is carried for search.LocalSearch.VerifyMinBounds; it is
// not enforced at placement time.
type Resource struct {
	Min []float64
	Max []float64
}

// NewResource builds a Resource from its min/max bound arrays; both must be
// ndays long and are stored as given (no defensive copy — the maintenance
// builder owns them for the instance's lifetime).
func NewResource(min, max []float64) Resource {
	return Resource{Min: min, Max: max}
}
