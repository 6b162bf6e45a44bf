// Package workload implements the per-(intervention, candidate start,
// resource) committed-load vectors and the per-resource capacity bounds
// they are checked against.
//
// A Workload carries its raw day-by-day load plus a precomputed prefix-sum
// vector and total, so a caller can answer "how much load has this
// intervention committed by day k of its own period" in O(1).
package workload
