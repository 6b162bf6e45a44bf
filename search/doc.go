// Package search implements the constructive local-search engine:
// SearchState tracks which interventions are currently placed and on what
// day, WorkloadsState tracks per-resource cumulative load per day, CostState
// tracks the risk/cost pipeline, and LocalSearch drives Schedule/Unschedule/
// Move over a Maintenance instance to build and repair a Planning.
//
// The cost pipeline is exposed as a chain of stepped handles
// (riskIncrementer -> meanUpdater -> quantileUpdater -> excessUpdater ->
// costUpdater) so that the stage order - risks, then mean, then the tail
// quantile, then excess, then cost - is enforced by the type system rather
// than by convention. The same chain serves both Schedule (additive) and
// Unschedule (subtractive): each stage takes a signed delta and every
// downstream quantity is derived fresh from the updated per-day risk
// buffer, so there is no separate decremental algorithm to keep in sync
// with the incremental one.
package search
