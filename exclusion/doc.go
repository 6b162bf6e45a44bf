// Package exclusion implements per-intervention pairwise exclusion rules.
//
// InterventionExclusions holds, for one intervention, a partner list sorted
// by IID: (partner IID, forbidden Seasons). A candidate conflicts with a
// scheduled partner when their periods overlap, their active-season masks
// intersect each other, the partner appears in the rule list, and that
// rule's forbidden set intersects the candidate's active mask (the
// partner's own mask is not tested against the forbidden set). IsExcluded
// walks the sorted list exactly once per query, using a binary search to
// narrow the remaining window.
package exclusion
