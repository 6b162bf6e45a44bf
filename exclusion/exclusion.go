package exclusion

import (
	"sort"

	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/seasons"
)

// Rule is one (partner, forbidden-season-set) entry.
type Rule struct {
	Partner ids.IID
	Blocked seasons.Seasons
}

// InterventionExclusions is one intervention's exclusion list, sorted by
// Rule.Partner. Stored symmetrically at the instance level: if i excludes j
// under season set S, j's own InterventionExclusions carries the mirrored
// (i, S) entry too.
type InterventionExclusions struct {
	rules []Rule
}

// New builds an InterventionExclusions from rules already sorted by Partner.
func New(rules []Rule) InterventionExclusions {
	return InterventionExclusions{rules: rules}
}

// IsExcluded reports whether scheduling the owning intervention under
// season mask active would conflict with any of partners — candidates that
// are both already scheduled, period-overlapping, and season-active.
// partners must be supplied in increasing IID order: each lookup narrows
// the remaining search window from the last match onward, so with
// out-of-order input a partner whose rule lies before an earlier match is
// not found.
func (e InterventionExclusions) IsExcluded(active seasons.Seasons, partners []ids.IID) bool {
	if len(e.rules) == 0 {
		return false
	}
	pos := 0
	for _, iid := range partners {
		if pos >= len(e.rules) {
			return false
		}
		window := e.rules[pos:]
		idx := sort.Search(len(window), func(i int) bool { return window[i].Partner >= iid })
		if idx < len(window) && window[idx].Partner == iid {
			pos += idx
			if !e.rules[pos].Blocked.IsDisjoint(active) {
				// Rule.Blocked intersects the active mask: this partner blocks it.
				return true
			}
		}
	}
	return false
}

// ExcludedInterventions returns the partners whose forbidden-season set is
// disjoint from active — i.e. partners that, under this season mask, would
// currently be excluded by rules on this list.
func (e InterventionExclusions) ExcludedInterventions(active seasons.Seasons) []ids.IID {
	var out []ids.IID
	for _, r := range e.rules {
		if r.Blocked.IsDisjoint(active) {
			out = append(out, r.Partner)
		}
	}
	return out
}

// PossibleSeasons computes, given the season masks of a set of partners
// already scheduled, the subset of seasons this intervention could still be
// scheduled under without violating any exclusion rule against that set.
// It starts from "every season allowed" and clears bits as blocking rules
// are found, stopping early once nothing remains allowed.
func (e InterventionExclusions) PossibleSeasons(capacity int, partnerSeasons map[ids.IID]seasons.Seasons) seasons.Seasons {
	possible := seasons.New(capacity)
	possible.SetAll()
	for _, r := range e.rules {
		partnerMask, ok := partnerSeasons[r.Partner]
		if !ok {
			continue
		}
		clearIntersection(&possible, r.Blocked, partnerMask)
		if !possible.Any() {
			break
		}
	}
	return possible
}

func clearIntersection(possible *seasons.Seasons, blocked, partnerMask seasons.Seasons) {
	blocked.Ones(func(sid ids.SID) {
		if partnerMask.Test(sid) {
			possible.Clear(sid)
		}
	})
}
