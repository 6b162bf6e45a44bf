package ids

// Day identifies a single day on the planning horizon, 0-indexed.
type Day int

// IID identifies an intervention.
type IID int

// RID identifies a resource.
type RID int

// SID identifies a season.
type SID int

// PID identifies a candidate start slot for an intervention; synonymous with
// the start Day it represents, kept as a distinct type where call sites care
// about "which candidate" rather than "which calendar day".
type PID int

// Add returns d+other, saturating at zero on the low side (Day never goes
// negative; the horizon has no "before day 0").
func (d Day) Add(other Day) Day {
	r := int(d) + int(other)
	if r < 0 {
		return 0
	}
	return Day(r)
}

// Sub returns d-other, saturating at zero rather than going negative.
func (d Day) Sub(other Day) Day {
	r := int(d) - int(other)
	if r < 0 {
		return 0
	}
	return Day(r)
}

// Int returns the plain int value of d.
func (d Day) Int() int { return int(d) }

// Int returns the plain int value of i.
func (i IID) Int() int { return int(i) }

// Int returns the plain int value of r.
func (r RID) Int() int { return int(r) }

// Int returns the plain int value of s.
func (s SID) Int() int { return int(s) }

// Int returns the plain int value of p.
func (p PID) Int() int { return int(p) }
