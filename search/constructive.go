package search

import (
	"sort"

	"github.com/katalvlaran/maintsched/ids"
)

// Init runs one greedy constructive pass: interventions are
// considered in descending order of their largest candidate-day summed
// risk (ties broken by candidate duration, then by larger IID first), and
// each is placed on the first of its own candidate days - ranked the same
// way, ties broken by larger start day first - that Schedulable accepts. An
// intervention with no schedulable day is left unplanned; Init never
// backtracks or revisits an earlier choice.
func (ls *LocalSearch) Init() {
	type ranked struct {
		iid      ids.IID
		duration ids.Day
		risk     float64
	}

	ranking := make([]ranked, 0, ls.maintenance.NInterventions())
	for _, iid := range ls.maintenance.InterventionIDs() {
		iv := ls.maintenance.Intervention(iid)
		var maxDuration ids.Day
		var maxRisk float64
		for i, p := range iv.Periods() {
			sum := sumFloat64(iv.SummedRisks(p.Start()))
			if i == 0 || p.Duration() > maxDuration {
				maxDuration = p.Duration()
			}
			if i == 0 || sum > maxRisk {
				maxRisk = sum
			}
		}
		ranking = append(ranking, ranked{iid: iid, duration: maxDuration, risk: maxRisk})
	}
	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if a.risk != b.risk {
			return a.risk > b.risk
		}
		if a.duration != b.duration {
			return a.duration > b.duration
		}
		return a.iid > b.iid
	})

	for _, r := range ranking {
		iv := ls.maintenance.Intervention(r.iid)
		type candidate struct {
			day      ids.Day
			duration ids.Day
			risk     float64
		}
		candidates := make([]candidate, 0, len(iv.Periods()))
		for _, p := range iv.Periods() {
			candidates = append(candidates, candidate{
				day:      p.Start(),
				duration: p.Duration(),
				risk:     sumFloat64(iv.SummedRisks(p.Start())),
			})
		}
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.risk != b.risk {
				return a.risk > b.risk
			}
			if a.duration != b.duration {
				return a.duration > b.duration
			}
			return a.day > b.day
		})

		for _, c := range candidates {
			if ls.Schedulable(r.iid, c.day) {
				// Schedule cannot fail here: Schedulable just confirmed it.
				if err := ls.Schedule(r.iid, c.day); err != nil {
					panic("search: Schedule failed immediately after Schedulable confirmed it: " + err.Error())
				}
				break
			}
		}
	}
}

// InitNaive is a reference-only constructive pass kept alongside Init for
// comparison: it visits interventions and candidate days strictly in IID
// and Day order, placing each intervention on the first schedulable day it
// finds, with no risk- or duration-based ranking.
func (ls *LocalSearch) InitNaive() {
	for _, iid := range ls.maintenance.InterventionIDs() {
		iv := ls.maintenance.Intervention(iid)
		for _, day := range iv.Days() {
			if ls.Schedulable(iid, day) {
				if err := ls.Schedule(iid, day); err != nil {
					panic("search: Schedule failed immediately after Schedulable confirmed it: " + err.Error())
				}
				break
			}
		}
	}
}
