package search

import "github.com/katalvlaran/maintsched/period"

// riskIncrementer begins the five-stage cost-pipeline update for a single
// placement change. sign is +1 for a schedule (additive) and -1 for an
// unschedule (subtractive); every stage after updateRisks derives its
// output fresh from the updated buffers, so the same chain serves both
// directions.
type riskIncrementer struct {
	state *CostState
	sign  float64
}

// updateRisks adds (or, for an unschedule, subtracts) periodRisks into the
// state's flat risk buffer over p, then advances to the mean stage.
func (r riskIncrementer) updateRisks(p period.Period, periodRisks []float64) meanUpdater {
	begin := int(p.Start()) * r.state.nscenarios
	dst := r.state.risks[begin : begin+len(periodRisks)]
	for i, v := range periodRisks {
		dst[i] += r.sign * v
	}
	return meanUpdater{state: r.state, sign: r.sign}
}

type meanUpdater struct {
	state *CostState
	sign  float64
}

// updateMean folds summedRisks into the state's per-day sums over p, then
// recomputes the per-day mean and the delta this contributes to
// summedMeanRisks.
func (m meanUpdater) updateMean(p period.Period, summedRisks []float64, scenariosNumber []int) quantileUpdater {
	begin := int(p.Start())
	dstSummed := m.state.summedRisks[begin : begin+len(summedRisks)]
	for i, v := range summedRisks {
		dstSummed[i] += m.sign * v
	}

	dstMean := m.state.meanRisks[begin : begin+len(summedRisks)]
	before := sumFloat64(dstMean)
	meanVec(dstMean, dstSummed, scenariosNumber)
	after := sumFloat64(dstMean)
	m.state.summedMeanRisks += after - before

	return quantileUpdater{state: m.state, sign: m.sign}
}

type quantileUpdater struct {
	state *CostState
	sign  float64
}

// updateQuantile recomputes, for every day in p, the tau-quantile order
// statistic over that day's nb scenario risks.
func (q quantileUpdater) updateQuantile(p period.Period, scenariosNumber []int, quantiles []int) excessUpdater {
	begin := int(p.Start())
	for i, nb := range scenariosNumber {
		day := begin + i
		riskBegin := day * q.state.nscenarios
		dayRisks := q.state.risks[riskBegin : riskBegin+nb]
		v, err := Select(dayRisks, quantiles[i])
		if err != nil {
			panic(err)
		}
		q.state.quantileRisks[day] = v
	}
	return excessUpdater{state: q.state}
}

type excessUpdater struct {
	state *CostState
}

// updateExcess recomputes, for every day in p, excess = max(0, quantile -
// mean), and folds the delta into summedExcess.
func (e excessUpdater) updateExcess(p period.Period) costUpdater {
	begin, end := p.DaysExclusive()
	window := e.state.excessRisks[int(begin):int(end)]
	before := sumFloat64(window)
	means := e.state.meanRisks[int(begin):int(end)]
	quantiles := e.state.quantileRisks[int(begin):int(end)]
	for i := range window {
		if quantiles[i] < means[i] {
			window[i] = 0
		} else {
			window[i] = quantiles[i] - means[i]
		}
	}
	after := sumFloat64(window)
	e.state.summedExcess += after - before
	return costUpdater{state: e.state}
}

type costUpdater struct {
	state *CostState
}

// updateCost derives the scalar objective from the current totals:
// alpha*mean/ndays + (1-alpha)*excess/ndays.
func (c costUpdater) updateCost(ndays int, alpha float64) {
	n := float64(ndays)
	obj1 := c.state.summedMeanRisks / n
	obj2 := c.state.summedExcess / n
	c.state.cost = alpha*obj1 + (1-alpha)*obj2
}

func sumFloat64(xs []float64) float64 {
	var total float64
	for _, v := range xs {
		total += v
	}
	return total
}
