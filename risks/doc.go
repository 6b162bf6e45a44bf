// Package risks implements the jagged, flat-buffer risk tensor.
//
// Rather than a 3-D array, Risks stores one flat []float64 of risk values
// plus an offset table periodSlice of length nstarts+1: the half-open element
// range [periodSlice[s], periodSlice[s+1]) holds, for candidate start s,
// duration(s) contiguous blocks of NSCENARIOS floats, day-offset-major and
// scenario-minor. A sibling flat buffer, summedRisks, holds the
// per-(start,day-offset) sum across scenarios, so the cost pipeline's "mean"
// stage never has to re-reduce a scenario row. Both buffers are built once,
// by the stepped Builder, and read-only afterwards: no per-schedule
// allocation, linear access per period.
package risks
