package hybrid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"hybdec/estimator"
)

// Verbose controls whether the parameter search prints progress.
var Verbose = false

// Output is the writer where search progress is printed. Defaults to
// os.Stdout.
var Output io.Writer = os.Stdout

// MaxBlocksize returns an upper bound on the blocksize worth searching for a
// target of secbits security: starting at 40 and stepping by 5, the first
// beta whose reduction cost on a dimension-1 lattice alone exceeds
// 2^secbits. Useful when deriving parameters for a target level; not when
// measuring the level of a fixed parameter set.
func MaxBlocksize(secbits float64, model estimator.CostModel) int {
	beta := 40
	rop := 0.0
	for rop <= secbits {
		beta += 5
		rop = estimator.Log2(estimator.ReductionCost(model, estimator.Delta0(beta), 1).Rop)
	}
	return beta
}

// ParameterSearch finds the cheapest hybrid decoding attack against p by
// sweeping the blocksize and the guessing dimension: a coarse grid over the
// whole range followed by a finer sweep around the coarse optimum. The cost
// surface is assumed unimodal enough for the refinement to recover the
// optimum; a fully granular search is deliberately traded for runtime since
// each grid point is itself a multi-step computation.
//
// The number of samples used is taken from the sample-optimized primal
// estimate rather than from p.M: the optimal count is attack dependent but
// well studied for the primal attack.
//
// If secbits > 0 the blocksize range is pruned via MaxBlocksize; otherwise
// it extends to n.
func ParameterSearch(p Params, mitm bool, model estimator.CostModel, secbits float64) (*estimator.Cost, error) {
	m, err := estimator.PrimalSamples(p.N, p.Alpha, p.Q, p.Secret, p.M, model)
	if err != nil {
		return nil, err
	}
	p.M = m

	n := p.N
	betaMax := n
	if secbits > 0 {
		betaMax = MaxBlocksize(secbits, model)
		if Verbose {
			fmt.Fprintf(Output, "the maximal blocksize is %d\n", betaMax)
		}
	}
	if betaMax <= 60 {
		return nil, fmt.Errorf("blocksize bound %d leaves no candidates to search", betaMax)
	}

	// coarse sweep: beta from 60 up to betaMax in steps of 50, walked
	// descending; tau over [0, n) in steps of n/10
	tauStep := n / 10
	if tauStep < 1 {
		tauStep = 1
	}
	var best *estimator.Cost
	betaStart := 60 + 50*((betaMax-1-60)/50)
	for beta := betaStart; beta >= 60; beta -= 50 {
		for tau := 0; tau < n; tau += tauStep {
			cost, err := Attack(p, beta, tau, mitm, model)
			if errors.Is(err, estimator.ErrZeroProbability) {
				// guessing window cannot miss every nonzero coordinate:
				// valid but hopeless, worth skipping rather than aborting
				continue
			}
			if err != nil {
				return nil, err
			}
			if best == nil || cost.Rop.Cmp(best.Rop) < 0 {
				best = cost
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no feasible attack point on the coarse grid")
	}

	// fine sweep around the coarse optimum: beta ± 25 in steps of 10, tau ±
	// n/20 in steps of n/100
	tauLo := best.Tau - n/20
	if tauLo < 0 {
		tauLo = 0
	}
	tauHi := best.Tau + n/20
	if tauHi > n+1 {
		tauHi = n + 1
	}
	tauFine := n / 100
	if tauFine < 1 {
		tauFine = 1
	}
	for beta := best.Beta + 15; beta >= best.Beta-25; beta -= 10 {
		if beta < 1 {
			continue
		}
		for tau := tauLo; tau < tauHi; tau += tauFine {
			cost, err := Attack(p, beta, tau, mitm, model)
			if errors.Is(err, estimator.ErrZeroProbability) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if cost.Rop.Cmp(best.Rop) < 0 {
				best = cost
			}
		}
	}
	return best, nil
}
