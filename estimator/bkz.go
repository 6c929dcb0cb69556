package estimator

import (
	"math"
	"math/big"
)

// CostModel maps a BKZ blocksize and lattice dimension to an estimated
// operation count for one reduction call.
type CostModel func(beta, d int) *big.Float

// BKZSieve is the default classical cost model: a sieve call per block,
// 2^(0.292β + 16.4), times the 8d tour factor.
func BKZSieve(beta, d int) *big.Float {
	return Exp2(0.292*float64(beta) + 16.4 + math.Log2(8*float64(d)))
}

// BKZQSieve is the quantum-sieve counterpart of BKZSieve.
func BKZQSieve(beta, d int) *big.Float {
	return Exp2(0.265*float64(beta) + 16.4 + math.Log2(8*float64(d)))
}

// Delta0 returns the root Hermite factor achieved by BKZ with blocksize
// beta, using the asymptotic formula (β/2πe · (πβ)^(1/β))^(1/(2(β-1))).
// For tiny blocksizes the fixed LLL value is returned.
func Delta0(beta int) float64 {
	if beta < 3 {
		return 1.0219
	}
	b := float64(beta)
	return math.Pow(b/(2*math.Pi*math.E)*math.Pow(math.Pi*b, 1/b), 1/(2*(b-1)))
}

// BetaFromDelta0 inverts Delta0 by bisection. Delta0 is strictly decreasing
// for beta ≥ 40; factors at or above Delta0(40) map to 40.
func BetaFromDelta0(delta float64) int {
	lo, hi := 40, 1<<20
	if Delta0(lo) <= delta {
		return lo
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if Delta0(mid) > delta {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// ReductionCost estimates one lattice reduction of a d-dimensional basis to
// root Hermite factor delta under the given cost model.
func ReductionCost(model CostModel, delta float64, d int) *Cost {
	beta := BetaFromDelta0(delta)
	return &Cost{Rop: model(beta, d), Beta: beta, D: d}
}
