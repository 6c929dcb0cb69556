// Package hybrid estimates the cost of the hybrid decoding attack against
// LWE: lattice reduction on a sublattice combined with a (optionally
// meet-in-the-middle accelerated) guess over part of the secret.
package hybrid

import (
	"math/big"

	"hybdec/estimator"
)

// CoreSieve is the classical core-SVP cost model, 2^(0.292β + 16.4). Unlike
// estimator.BKZSieve it charges a single sieve call with no dimension
// factor, which is the conservative choice when deriving parameters.
func CoreSieve(beta, d int) *big.Float {
	return estimator.Exp2(0.292*float64(beta) + 16.4)
}

// CoreQSieve is the quantum core-SVP cost model, 2^(0.265β + 16.4).
func CoreQSieve(beta, d int) *big.Float {
	return estimator.Exp2(0.265*float64(beta) + 16.4)
}
