package presets

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/ring"

	"hybdec/estimator"
	"hybdec/hybrid"
)

// FromRLWE derives the LWE instance underlying a set of RLWE scheme
// parameters: dimension and sample count N, modulus the full ciphertext
// modulus Q, noise rate from the error distribution and the secret shape
// from Xs. One RLWE sample yields N LWE samples, so m = N.
func FromRLWE(p rlwe.Parameters) (hybrid.Params, error) {
	n := p.N()
	q, _ := new(big.Float).SetInt(p.QBigInt()).Float64()

	var sigma float64
	switch xe := p.Xe().(type) {
	case ring.DiscreteGaussian:
		sigma = xe.Sigma
	default:
		return hybrid.Params{}, fmt.Errorf("unsupported error distribution %T", p.Xe())
	}

	var secret estimator.SecretDistribution
	switch xs := p.Xs().(type) {
	case ring.Ternary:
		if xs.H > 0 {
			secret = estimator.Sparse{Lo: -1, Hi: 1, Weight: xs.H}
		} else {
			secret = estimator.Ternary{}
		}
	default:
		return hybrid.Params{}, fmt.Errorf("unsupported secret distribution %T", p.Xs())
	}

	return hybrid.Params{
		N:      n,
		Alpha:  estimator.Alphaf(sigma, q),
		Q:      q,
		M:      n,
		Secret: secret,
	}, nil
}
