package estimator

import (
	"fmt"
	"math"
)

// ScaleFactor returns the rebalancing factor for the scaled primal embedding
// in the style of Bai and Galbraith: secrets drawn narrower than the noise
// are scaled up so the secret and error parts of the short target vector
// have comparable length. Assumes bounds with a ≤ 0 ≤ b.
func ScaleFactor(secret SecretDistribution, alpha, q float64, n int) float64 {
	if !secret.IsSmall() {
		return 1
	}
	sd := Stddevf(alpha * q)
	vs := secret.Variance(alpha, q, n)
	if vs > 0 && sd*sd > vs {
		return sd / math.Sqrt(vs)
	}
	return 1
}

// PrimalSamples returns the number of LWE samples used by the
// sample-optimized decision primal (uSVP) attack: for the smallest winning
// blocksize, the sublattice dimension maximizing the uSVP margin. The result
// is clamped to the mMax samples actually available. Callers that only need
// a well-studied sample count (rather than the primal cost itself) consume
// just the returned m.
func PrimalSamples(n int, alpha, q float64, secret SecretDistribution, mMax int, model CostModel) (int, error) {
	n, alpha, q, err := Preprocess(n, alpha, q)
	if err != nil {
		return 0, err
	}
	if mMax < 1 {
		return 0, fmt.Errorf("sample count must be positive, got %d", mMax)
	}

	sd := Stddevf(alpha * q)
	scale := ScaleFactor(secret, alpha, q, n)
	logq := math.Log2(q)
	logscale := math.Log2(scale)

	for beta := 40; beta <= 2*n; beta++ {
		logdelta := math.Log2(Delta0(beta))

		// optimal number of rows for the embedding lattice
		m := int(math.Round(math.Sqrt(float64(n)*logq/logdelta))) - n
		if m < 1 {
			m = 1
		}
		if m > mMax {
			m = mMax
		}
		d := m + n + 1

		// uSVP success condition: the projected target must be shorter than
		// the expected norm of the (d-beta)-th Gram-Schmidt vector
		lhs := math.Log2(math.Sqrt(float64(beta)) * sd)
		logvol := float64(m)*logq + float64(n)*logscale
		rhs := float64(2*beta-d)*logdelta + logvol/float64(d)
		if lhs <= rhs {
			return m, nil
		}
	}
	return mMax, nil
}
