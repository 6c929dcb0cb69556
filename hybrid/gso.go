package hybrid

import (
	"fmt"
	"math"

	"hybdec/estimator"
)

// SquaredGSONorms returns the squared Gram-Schmidt norms of a BKZ-beta
// reduced basis of dimension d under the geometric series assumption:
//
//	r[i] = (δ0^(d - 2id/(d-1)) · det^(1/d))²
//
// log2det is the base-2 logarithm of the lattice determinant, which for the
// lattices considered here is far too large to pass as a plain float. The
// GSA is a conservative stand-in for a BKZ simulator: it never underrates
// the attacker's basis quality. Requires d ≥ 2.
func SquaredGSONorms(d, beta int, log2det float64) ([]float64, error) {
	if d < 2 {
		return nil, fmt.Errorf("profile dimension must be at least 2, got %d", d)
	}
	logdelta := math.Log2(estimator.Delta0(beta))
	r := make([]float64, d)
	for i := range r {
		e := float64(d) - 2*float64(d)*float64(i)/float64(d-1)
		r[i] = math.Exp2(2 * (e*logdelta + log2det/float64(d)))
	}
	return r, nil
}
