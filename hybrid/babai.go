package hybrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BabaiSuccessProbability estimates the probability that Babai's nearest
// plane algorithm on a basis with squared Gram-Schmidt norms r recovers a
// target vector of expected norm norm, following the NTRULPrime analysis:
// each coordinate succeeds with 1 - F(1 - s²) for s = √r[i]/(2·norm), where
// F is the Beta((d-1)/2, 1/2) CDF, and coordinates are treated as
// independent. The result may underflow float64 for badly reduced bases;
// callers that must distinguish tiny probabilities use babaiLog2.
func BabaiSuccessProbability(r []float64, norm float64) (float64, error) {
	lp, err := babaiLog2(r, norm)
	if err != nil {
		return 0, err
	}
	return math.Exp2(lp), nil
}

// babaiLog2 returns the base-2 logarithm of the nearest-plane success
// probability. Per-coordinate factors are evaluated through the symmetric
// incomplete beta I(1/2, (d-1)/2; s²) = 1 - F(1-s²), which stays accurate
// deep in the tail where forming 1-s² would round to 1.
func babaiLog2(r []float64, norm float64) (float64, error) {
	if len(r) < 2 {
		return 0, fmt.Errorf("profile must have at least 2 entries, got %d", len(r))
	}
	if norm <= 0 {
		return 0, fmt.Errorf("target norm must be positive, got %g", norm)
	}
	a := (float64(len(r)) - 1) / 2
	sum := 0.0
	for _, ri := range r {
		s := math.Sqrt(ri) / (2 * norm)
		x := s * s
		if x >= 1 {
			// GSO vector longer than the full target, the coordinate
			// always rounds correctly
			continue
		}
		if f := mathext.RegIncBeta(0.5, a, x); f > 0 {
			sum += math.Log2(f)
			continue
		}
		// even the symmetric form underflowed, fall back to the leading
		// series term I_x(b, a) ~ x^b / (b·B(b, a))
		lg05, _ := math.Lgamma(0.5)
		lga, _ := math.Lgamma(a)
		lgab, _ := math.Lgamma(a + 0.5)
		logB := lg05 + lga - lgab
		sum += (0.5*math.Log(x) - math.Log(0.5) - logB) / math.Ln2
	}
	return sum, nil
}
