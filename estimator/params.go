package estimator

import (
	"fmt"
	"math"
)

// Stddevf converts a Gaussian width parameter s = αq into the standard
// deviation s/√(2π).
func Stddevf(s float64) float64 {
	return s / math.Sqrt(2*math.Pi)
}

// Alphaf converts a noise standard deviation into the noise rate α relative
// to the modulus q.
func Alphaf(sigma, q float64) float64 {
	return math.Sqrt(2*math.Pi) * sigma / q
}

// Preprocess validates and canonicalizes an LWE parameter triple. The noise
// has standard deviation αq/√(2π).
func Preprocess(n int, alpha, q float64) (int, float64, float64, error) {
	if n <= 0 {
		return 0, 0, 0, fmt.Errorf("lwe dimension must be positive, got %d", n)
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, 0, 0, fmt.Errorf("noise rate must satisfy 0 < alpha < 1, got %g", alpha)
	}
	if q <= 1 {
		return 0, 0, 0, fmt.Errorf("modulus must exceed 1, got %g", q)
	}
	return n, alpha, q, nil
}
