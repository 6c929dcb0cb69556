package estimator

import "math"

// SecretDistribution describes the per-coordinate distribution of an LWE
// secret. The set of implementations is closed: Binary, Ternary, Sparse and
// Bounded cover the shapes the estimator understands.
type SecretDistribution interface {
	// Bounds returns the support (min, max) of one coordinate.
	Bounds() (int, int)
	// Variance returns the variance of one secret coordinate.
	Variance(alpha, q float64, n int) float64
	// ExpectedNonzero returns the expected Hamming weight of the secret.
	ExpectedNonzero(n int) int
	// IsSmall reports whether the secret is narrower than the modulus, i.e.
	// whether the scaled Bai-Galbraith embedding applies.
	IsSmall() bool
}

// Binary is the uniform distribution on {0, 1}.
type Binary struct{}

// Ternary is the uniform distribution on {-1, 0, 1}.
type Ternary struct{}

// Sparse has exactly Weight nonzero coordinates in expectation, each uniform
// over the nonzero values in [Lo, Hi]. Lo ≤ 0 ≤ Hi is assumed.
type Sparse struct {
	Lo, Hi int
	Weight int
}

// Bounded is the uniform distribution on the integer range [Lo, Hi].
type Bounded struct {
	Lo, Hi int
}

func (Binary) Bounds() (int, int)    { return 0, 1 }
func (Ternary) Bounds() (int, int)   { return -1, 1 }
func (s Sparse) Bounds() (int, int)  { return s.Lo, s.Hi }
func (b Bounded) Bounds() (int, int) { return b.Lo, b.Hi }

func (Binary) IsSmall() bool  { return true }
func (Ternary) IsSmall() bool { return true }
func (Sparse) IsSmall() bool  { return true }
func (Bounded) IsSmall() bool { return true }

// uniformVariance is the variance of the uniform distribution on [a, b].
func uniformVariance(a, b int) float64 {
	w := float64(b - a + 1)
	return (w*w - 1) / 12
}

func (Binary) Variance(alpha, q float64, n int) float64    { return uniformVariance(0, 1) }
func (Ternary) Variance(alpha, q float64, n int) float64   { return uniformVariance(-1, 1) }
func (b Bounded) Variance(alpha, q float64, n int) float64 { return uniformVariance(b.Lo, b.Hi) }

// Variance of a sparse secret: weight/n coordinates are nonzero, each with
// second moment averaged over the nonzero support.
func (s Sparse) Variance(alpha, q float64, n int) float64 {
	sum, count := 0.0, 0
	for x := s.Lo; x <= s.Hi; x++ {
		if x == 0 {
			continue
		}
		sum += float64(x) * float64(x)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(s.Weight) / float64(n) * sum / float64(count)
}

// Expected Hamming weights follow the conventions of the LWE estimator:
// binary secrets have ~n/2 nonzero entries, ternary ~2n/3.
func (Binary) ExpectedNonzero(n int) int   { return n / 2 }
func (Ternary) ExpectedNonzero(n int) int  { return 2 * n / 3 }
func (s Sparse) ExpectedNonzero(n int) int { return s.Weight }

func (b Bounded) ExpectedNonzero(n int) int {
	w := b.Hi - b.Lo + 1
	return int(math.Round(float64(n) * float64(w-1) / float64(w)))
}
