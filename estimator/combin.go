package estimator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrZeroProbability reports a per-trial success probability of exactly
// zero: no number of repetitions amplifies it. Callers sweeping a parameter
// grid match it with errors.Is to skip hopeless configurations.
var ErrZeroProbability = errors.New("per-trial success probability is zero, cannot amplify")

// Binomial returns C(n, k) exactly. C(n, k) = 0 for k < 0 or k > n.
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// SuccessProbabilityDrop returns the probability that guessing k of the n
// secret coordinates misses exactly fail of the h nonzero ones, i.e. the
// hypergeometric mass C(k, fail)·C(n-k, h-fail)/C(n, h). The result is a
// big.Float since the mass underflows float64 for large instances.
func SuccessProbabilityDrop(n, h, k, fail int) *big.Float {
	denom := Binomial(n, h)
	if denom.Sign() == 0 {
		return new(big.Float).SetPrec(Prec)
	}
	num := new(big.Int).Mul(Binomial(k, fail), Binomial(n-k, h-fail))
	return new(big.Float).SetPrec(Prec).Quo(
		new(big.Float).SetPrec(Prec).SetInt(num),
		new(big.Float).SetPrec(Prec).SetInt(denom),
	)
}

// Amplify returns the number of independent trials with per-trial success
// probability prob needed to succeed with probability at least target.
func Amplify(target, prob float64) (*big.Float, error) {
	if prob < 0 {
		return nil, fmt.Errorf("per-trial success probability must not be negative, got %g", prob)
	}
	if prob == 0 {
		return nil, ErrZeroProbability
	}
	if prob >= 1 {
		return new(big.Float).SetPrec(Prec).SetInt64(1), nil
	}
	return AmplifyLog2(target, math.Log2(prob))
}

// AmplifyLog2 is Amplify with the per-trial probability given as its base-2
// logarithm, which keeps extremely unlikely trials representable.
func AmplifyLog2(target, log2prob float64) (*big.Float, error) {
	if target <= 0 || target >= 1 {
		return nil, fmt.Errorf("target probability must lie in (0, 1), got %g", target)
	}
	if math.IsInf(log2prob, -1) {
		return nil, ErrZeroProbability
	}
	if log2prob >= math.Log2(target) {
		return new(big.Float).SetPrec(Prec).SetInt64(1), nil
	}
	if log2prob > -30 {
		prob := math.Exp2(log2prob)
		return new(big.Float).SetPrec(Prec).SetFloat64(math.Ceil(math.Log(1-target) / math.Log(1-prob))), nil
	}
	// for tiny probabilities ln(1-p) = -p up to negligible error
	return Exp2(math.Log2(-math.Log(1-target)) - log2prob), nil
}
