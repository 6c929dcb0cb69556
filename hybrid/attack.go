package hybrid

import (
	"fmt"
	"math"
	"math/big"

	"hybdec/estimator"
)

// Params is an LWE instance as seen by the attacker: dimension n, noise
// rate alpha (noise standard deviation αq/√(2π)), modulus q, number of
// available samples m and the secret distribution.
type Params struct {
	N      int
	Alpha  float64
	Q      float64
	M      int
	Secret estimator.SecretDistribution
}

// Attack estimates the cost of the hybrid decoding attack for a fixed BKZ
// blocksize beta and guessing dimension tau. tau = 0 disables guessing.
// When mitm is set, the guessing phase is treated as meet-in-the-middle,
// i.e. the search space only costs its square root; the collision step is
// assumed to succeed with probability 1, which is the conservative choice.
//
// The returned cost is amplified so that repeating the attack NumRepeat
// times succeeds with probability 0.99; only rop, pre and enum are scaled,
// the remaining fields describe a single trial.
//
// A configuration can be valid yet hopeless: when n-tau leaves fewer
// unguessed coordinates than nonzero ones the partial guess covers, the
// success probability is exactly zero and the returned error matches
// estimator.ErrZeroProbability.
func Attack(p Params, beta, tau int, mitm bool, model estimator.CostModel) (*estimator.Cost, error) {
	n, alpha, q, err := estimator.Preprocess(p.N, p.Alpha, p.Q)
	if err != nil {
		return nil, err
	}
	if p.M <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", p.M)
	}
	if beta <= 0 {
		return nil, fmt.Errorf("blocksize must be positive, got %d", beta)
	}
	if tau < 0 || tau > n {
		return nil, fmt.Errorf("guessing dimension must lie in [0, %d], got %d", n, tau)
	}

	// dimension of the attack lattice after dropping the guessed coordinates
	d := p.M + n - tau
	if d < 2 {
		return nil, fmt.Errorf("attack lattice dimension %d is degenerate", d)
	}

	h := p.Secret.ExpectedNonzero(n)
	sd := alpha * q / math.Sqrt(2*math.Pi)
	scale := estimator.ScaleFactor(p.Secret, alpha, q, n)

	// squared GSO norms under the GSA, det = q^m · scale^(n-tau)
	log2det := float64(p.M)*math.Log2(q) + float64(n-tau)*math.Log2(scale)
	r, err := SquaredGSONorms(d, beta, log2det)
	if err != nil {
		return nil, err
	}

	bkz := estimator.ReductionCost(model, estimator.Delta0(beta), d)
	// one nearest-plane call costs d²/2^1.06 operations
	perCall := &estimator.Cost{
		Rop: new(big.Float).SetPrec(estimator.Prec).SetFloat64(float64(d) * float64(d) / math.Exp2(1.06)),
	}
	enum := perCall

	// Grow the guessed search space while enumerating it stays cheaper than
	// the reduction, since shrinking the lattice is only worthwhile as long
	// as the guessing phase does not dominate. One nearest-plane call is
	// always needed. The guessing success probability is accumulated as a
	// big.Float: hypergeometric masses underflow float64 on large instances.
	searchSpace := big.NewInt(1)
	dropProb := new(big.Float).SetPrec(estimator.Prec).SetInt64(1)
	hw := 0
	if tau > 0 {
		lo, hi := p.Secret.Bounds()
		width := big.NewInt(int64(hi - lo))
		dropProb = estimator.SuccessProbabilityDrop(n, h, tau, 0)
		hw = 1
		for hw < h && hw < tau {
			pDrop := estimator.SuccessProbabilityDrop(n, h, tau, hw)
			step := new(big.Int).Mul(
				estimator.Binomial(tau, hw),
				new(big.Int).Exp(width, big.NewInt(int64(hw)), nil),
			)
			dropProb.Add(dropProb, pDrop)
			searchSpace.Add(searchSpace, step)
			if perCall.Scaled(guessFactor(searchSpace, mitm)).Rop.Cmp(bkz.Rop) > 0 {
				// moved too far, undo the last increment
				dropProb.Sub(dropProb, pDrop)
				searchSpace.Sub(searchSpace, step)
				hw--
				break
			}
			hw++
		}
		enum = perCall.Scaled(guessFactor(searchSpace, mitm))
	}

	// expected norm of the target: residual noise plus the unguessed part of
	// the rescaled secret
	norm := math.Sqrt(float64(p.M)*sd*sd + float64(h)*float64(n-tau)/float64(n)*scale*scale)
	babaiLp, err := babaiLog2(r, norm)
	if err != nil {
		return nil, err
	}
	lp := estimator.Log2(dropProb) + babaiLp

	ret := &estimator.Cost{
		Rop:         new(big.Float).SetPrec(estimator.Prec).Add(bkz.Rop, enum.Rop),
		Pre:         bkz.Rop,
		Enum:        enum.Rop,
		SearchSpace: searchSpace,
		Prob:        math.Exp2(lp),
		Scale:       scale,
		Beta:        beta,
		PP:          hw,
		D:           d,
		Tau:         tau,
	}

	times, err := estimator.AmplifyLog2(0.99, lp)
	if err != nil {
		return nil, err
	}
	return ret.Repeat(times), nil
}

// guessFactor returns the effective number of nearest-plane calls for a
// search space of the given size, halving the exponent under MITM.
func guessFactor(searchSpace *big.Int, mitm bool) *big.Float {
	f := new(big.Float).SetPrec(estimator.Prec).SetInt(searchSpace)
	if mitm {
		f.Sqrt(f)
	}
	return f
}
