package hybrid

import (
	"bytes"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybdec/estimator"
)

func smallInstance() Params {
	q := math.Exp2(30)
	return Params{
		N:      256,
		Alpha:  estimator.Alphaf(3.19, q),
		Q:      q,
		M:      256,
		Secret: estimator.Sparse{Lo: -1, Hi: 1, Weight: 32},
	}
}

func TestMaxBlocksize(t *testing.T) {
	// dimension-1 sieve cost is 2^(0.292β+19.4); the first multiple of 5
	// above (80-19.4)/0.292 is 210
	assert.Equal(t, 210, MaxBlocksize(80, estimator.BKZSieve))

	// returned beta is minimal among the step-5 grid
	beta := MaxBlocksize(128, estimator.BKZSieve)
	assert.Greater(t, estimator.Log2(estimator.BKZSieve(beta, 1)), 128.0)
	assert.LessOrEqual(t, estimator.Log2(estimator.BKZSieve(beta-5, 1)), 128.0)
}

func TestParameterSearchFindsCoarseOptimumOrBetter(t *testing.T) {
	p := smallInstance()
	best, err := ParameterSearch(p, true, estimator.BKZSieve, 0)
	require.NoError(t, err)
	require.NotNil(t, best)

	assert.GreaterOrEqual(t, best.Beta, 35)
	assert.GreaterOrEqual(t, best.Tau, 0)
	assert.LessOrEqual(t, best.Tau, p.N)

	// replay the coarse grid with the same sample count: refinement must
	// never regress behind the coarse minimum
	m, err := estimator.PrimalSamples(p.N, p.Alpha, p.Q, p.Secret, p.M, estimator.BKZSieve)
	require.NoError(t, err)
	p.M = m
	for beta := 60; beta < p.N; beta += 50 {
		for tau := 0; tau < p.N; tau += p.N / 10 {
			cost, err := Attack(p, beta, tau, true, estimator.BKZSieve)
			if errors.Is(err, estimator.ErrZeroProbability) {
				continue
			}
			require.NoError(t, err)
			assert.LessOrEqual(t, estimator.Log2(best.Rop), estimator.Log2(cost.Rop),
				"beta=%d tau=%d beat the search result", beta, tau)
		}
	}
}

func TestParameterSearchVerbose(t *testing.T) {
	var buf bytes.Buffer
	Verbose = true
	Output = &buf
	defer func() {
		Verbose = false
		Output = os.Stdout
	}()

	_, err := ParameterSearch(smallInstance(), true, estimator.BKZSieve, 128)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "the maximal blocksize is")
}

func TestParameterSearchSecbits(t *testing.T) {
	p := smallInstance()
	best, err := ParameterSearch(p, true, estimator.BKZSieve, 128)
	require.NoError(t, err)
	// the coarse sweep stays below the pruned bound
	assert.Less(t, best.Beta, MaxBlocksize(128, estimator.BKZSieve)+25)
}

func TestParameterSearchSkipsHopelessGuesses(t *testing.T) {
	// n=256 with 32 nonzero coordinates: the coarse tau grid reaches 250,
	// where the 6 unguessed coordinates cannot hold all 32 and the success
	// probability is exactly zero
	p := smallInstance()
	_, err := Attack(p, 60, 250, true, estimator.BKZSieve)
	assert.True(t, errors.Is(err, estimator.ErrZeroProbability))

	best, err := ParameterSearch(p, true, estimator.BKZSieve, 0)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Greater(t, best.Prob, 0.0)
}

func TestParameterSearchRejectsTinyBound(t *testing.T) {
	// secbits so low that even beta=60 is too expensive to be worth trying
	_, err := ParameterSearch(smallInstance(), true, estimator.BKZSieve, 20)
	assert.Error(t, err)
}
