package presets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"hybdec/estimator"
)

func TestExample64(t *testing.T) {
	p := Example64()
	assert.Equal(t, 1024, p.N)
	assert.Equal(t, 1024, p.M)
	assert.Equal(t, math.Exp2(47), p.Q)
	assert.InDelta(t, math.Sqrt(2*math.Pi)*3.19/math.Exp2(47), p.Alpha, 1e-24)
	assert.Equal(t, estimator.Sparse{Lo: -1, Hi: 1, Weight: 64}, p.Secret)
}

func TestTFHEAlpha(t *testing.T) {
	p := TFHE()
	// sigma = 2^-25 relative to q, i.e. 2^7 in absolute terms
	assert.InDelta(t, 128.0, estimator.Stddevf(p.Alpha*p.Q), 1e-9)
	assert.Equal(t, estimator.Binary{}, p.Secret)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err, name)
		assert.Greater(t, p.N, 0, name)
		assert.Greater(t, p.M, 0, name)
		// every preset must survive validation
		_, _, _, err = estimator.Preprocess(p.N, p.Alpha, p.Q)
		assert.NoError(t, err, name)
	}

	_, err := ByName("no-such-preset")
	assert.Error(t, err)
}

func TestFromRLWE(t *testing.T) {
	lit := rlwe.ParametersLiteral{LogN: 10, LogQ: []int{40}}
	rp, err := rlwe.NewParametersFromLiteral(lit)
	require.NoError(t, err)

	p, err := FromRLWE(rp)
	require.NoError(t, err)
	assert.Equal(t, 1024, p.N)
	assert.Equal(t, 1024, p.M)
	// lattigo defaults: dense ternary secret, gaussian noise with sigma 3.2
	assert.Equal(t, estimator.Ternary{}, p.Secret)
	assert.InDelta(t, 3.2, estimator.Stddevf(p.Alpha*p.Q), 1e-6)
}
