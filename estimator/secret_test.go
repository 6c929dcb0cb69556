package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretBounds(t *testing.T) {
	lo, hi := Binary{}.Bounds()
	assert.Equal(t, []int{0, 1}, []int{lo, hi})
	lo, hi = Ternary{}.Bounds()
	assert.Equal(t, []int{-1, 1}, []int{lo, hi})
	lo, hi = Sparse{Lo: -1, Hi: 1, Weight: 64}.Bounds()
	assert.Equal(t, []int{-1, 1}, []int{lo, hi})
	lo, hi = Bounded{Lo: -3, Hi: 2}.Bounds()
	assert.Equal(t, []int{-3, 2}, []int{lo, hi})
}

func TestSecretVariance(t *testing.T) {
	assert.InDelta(t, 0.25, Binary{}.Variance(0, 0, 1024), 1e-12)
	assert.InDelta(t, 2.0/3.0, Ternary{}.Variance(0, 0, 1024), 1e-12)
	// 64 of 1024 coordinates nonzero, each ±1
	assert.InDelta(t, 1.0/16.0, Sparse{Lo: -1, Hi: 1, Weight: 64}.Variance(0, 0, 1024), 1e-12)
	// uniform on [-2, 2]: (5²-1)/12
	assert.InDelta(t, 2.0, Bounded{Lo: -2, Hi: 2}.Variance(0, 0, 1024), 1e-12)
}

func TestSecretExpectedNonzero(t *testing.T) {
	assert.Equal(t, 512, Binary{}.ExpectedNonzero(1024))
	assert.Equal(t, 682, Ternary{}.ExpectedNonzero(1024))
	assert.Equal(t, 64, Sparse{Lo: -1, Hi: 1, Weight: 64}.ExpectedNonzero(1024))
	// [0,1] leaves half the coordinates nonzero
	assert.Equal(t, 50, Bounded{Lo: 0, Hi: 1}.ExpectedNonzero(100))
}

func TestScaleFactor(t *testing.T) {
	q := math.Exp2(47)
	alpha := Alphaf(3.19, q)
	// noise stddev 3.19, secret stddev 1/4
	got := ScaleFactor(Sparse{Lo: -1, Hi: 1, Weight: 64}, alpha, q, 1024)
	assert.InDelta(t, 12.76, got, 0.005)

	// secrets at least as wide as the noise are not rescaled
	got = ScaleFactor(Bounded{Lo: -8, Hi: 8}, alpha, q, 1024)
	assert.Equal(t, 1.0, got)
}
