package estimator

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"
)

// Prec is the mantissa precision (bits) used for operation counts. Costs
// like 2^(0.292β+16.4) leave the float64 exponent range once β reaches the
// thousands, so counts are kept as big.Floats throughout.
const Prec = 128

// Cost records the estimated expense of one attack configuration.
//
// Rop, Pre and Enum are operation counts and are the only fields scaled by
// Repeat; everything else describes a single trial. SearchSpace is kept as
// an exact integer since it is built from binomials.
type Cost struct {
	Rop  *big.Float // total operations
	Pre  *big.Float // lattice reduction operations
	Enum *big.Float // guessing/enumeration operations

	SearchSpace *big.Int // |S|

	Prob  float64 // per-trial success probability
	Scale float64 // Bai-Galbraith rebalancing factor

	Beta int // BKZ blocksize
	PP   int // partial-guess weight used
	D    int // lattice dimension
	Tau  int // guessing dimension

	// NumRepeat is the amplification repeat count, nil before Repeat. Kept
	// as a big.Float: hopeless attack configurations need more repetitions
	// than an int can hold.
	NumRepeat *big.Float
}

// Exp2 returns 2^x at Prec bits.
func Exp2(x float64) *big.Float {
	two := new(big.Float).SetPrec(Prec).SetInt64(2)
	exp := new(big.Float).SetPrec(Prec).SetFloat64(x)
	return bigfloat.Pow(two, exp)
}

// Log2 returns the base-2 logarithm of f as a float64. The mantissa is
// rounded to double precision; the exponent is exact.
func Log2(f *big.Float) float64 {
	if f == nil || f.Sign() <= 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp) + math.Log2(m)
}

// Scaled returns a copy of c with the operation-count fields (and only
// those) multiplied by factor.
func (c *Cost) Scaled(factor *big.Float) *Cost {
	out := *c
	if c.Rop != nil {
		out.Rop = new(big.Float).SetPrec(Prec).Mul(c.Rop, factor)
	}
	if c.Pre != nil {
		out.Pre = new(big.Float).SetPrec(Prec).Mul(c.Pre, factor)
	}
	if c.Enum != nil {
		out.Enum = new(big.Float).SetPrec(Prec).Mul(c.Enum, factor)
	}
	return &out
}

// Repeat returns a copy of c describing times independent runs: Rop, Pre and
// Enum are multiplied by times, all single-trial fields are left alone.
func (c *Cost) Repeat(times *big.Float) *Cost {
	out := c.Scaled(times)
	out.NumRepeat = times
	return out
}

func fmtCount(f *big.Float) string {
	lg := Log2(f)
	if lg < 10 {
		return fmt.Sprintf("%.0f", lg2Val(f))
	}
	return fmt.Sprintf("2^%.1f", lg)
}

func lg2Val(f *big.Float) float64 {
	v, _ := f.Float64()
	return v
}

// String renders the cost in the aligned table format of the LWE estimator,
// e.g. "     rop: 2^65.1".
func (c *Cost) String() string {
	var b strings.Builder
	line := func(k, v string) {
		fmt.Fprintf(&b, "%8s: %8s\n", k, v)
	}
	if c.Rop != nil {
		line("rop", fmtCount(c.Rop))
	}
	if c.Pre != nil {
		line("pre", fmtCount(c.Pre))
	}
	if c.Enum != nil {
		line("enum", fmtCount(c.Enum))
	}
	line("beta", fmt.Sprintf("%d", c.Beta))
	if c.SearchSpace != nil {
		line("|S|", fmt.Sprintf("2^%.1f", bigIntLog2(c.SearchSpace)))
	}
	line("prob", fmt.Sprintf("%.6f", c.Prob))
	line("scale", fmt.Sprintf("%.3f", c.Scale))
	line("pp", fmt.Sprintf("%d", c.PP))
	line("d", fmt.Sprintf("%d", c.D))
	if c.NumRepeat != nil {
		line("repeat", fmtCount(c.NumRepeat))
	}
	line("tau", fmt.Sprintf("%d", c.Tau))
	return b.String()
}

func bigIntLog2(n *big.Int) float64 {
	return Log2(new(big.Float).SetPrec(Prec).SetInt(n))
}
