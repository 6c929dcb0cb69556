// Package presets collects illustrative LWE parameter sets for the hybrid
// decoding estimator, plus a bridge from lattigo RLWE parameters.
package presets

import (
	"fmt"
	"math"

	"hybdec/estimator"
	"hybdec/hybrid"
)

// Example64 is a homomorphic-encryption style instance with a sparse
// ternary secret of weight 64.
func Example64() hybrid.Params {
	q := math.Exp2(47)
	return hybrid.Params{
		N:      1024,
		Alpha:  estimator.Alphaf(3.19, q),
		Q:      q,
		M:      1024,
		Secret: estimator.Sparse{Lo: -1, Hi: 1, Weight: 64},
	}
}

// ExampleBinary64 matches Example64 with a dense binary secret.
func ExampleBinary64() hybrid.Params {
	p := Example64()
	p.Secret = estimator.Binary{}
	return p
}

// Example128 matches Example64 with secret weight 128.
func Example128() hybrid.Params {
	p := Example64()
	p.Secret = estimator.Sparse{Lo: -1, Hi: 1, Weight: 128}
	return p
}

// ExampleTernary is a large instance with a dense ternary secret.
func ExampleTernary() hybrid.Params {
	q := math.Exp2(200)
	return hybrid.Params{
		N:      4096,
		Alpha:  estimator.Alphaf(3.19, q),
		Q:      q,
		M:      1024,
		Secret: estimator.Ternary{},
	}
}

// CHHS19 follows the parameter set of the CHHS19 repository.
func CHHS19() hybrid.Params {
	q := math.Exp2(125)
	return hybrid.Params{
		N:      8192,
		Alpha:  estimator.Alphaf(3.19, q),
		Q:      q,
		M:      8192,
		Secret: estimator.Sparse{Lo: -1, Hi: 1, Weight: 64},
	}
}

// NTRUPrime is the NTRU LPRime-style instance.
func NTRUPrime() hybrid.Params {
	q := 4591.0
	return hybrid.Params{
		N:      761,
		Alpha:  estimator.Alphaf(math.Sqrt(2.0/3.0), q),
		Q:      q,
		M:      761,
		Secret: estimator.Sparse{Lo: -1, Hi: 1, Weight: 250},
	}
}

// TFHE is the TFHE-style instance with a binary secret.
func TFHE() hybrid.Params {
	return hybrid.Params{
		N:      1024,
		Alpha:  math.Sqrt(2*math.Pi) * math.Exp2(-25),
		Q:      math.Exp2(32),
		M:      1024,
		Secret: estimator.Binary{},
	}
}

// ByName resolves a preset by its CLI name.
func ByName(name string) (hybrid.Params, error) {
	switch name {
	case "example64":
		return Example64(), nil
	case "example-binary64":
		return ExampleBinary64(), nil
	case "example128":
		return Example128(), nil
	case "ternary":
		return ExampleTernary(), nil
	case "chhs19":
		return CHHS19(), nil
	case "ntruprime":
		return NTRUPrime(), nil
	case "tfhe":
		return TFHE(), nil
	}
	return hybrid.Params{}, fmt.Errorf("unknown preset %q", name)
}

// Names lists the presets accepted by ByName.
func Names() []string {
	return []string{"example64", "example-binary64", "example128", "ternary", "chhs19", "ntruprime", "tfhe"}
}
