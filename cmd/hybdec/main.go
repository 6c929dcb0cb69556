// hybdec: cost estimates for the hybrid decoding attack against LWE
//
// Usage:
//
//	hybdec -preset=example64 -beta=100 -tau=250 -mitm
//	hybdec -preset=example64 -search -secbits=128
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"hybdec/estimator"
	"hybdec/hybrid"
	"hybdec/presets"
)

var (
	preset  = flag.String("preset", "example64", "Parameter preset: "+strings.Join(presets.Names(), ", "))
	beta    = flag.Int("beta", 100, "BKZ blocksize for a single evaluation")
	tau     = flag.Int("tau", 0, "Guessing dimension for a single evaluation (0 disables guessing)")
	mitm    = flag.Bool("mitm", true, "Meet-in-the-middle guessing (square root of the search space)")
	search  = flag.Bool("search", false, "Search for the adversary's optimal (beta, tau)")
	secbits = flag.Float64("secbits", 0, "Target security level in bits, prunes the blocksize range (search only)")
	model   = flag.String("model", "sieve", "Reduction cost model: sieve, qsieve, core-sieve, core-qsieve")
	verbose = flag.Bool("verbose", true, "Verbose output")
)

func costModel(name string) (estimator.CostModel, error) {
	switch name {
	case "sieve":
		return estimator.BKZSieve, nil
	case "qsieve":
		return estimator.BKZQSieve, nil
	case "core-sieve":
		return hybrid.CoreSieve, nil
	case "core-qsieve":
		return hybrid.CoreQSieve, nil
	}
	return nil, fmt.Errorf("unknown cost model %q", name)
}

func main() {
	flag.Parse()
	hybrid.Verbose = *verbose

	p, err := presets.ByName(*preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cm, err := costModel(*model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Println("╔══════════════════════════════════════════════════════════════╗")
		fmt.Println("║              Hybrid Decoding Attack Estimator                ║")
		fmt.Println("╚══════════════════════════════════════════════════════════════╝")
		fmt.Printf("\nInstance (%s):\n", *preset)
		fmt.Printf("  n:     %d\n", p.N)
		fmt.Printf("  alpha: %g\n", p.Alpha)
		fmt.Printf("  log q: %.1f\n", math.Log2(p.Q))
		fmt.Printf("  m:     %d\n", p.M)
		fmt.Printf("  mitm:  %v\n", *mitm)
		fmt.Printf("  model: %s\n", *model)
		fmt.Println()
	}

	var cost *estimator.Cost
	if *search {
		cost, err = hybrid.ParameterSearch(p, *mitm, cm, *secbits)
	} else {
		cost, err = hybrid.Attack(p, *beta, *tau, *mitm, cm)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(cost)
}
