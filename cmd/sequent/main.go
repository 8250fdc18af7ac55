package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"sequent"
)

func main() {

	opts, err := sequent.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse sequent --help for options\n", err)
		}
		os.Exit(1)
	}

	est, errs := sequent.New(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	res := est.Run()
	if !res.Design.Feasible {
		fmt.Println("No feasible sample size within the configured ceilings. Try a larger effect size or raise --max-conversions.")
		os.Exit(1)
	}

	fmt.Printf("Sample size per group: %d\n", res.Design.N)
	fmt.Printf("Z-barrier: %d\n", res.Design.Z)
	if est.Config().FixedHorizon {
		if res.FixedFeasible {
			fmt.Printf("Fixed-horizon sample size per group: %d\n", res.FixedN)
		} else {
			fmt.Println("Fixed-horizon sample size not defined for these parameters")
		}
	}

	os.Exit(0)
}
