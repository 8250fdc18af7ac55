package sequent

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures an estimation from command line options or from a YAML
// scenario file passed with the -c flag.  Returns a slice of functional options that can
// be applied to the configuration.
func ParseCommandLine() ([]ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	return options.options, options.err
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("sequent", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of sequent:\nsequent --baseline-rate <rate> --effect-size <delta> <options>\n")
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
		fmt.Printf("\nThe result is the smallest per-group sample size and decision barrier for a sequential test that keeps the false positive rate below alpha while reaching the power target.\n")
	}

	pf.StringP("config", "c", "", "Use yaml scenario file")
	pf.String("alpha", "0.05", "Tolerated false positive rate, strictly between 0 and 1")
	pf.String("power", "0.80", "Required true positive rate under the alternative, strictly between 0 and 1")
	pf.String("baseline-rate", "", "Control group conversion rate, strictly between 0 and 1 (required)")
	pf.String("effect-size", "", "Absolute minimum detectable effect.  Baseline plus effect must stay between 0 and 1.")
	pf.String("mde-relative", "", "Minimum detectable effect as a fraction of the baseline rate (e.g. 0.10 for a 10% lift).  Alternative to --effect-size.")
	pf.Int("max-conversions", 0, "Ceiling on conversions considered before the design is declared infeasible")
	pf.Int("max-barrier", 0, "Ceiling on the decision barrier search range")
	pf.Bool("fixed-horizon", false, "Also report the classical fixed-horizon sample size for comparison")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "alpha":
		return Alpha(value), nil
	case "power":
		return Power(value), nil
	case "baseline-rate":
		return BaselineRate(value), nil
	case "effect-size":
		return EffectSize(value), nil
	case "mde-relative":
		return RelativeMDE(value), nil
	case "max-conversions":
		return MaxConversions(value), nil
	case "max-barrier":
		return MaxBarrier(value), nil
	case "fixed-horizon":
		return FixedHorizon(), nil
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := os.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		switch v := v.(type) {
		case string:
			opt, err := handleOption(k, v)
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case int:
			opt, err := handleOption(k, strconv.Itoa(v))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case float64:
			opt, err := handleOption(k, strconv.FormatFloat(v, 'f', -1, 64))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case bool:
			if !v {
				continue
			}
			opt, err := handleOption(k, "")
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
	}
	return options, nil
}
