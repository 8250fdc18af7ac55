package sequent

import (
	"os"
	"strings"
	"testing"

	"github.com/go-yaml/yaml"
	"github.com/stretchr/testify/assert"
)

// createComparisonConfigs applies both option sets to empty configs so functional
// options can be compared by their effect
func createComparisonConfigs(expected []ConfigOption, received []ConfigOption) (Config, Config) {
	e := Config{}
	for _, opt := range expected {
		_ = opt(&e)
	}
	r := Config{}
	for _, opt := range received {
		_ = opt(&r)
	}
	return e, r
}

func TestParseFlags(t *testing.T) {
	tt := []struct {
		Name     string
		Cmdline  string
		Expected []ConfigOption
		Error    bool
	}{
		{Name: "alpha", Cmdline: "--alpha 0.01", Expected: []ConfigOption{Alpha("0.01")}},
		{Name: "power", Cmdline: "--power 0.9", Expected: []ConfigOption{Power("0.9")}},
		{Name: "baseline-rate", Cmdline: "--baseline-rate 0.2", Expected: []ConfigOption{BaselineRate("0.2")}},
		{Name: "effect-size", Cmdline: "--effect-size 0.02", Expected: []ConfigOption{EffectSize("0.02")}},
		{Name: "mde-relative", Cmdline: "--mde-relative 0.1", Expected: []ConfigOption{RelativeMDE("0.1")}},
		{Name: "max-conversions", Cmdline: "--max-conversions 100000", Expected: []ConfigOption{MaxConversions("100000")}},
		{Name: "max-barrier", Cmdline: "--max-barrier 1000", Expected: []ConfigOption{MaxBarrier("1000")}},
		{Name: "fixed-horizon", Cmdline: "--fixed-horizon", Expected: []ConfigOption{FixedHorizon()}},
		{Name: "combined", Cmdline: "--baseline-rate 0.2 --effect-size 0.02 --alpha 0.01", Expected: []ConfigOption{BaselineRate("0.2"), EffectSize("0.02"), Alpha("0.01")}},
		{Name: "error on unknown flag", Cmdline: "--does-not-exist", Expected: []ConfigOption{}, Error: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			pf := createFlagSet()
			options, err := parse(strings.Split(tc.Cmdline, " "), pf)
			if tc.Error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				expected, received := createComparisonConfigs(tc.Expected, options)
				assert.Equal(t, expected, received)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	tt := []struct {
		Name     string
		Yaml     map[string]interface{}
		Expected []ConfigOption
		Error    bool
	}{
		{Name: "alpha", Yaml: map[string]interface{}{"alpha": 0.01}, Expected: []ConfigOption{Alpha("0.01")}},
		{Name: "alpha string", Yaml: map[string]interface{}{"alpha": "0.01"}, Expected: []ConfigOption{Alpha("0.01")}},
		{Name: "power", Yaml: map[string]interface{}{"power": 0.9}, Expected: []ConfigOption{Power("0.9")}},
		{Name: "baseline-rate", Yaml: map[string]interface{}{"baseline-rate": 0.2}, Expected: []ConfigOption{BaselineRate("0.2")}},
		{Name: "effect-size", Yaml: map[string]interface{}{"effect-size": 0.02}, Expected: []ConfigOption{EffectSize("0.02")}},
		{Name: "mde-relative", Yaml: map[string]interface{}{"mde-relative": 0.1}, Expected: []ConfigOption{RelativeMDE("0.1")}},
		{Name: "max-conversions", Yaml: map[string]interface{}{"max-conversions": 100000}, Expected: []ConfigOption{MaxConversions("100000")}},
		{Name: "max-barrier", Yaml: map[string]interface{}{"max-barrier": 1000}, Expected: []ConfigOption{MaxBarrier("1000")}},
		{Name: "fixed-horizon", Yaml: map[string]interface{}{"fixed-horizon": true}, Expected: []ConfigOption{FixedHorizon()}},
		{Name: "fixed-horizon false", Yaml: map[string]interface{}{"fixed-horizon": false}, Expected: []ConfigOption{}},
		{Name: "error on unknown key", Yaml: map[string]interface{}{"does-not-exist": "test"}, Expected: []ConfigOption{}, Error: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			data, err := yaml.Marshal(tc.Yaml)
			assert.NoError(t, err)
			f, err := os.CreateTemp(t.TempDir(), "scenario*.yaml")
			assert.NoError(t, err)
			_, err = f.Write(data)
			assert.NoError(t, err)
			assert.NoError(t, f.Close())

			options, err := parseFromFile(f.Name())
			if tc.Error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				expected, received := createComparisonConfigs(tc.Expected, options)
				assert.Equal(t, expected, received)
			}
		})
	}
}

func TestParseConfigFlag(t *testing.T) {
	data, err := yaml.Marshal(map[string]interface{}{"baseline-rate": 0.2, "effect-size": 0.02})
	assert.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "scenario*.yaml")
	assert.NoError(t, err)
	_, err = f.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	pf := createFlagSet()
	options, err := parse([]string{"-c", f.Name(), "--alpha", "0.01"}, pf)
	assert.NoError(t, err)

	c, errs := newConfig(options...)
	assert.Len(t, errs, 0)
	assert.Equal(t, 0.2, c.BaselineRate)
	assert.Equal(t, 0.02, c.EffectSize)
	assert.Equal(t, 0.01, c.Alpha)
}
