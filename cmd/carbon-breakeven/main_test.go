package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeSummary(t *testing.T, out string) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	return decoded
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "carbon-breakeven", root.Use)
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"compare", "hardware", "countries"})
}

func TestCompare_JSON(t *testing.T) {
	out, err := execute(t, "compare",
		"--current", "V100", "--new", "H100",
		"--workload", "FP32", "--scaling", "emissions",
		"--country", "Germany", "--output", "json")
	require.NoError(t, err)

	s := decodeSummary(t, out)
	assert.Equal(t, "V100", s["current"])
	assert.Equal(t, "H100", s["new"])
	assert.Equal(t, "Emissions", s["scaling"])
	assert.Equal(t, true, s["break_even_found"])
	assert.NotEmpty(t, s["trace_id"])
}

func TestCompare_NoBreakEvenText(t *testing.T) {
	out, err := execute(t, "compare",
		"--current", "V100", "--new", "H100",
		"--workload", "FP32", "--country", "Germany")
	require.NoError(t, err)
	assert.Contains(t, out, "No Break-Even")
	assert.Contains(t, out, "V100 → H100 (FP32)")
}

func TestCompare_Single(t *testing.T) {
	out, err := execute(t, "compare", "--current", "A100", "--country", "Poland", "--output", "json")
	require.NoError(t, err)

	s := decodeSummary(t, out)
	assert.Equal(t, true, s["single_comparison"])
	assert.Equal(t, "A100", s["new"])
	assert.Equal(t, true, s["break_even_found"])
}

func TestCompare_UtilizationScaling(t *testing.T) {
	out, err := execute(t, "compare",
		"--current", "V100", "--new", "H100",
		"--workload", "FP32", "--scaling", "utilization",
		"--new-util", "10", "--country", "Germany", "--output", "json")
	require.NoError(t, err)

	s := decodeSummary(t, out)
	v100, ok := carbon.GetHardwareSpec("V100")
	require.True(t, ok)
	h100, ok := carbon.GetHardwareSpec("H100")
	require.True(t, ok)

	want, err := breakeven.ScaleUtilization(10, h100.Score(carbon.WorkloadFP32), v100.Score(carbon.WorkloadFP32))
	require.NoError(t, err)

	opex, ok := s["current_opex"].(map[string]any)
	require.True(t, ok)
	sys, err := carbon.SystemFromSpec(v100, carbon.WorkloadFP32)
	require.NoError(t, err)
	assert.InDelta(t, carbon.NormalizedPowerKW(sys, want), opex["total_kw"], 1e-9)
}

func TestCompare_WorkloadFallback(t *testing.T) {
	out, err := execute(t, "compare",
		"--current", "Tesla K80", "--new", "H100",
		"--workload", "FP16", "--country", "Germany", "--output", "json")
	require.NoError(t, err)

	s := decodeSummary(t, out)
	assert.Equal(t, "FP32", s["workload"])
}

func TestCompare_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("current: A100\nnew: H100\nworkload: FP64\ncountry: Sweden\n"), 0o600))

	out, err := execute(t, "compare", "--config", path, "--country", "Poland", "--output", "json")
	require.NoError(t, err)

	s := decodeSummary(t, out)
	assert.Equal(t, "A100", s["current"])
	assert.Equal(t, "FP64", s["workload"])
	assert.Equal(t, "Poland", s["country"])
}

func TestCompare_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing current", []string{"compare"}},
		{"unknown part", []string{"compare", "--current", "Voodoo 2", "--new", "H100"}},
		{"unknown output", []string{"compare", "--current", "A100", "--output", "yaml"}},
		{"unknown scaling", []string{"compare", "--current", "A100", "--scaling", "linear"}},
		{"utilization out of range", []string{"compare", "--current", "A100", "--current-util", "150"}},
		{"missing hardware file", []string{"compare", "--current", "A100", "--hardware-file", "/nonexistent.csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestHardwareList(t *testing.T) {
	out, err := execute(t, "hardware", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Tesla K80")
	assert.Contains(t, out, "B200")
	assert.Less(t, bytes.Index([]byte(out), []byte("Tesla K80")), bytes.Index([]byte(out), []byte("B200")))
}

func TestHardwareList_Workload(t *testing.T) {
	out, err := execute(t, "hardware", "list", "--workload", "bench_s_matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "H100")
	assert.NotContains(t, out, "Tesla K80")
	assert.NotContains(t, out, "L40S")

	_, err = execute(t, "hardware", "list", "--workload", "INT8")
	assert.ErrorIs(t, err, breakeven.ErrUnknownWorkload)
}

func TestCountries(t *testing.T) {
	out, err := execute(t, "countries")
	require.NoError(t, err)
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "344")
}
