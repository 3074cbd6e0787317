package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/buildwise/internal/types"
)

// execute runs the root command in-process with fresh flag values.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("BUILDWISE_CONFIG", "")
	t.Setenv("BUILDWISE_PORT", "")

	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const sampleRequest = `{
	"project": {"built_up_area_sqft": 1800, "floors": 2, "timeline_weeks": 36},
	"compression": {"target_timeline_weeks": 28}
}`

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "estimate", "validate", "rates"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	var serve *cobra.Command
	for _, c := range rootCmd.Commands() {
		if c.Name() == "serve" {
			serve = c
		}
	}
	require.NotNil(t, serve)
	assert.NotNil(t, serve.Flags().Lookup("port"))
	assert.NotNil(t, serve.Flags().Lookup("config"))
}

func TestEstimateCommand_FromFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "estimate.json")

	_, _, err := execute(t, "estimate", "--in", writeRequest(t, sampleRequest), "--out", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var resp struct {
		WeeklySchedule      []json.RawMessage        `json:"weekly_schedule"`
		AILayoutSuggestions []json.RawMessage        `json:"ai_layout_suggestions"`
		Cost                types.CostBreakup        `json:"cost"`
		CompressionImpact   *types.CompressionImpact `json:"compression_impact"`
	}
	require.NoError(t, json.Unmarshal(content, &resp))
	assert.Len(t, resp.WeeklySchedule, 36)
	assert.Len(t, resp.AILayoutSuggestions, 2)
	assert.Equal(t, 4423116.0, resp.Cost.TotalCostINR)
	require.NotNil(t, resp.CompressionImpact)
	assert.Equal(t, 1.29, resp.CompressionImpact.AccelerationFactor)
}

func TestEstimateCommand_FromFlagsToStdout(t *testing.T) {
	stdout, _, err := execute(t, "estimate", "--area", "600", "--floors", "1", "--weeks", "10")
	require.NoError(t, err)

	var resp struct {
		WorkforceAllocation []types.PhaseAllocation `json:"workforce_allocation"`
		CompressionImpact   json.RawMessage         `json:"compression_impact"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	weeks := make([]int, 0, len(resp.WorkforceAllocation))
	for _, alloc := range resp.WorkforceAllocation {
		weeks = append(weeks, alloc.Weeks)
	}
	assert.Equal(t, []int{2, 4, 2, 2}, weeks)
	assert.Equal(t, "null", string(resp.CompressionImpact))
}

func TestEstimateCommand_FlagsOverrideFile(t *testing.T) {
	stdout, _, err := execute(t, "estimate", "--in", writeRequest(t, sampleRequest), "--weeks", "52", "--target-weeks", "40")
	require.NoError(t, err)

	var resp struct {
		Project           types.ProjectSpec       `json:"project"`
		CompressionImpact types.CompressionImpact `json:"compression_impact"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 52, resp.Project.TimelineWeeks)
	assert.Equal(t, 1800.0, resp.Project.BuiltUpAreaSqft)
	assert.Equal(t, 40, resp.CompressionImpact.CompressedTimelineWeeks)
}

func TestEstimateCommand_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "estimate", "--in", writeRequest(t, sampleRequest), "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stderr, "[labor/schedule]")
	assert.Contains(t, stderr, "ESTIMATE SUMMARY")
	assert.Contains(t, stderr, "COMPRESSION IMPACT")
}

func TestEstimateCommand_Exports(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "estimate.xlsx")
	pdfPath := filepath.Join(dir, "estimate.pdf")

	_, stderr, err := execute(t, "estimate", "--in", writeRequest(t, sampleRequest),
		"--out", filepath.Join(dir, "estimate.json"), "--xlsx", xlsxPath, "--pdf", pdfPath)
	require.NoError(t, err)

	for _, path := range []string{xlsxPath, pdfPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, stderr, "Wrote workbook")
	assert.Contains(t, stderr, "Wrote PDF")
}

func TestEstimateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name:    "no input",
			args:    func(t *testing.T) []string { return []string{"estimate", "--area", "1000"} },
			wantErr: "either --in or all of",
		},
		{
			name: "target not shorter",
			args: func(t *testing.T) []string {
				return []string{"estimate", "--in", writeRequest(t, sampleRequest), "--target-weeks", "36"}
			},
			wantErr: "must be less than",
		},
		{
			name: "schema violation",
			args: func(t *testing.T) []string {
				return []string{"estimate", "--in", writeRequest(t, `{"project": {"floors": 2}}`)}
			},
			wantErr: "invalid request file",
		},
		{
			name:    "missing file",
			args:    func(t *testing.T) []string { return []string{"estimate", "--in", "/nonexistent/request.json"} },
			wantErr: "failed to read request file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args(t)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := execute(t, "validate", "--in", writeRequest(t, sampleRequest))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	_, _, err = execute(t, "validate", "--in", writeRequest(t,
		`{"project": {"built_up_area_sqft": 1800, "floors": 2, "timeline_weeks": 36}, "compression": {"target_timeline_weeks": 40}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, _, err = execute(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateCommand_ExtraSchema(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "house.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"properties": {"project": {"properties": {"floors": {"maximum": 3}}}}
	}`), 0644))

	stdout, _, err := execute(t, "validate", "--in", writeRequest(t, sampleRequest), "--schema", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	_, _, err = execute(t, "validate", "--schema", schemaPath, "--in", writeRequest(t,
		`{"project": {"built_up_area_sqft": 1800, "floors": 4, "timeline_weeks": 36}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.floors")

	_, _, err = execute(t, "validate", "--in", writeRequest(t, sampleRequest), "--schema", "/nonexistent/schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEstimateCommand_VerboseFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "buildwise.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("verbose: true\n"), 0644))

	_, stderr, err := execute(t, "estimate", "--in", writeRequest(t, sampleRequest), "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "ESTIMATE SUMMARY")

	_, stderr, err = execute(t, "estimate", "--in", writeRequest(t, sampleRequest), "--config", cfgPath, "--verbose=false")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "ESTIMATE SUMMARY")
}

func TestEstimateCommand_IntegralDecimals(t *testing.T) {
	stdout, _, err := execute(t, "estimate", "--in", writeRequest(t,
		`{"project": {"built_up_area_sqft": 1800, "floors": 2.0, "timeline_weeks": 36.0}}`))
	require.NoError(t, err)

	var resp struct {
		WeeklySchedule []json.RawMessage `json:"weekly_schedule"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Len(t, resp.WeeklySchedule, 36)
}

func TestRatesCommand(t *testing.T) {
	stdout, _, err := execute(t, "rates")
	require.NoError(t, err)

	var tables rateTables
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &tables))
	assert.Equal(t, types.DefaultWageRates(), tables.Wages)
	assert.Equal(t, types.DefaultMaterialRates(), tables.Materials)
}

func TestRatesCommand_ConfigOverridesJSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "buildwise.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("wages:\n  mason_daily_inr: 1250\n"), 0644))

	stdout, _, err := execute(t, "rates", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	var tables rateTables
	require.NoError(t, json.Unmarshal([]byte(stdout), &tables))
	assert.Equal(t, 1250.0, tables.Wages.MasonDailyINR)
	assert.Equal(t, types.DefaultWageRates().HelperDailyINR, tables.Wages.HelperDailyINR)
}

func TestRatesCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "rates", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
