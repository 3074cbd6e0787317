package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/buildwise/internal/config"
	"github.com/jonathan/buildwise/internal/export"
	"github.com/jonathan/buildwise/internal/observability"
	"github.com/jonathan/buildwise/internal/pipeline"
	"github.com/jonathan/buildwise/internal/schemas"
	"github.com/jonathan/buildwise/internal/types"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Produce a full estimate for a project",
	Long: `Produce material quantities, phase-wise workforce, a weekly schedule, cost breakup,
optional compression impact and per-floor layouts for a project.

The project comes from an EstimationRequest JSON file (--in), from flags, or both;
flags override the file.`,
	RunE: runEstimate,
}

var (
	estimateInput       string
	estimateConfig      string
	estimateArea        float64
	estimateFloors      int
	estimateWeeks       int
	estimateTargetWeeks int
	estimateOutput      string
	estimateXLSX        string
	estimatePDF         string
	estimateVerbose     bool
)

func init() {
	estimateCmd.Flags().StringVarP(&estimateInput, "in", "i", "", "Path to EstimationRequest JSON file")
	estimateCmd.Flags().StringVar(&estimateConfig, "config", "", "Path to JSON or YAML config file with default rates (default $BUILDWISE_CONFIG)")
	estimateCmd.Flags().Float64Var(&estimateArea, "area", 0, "Built-up area in sqft")
	estimateCmd.Flags().IntVar(&estimateFloors, "floors", 0, "Number of floors")
	estimateCmd.Flags().IntVar(&estimateWeeks, "weeks", 0, "Planned timeline in weeks")
	estimateCmd.Flags().IntVar(&estimateTargetWeeks, "target-weeks", 0, "Compressed timeline to analyze, in weeks")
	estimateCmd.Flags().StringVarP(&estimateOutput, "out", "o", "", "Path to output EstimationResponse JSON file (default stdout)")
	estimateCmd.Flags().StringVar(&estimateXLSX, "xlsx", "", "Also write the estimate as an Excel workbook to this path")
	estimateCmd.Flags().StringVar(&estimatePDF, "pdf", "", "Also write the estimate as a PDF summary to this path")
	estimateCmd.Flags().BoolVarP(&estimateVerbose, "verbose", "v", false, "Print stage progress and a readable summary to stderr (default from config \"verbose\")")

	rootCmd.AddCommand(estimateCmd)
}

// requestFlags holds project flags; a nil field was not set on the command line.
type requestFlags struct {
	area        *float64
	floors      *int
	weeks       *int
	targetWeeks *int
}

// buildRequest assembles a validated request from an optional JSON file, the
// configured default rates and flag overrides.
func buildRequest(inPath string, cfg config.Config, flags requestFlags) (types.EstimationRequest, error) {
	req := types.NewEstimationRequest(cfg.Wages, cfg.Materials)

	if inPath != "" {
		content, err := os.ReadFile(inPath)
		if err != nil {
			return types.EstimationRequest{}, fmt.Errorf("failed to read request file: %w", err)
		}
		if err := schemas.ValidateEstimationRequest(content); err != nil {
			return types.EstimationRequest{}, fmt.Errorf("invalid request file %s: %w", inPath, err)
		}
		content, err = schemas.NormalizeIntegers(content)
		if err != nil {
			return types.EstimationRequest{}, fmt.Errorf("invalid request file %s: %w", inPath, err)
		}
		if err := json.NewDecoder(bytes.NewReader(content)).Decode(&req); err != nil {
			return types.EstimationRequest{}, fmt.Errorf("failed to unmarshal request JSON: %w", err)
		}
	}

	if flags.area != nil {
		req.Project.BuiltUpAreaSqft = *flags.area
	}
	if flags.floors != nil {
		req.Project.Floors = *flags.floors
	}
	if flags.weeks != nil {
		req.Project.TimelineWeeks = *flags.weeks
	}
	if flags.targetWeeks != nil {
		req.Compression = &types.CompressionRequest{TargetTimelineWeeks: *flags.targetWeeks}
	}

	if err := req.Validate(); err != nil {
		return types.EstimationRequest{}, fmt.Errorf("validation failed: %w", err)
	}
	return req, nil
}

// changedFlags collects the project flags that were set on cmd.
func changedFlags(cmd *cobra.Command) requestFlags {
	var flags requestFlags
	if cmd.Flags().Changed("area") {
		flags.area = &estimateArea
	}
	if cmd.Flags().Changed("floors") {
		flags.floors = &estimateFloors
	}
	if cmd.Flags().Changed("weeks") {
		flags.weeks = &estimateWeeks
	}
	if cmd.Flags().Changed("target-weeks") {
		flags.targetWeeks = &estimateTargetWeeks
	}
	return flags
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	flags := changedFlags(cmd)
	if estimateInput == "" && (flags.area == nil || flags.floors == nil || flags.weeks == nil) {
		return errors.New("either --in or all of --area, --floors and --weeks are required")
	}

	cfg, err := loadConfig(estimateConfig)
	if err != nil {
		return err
	}

	req, err := buildRequest(estimateInput, cfg, flags)
	if err != nil {
		return err
	}

	verbose := estimateVerbose
	if !cmd.Flags().Changed("verbose") {
		verbose = cfg.Verbose
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())
	opts := pipeline.RunOptions{}
	if verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			printer.PrintStage(event.Category, event.Step, event.Message)
		}
	}

	resp, err := pipeline.Run(cmd.Context(), req, opts)
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}

	if verbose {
		printer.PrintEstimate(resp)
	}

	if err := writeEstimateJSON(cmd.OutOrStdout(), estimateOutput, resp); err != nil {
		return err
	}

	if estimateXLSX != "" {
		if err := writeFile(estimateXLSX, func(w io.Writer) error { return export.WriteXLSX(w, resp) }); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote workbook to %s\n", estimateXLSX)
	}
	if estimatePDF != "" {
		if err := writeFile(estimatePDF, func(w io.Writer) error { return export.WritePDF(w, resp) }); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote PDF to %s\n", estimatePDF)
	}

	return nil
}

// writeEstimateJSON writes indented JSON to path, or to stdout when path is empty.
func writeEstimateJSON(stdout io.Writer, path string, resp *types.EstimationResponse) error {
	jsonBytes, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal estimate: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeFile creates path and streams render into it.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f)
}
