package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/buildwise/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an EstimationRequest JSON file",
	Long:  "Checks a request file against the request schema and the field rules, including that any compression target is shorter than the timeline.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateConfig string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to EstimationRequest JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Also validate against this JSON Schema file, e.g. a stricter house schema")
	validateCmd.Flags().StringVar(&validateConfig, "config", "", "Path to JSON or YAML config file with default rates (default $BUILDWISE_CONFIG)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(validateConfig)
	if err != nil {
		return err
	}

	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, validateInput); err != nil {
			return fmt.Errorf("schema %s: %w", validateSchema, err)
		}
	}

	req, err := buildRequest(validateInput, cfg, requestFlags{})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %.2f sqft, %d floors, %d weeks\n",
		req.Project.BuiltUpAreaSqft, req.Project.Floors, req.Project.TimelineWeeks)
	return nil
}
