package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/buildwise/internal/types"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the effective wage and material rate tables",
	Long:  "Prints the default rates after applying the config file, in JSON or YAML. The output can be used as a starting config file.",
	RunE:  runRates,
}

var (
	ratesConfig string
	ratesFormat string
)

func init() {
	ratesCmd.Flags().StringVar(&ratesConfig, "config", "", "Path to JSON or YAML config file (default $BUILDWISE_CONFIG)")
	ratesCmd.Flags().StringVarP(&ratesFormat, "format", "f", "yaml", "Output format: json or yaml")
	rootCmd.AddCommand(ratesCmd)
}

// rateTables is the printed shape; it matches the wages/materials keys of a config file.
type rateTables struct {
	Wages     types.WageRates     `json:"wages" yaml:"wages"`
	Materials types.MaterialRates `json:"materials" yaml:"materials"`
}

func runRates(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(ratesConfig)
	if err != nil {
		return err
	}
	tables := rateTables{Wages: cfg.Wages, Materials: cfg.Materials}

	var out []byte
	switch ratesFormat {
	case "json":
		out, err = json.MarshalIndent(tables, "", "  ")
		out = append(out, '\n')
	case "yaml", "yml":
		out, err = yaml.Marshal(tables)
	default:
		return fmt.Errorf("unknown format %q: must be json or yaml", ratesFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
