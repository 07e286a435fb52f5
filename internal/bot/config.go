package bot

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config tunes the advisor. All knobs have working defaults; an absent
// config file is not an error.
type Config struct {
	Trials           int     `hcl:"trials,optional"`             // Monte Carlo trials per decision
	BatchSize        int     `hcl:"batch_size,optional"`         // trials per batch between budget checks
	BudgetMS         int64   `hcl:"budget_ms,optional"`          // soft time budget per decision; 0 = unlimited
	FloorFraction    float64 `hcl:"floor_fraction,optional"`     // minimum retained range fraction
	PressureSlope    float64 `hcl:"pressure_slope,optional"`     // pressure -> range narrowing slope
	RaisePotFraction float64 `hcl:"raise_pot_fraction,optional"` // default raise sizing as a fraction of pot
}

// DefaultConfig returns the default advisor configuration.
func DefaultConfig() Config {
	return Config{
		Trials:           2000,
		BatchSize:        250,
		BudgetMS:         0,
		FloorFraction:    0.05,
		PressureSlope:    0.85,
		RaisePotFraction: 0.75,
	}
}

// LoadConfig loads advisor configuration from an HCL file, falling back to
// defaults when the file does not exist or omits values.
func LoadConfig(filename string) (Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Trials == 0 {
		config.Trials = defaults.Trials
	}
	if config.BatchSize == 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.FloorFraction == 0 {
		config.FloorFraction = defaults.FloorFraction
	}
	if config.PressureSlope == 0 {
		config.PressureSlope = defaults.PressureSlope
	}
	if config.RaisePotFraction == 0 {
		config.RaisePotFraction = defaults.RaisePotFraction
	}

	return config, nil
}
