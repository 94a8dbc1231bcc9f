// Package contract has configuration plumbing and shared CLI helpers.
package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/shriyae/ladderboard/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	MaxPrecision       = 3
	DefaultAddr        = ":8080"
)

// Config holds the runtime configuration for report generation.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath string // Path to the dataset CSV; empty means the bundled sample

	Year      int // Report year; 0 resolves to the latest year in the dataset
	FromYear  int // Start of year range filter (0 = unbounded)
	ToYear    int // End of year range filter (0 = unbounded)
	Countries []string
	Regions   []string

	Factor      schema.Factor // Factor for the regression/scatter view
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	BaseYear   int // Compare mode: the BEFORE year
	TargetYear int // Compare mode: the AFTER year

	Relative bool // Trends: plot score relative to the series' own mean

	Addr string // Serve mode: listen address

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Year         int    `mapstructure:"year"`
	From         int    `mapstructure:"from"`
	To           int    `mapstructure:"to"`
	Country      string `mapstructure:"country"`
	Region       string `mapstructure:"region"`
	Limit        int    `mapstructure:"limit"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`

	// --- Fields from correlateCmd.Flags() ---
	Factor string `mapstructure:"factor"`

	// --- Fields from compareCmd.Flags() ---
	BaseYear   int `mapstructure:"base-year"`
	TargetYear int `mapstructure:"target-year"`

	// --- Fields from trendsCmd.Flags() ---
	Relative bool `mapstructure:"relative"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Countries != nil {
		clone.Countries = make([]string, len(c.Countries))
		copy(clone.Countries, c.Countries)
	}
	if c.Regions != nil {
		clone.Regions = make([]string, len(c.Regions))
		copy(clone.Regions, c.Regions)
	}
	return &clone
}

// Filter builds the dataset filter implied by this config.
func (c *Config) Filter() schema.Filter {
	return schema.Filter{
		FromYear:  c.FromYear,
		ToYear:    c.ToYear,
		Countries: c.Countries,
		Regions:   c.Regions,
	}
}

// FilterForYear builds a single-year filter that keeps the config's
// country/region restrictions.
func (c *Config) FilterForYear(year int) schema.Filter {
	return schema.Filter{
		FromYear:  year,
		ToYear:    year,
		Countries: c.Countries,
		Regions:   c.Regions,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processYearInputs(cfg, input); err != nil {
		return err
	}
	if err := processRunStoreInputs(cfg, input); err != nil {
		return err
	}
	return resolveDataPath(cfg, input)
}

// validateSimpleInputs copies and bounds-checks the scalar options.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.Countries = splitList(input.Country)
	cfg.Regions = splitList(input.Region)

	if input.Factor != "" {
		factor := schema.Factor(strings.ToLower(input.Factor))
		if _, ok := schema.ValidFactors[factor]; !ok {
			return fmt.Errorf("invalid factor: %s", input.Factor)
		}
		cfg.Factor = factor
	} else {
		cfg.Factor = schema.FactorGDP
	}

	cfg.Relative = input.Relative
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return nil
}

// processYearInputs validates the year selection and range filters.
// Years are only type/range checked; a window with no data is a valid
// selection that yields an empty report, not an error.
func processYearInputs(cfg *Config, input *ConfigRawInput) error {
	for _, y := range []int{input.Year, input.From, input.To, input.BaseYear, input.TargetYear} {
		if y != 0 && (y < 1900 || y > 2999) {
			return fmt.Errorf("implausible year: %d", y)
		}
	}
	if input.From != 0 && input.To != 0 && input.From > input.To {
		return fmt.Errorf("from year %d is after to year %d", input.From, input.To)
	}
	cfg.Year = input.Year
	cfg.FromYear = input.From
	cfg.ToYear = input.To
	cfg.BaseYear = input.BaseYear
	cfg.TargetYear = input.TargetYear
	return nil
}

// processRunStoreInputs validates the run tracking backend selection.
func processRunStoreInputs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidRunBackends[backend]; !ok {
		return fmt.Errorf("unsupported run backend: %s. Must be sqlite, mysql, postgresql, or none", input.RunBackend)
	}
	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && input.RunDBConnect == "" {
		return fmt.Errorf("run backend %s requires --run-db-connect", backend)
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = input.RunDBConnect
	return nil
}

// resolveDataPath checks that an explicitly requested dataset file exists.
// An empty path selects the bundled sample dataset and is always valid.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	cfg.DataPath = input.DataPathStr
	if cfg.DataPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.DataPath); err != nil {
		return fmt.Errorf("dataset file not found: %s", cfg.DataPath)
	}
	return nil
}

// RevalidateCompare re-checks the compare-specific inputs. Used by entry
// points (MCP) that bypass the normal flag pipeline.
func RevalidateCompare(cfg *Config) error {
	if cfg.BaseYear == 0 {
		return fmt.Errorf("--base-year is required")
	}
	if cfg.TargetYear == 0 {
		return fmt.Errorf("--target-year is required")
	}
	if cfg.BaseYear == cfg.TargetYear {
		return fmt.Errorf("base and target years must differ")
	}
	return nil
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
