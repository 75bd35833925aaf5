// Package config resolves scraper settings from flags, CATALOG_* environment
// variables and an optional .catalog.yaml file, in that order of precedence.
package config

import (
	"fmt"
	"github.com/openswoop/catalog/pkg/report"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/spf13/viper"
	"time"
)

const EnvPrefix = "CATALOG"

type Config struct {
	Output        string        `mapstructure:"output"`
	Format        string        `mapstructure:"format"`
	Threads       int           `mapstructure:"threads"`
	Verbose       bool          `mapstructure:"verbose"`
	Url           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	UserAgent     string        `mapstructure:"user_agent"`
	Cache         bool          `mapstructure:"cache"`
	NoCache       bool          `mapstructure:"no_cache"`
	CodeMode      string        `mapstructure:"code_mode"`
	PrereqMode    string        `mapstructure:"prereq_mode"`
	Corrections   string        `mapstructure:"corrections"`
	NoCorrections bool          `mapstructure:"no_corrections"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", report.Stdout)
	v.SetDefault("format", string(report.FormatJSON))
	v.SetDefault("threads", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("url", scrape.CatalogUrl)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("user_agent", "")
	v.SetDefault("cache", false)
	v.SetDefault("no_cache", false)
	v.SetDefault("code_mode", string(scrape.CodeBeforePeriod))
	v.SetDefault("prereq_mode", string(scrape.PrereqAppend))
	v.SetDefault("corrections", "")
	v.SetDefault("no_corrections", false)
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if err := scrape.ValidateTemplate(c.Url); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := scrape.ParseCodeMode(c.CodeMode); err != nil {
		return err
	}
	if _, err := scrape.ParsePrereqMode(c.PrereqMode); err != nil {
		return err
	}
	return nil
}

// Extractor builds the course extractor for the configured modes.
func (c Config) Extractor() scrape.Extractor {
	code, _ := scrape.ParseCodeMode(c.CodeMode)
	prereq, _ := scrape.ParsePrereqMode(c.PrereqMode)
	return scrape.Extractor{CodeMode: code, PrereqMode: prereq}
}

// LoadCorrections returns the corrections to append after a scrape.
func (c Config) LoadCorrections() ([]scrape.Correction, error) {
	switch {
	case c.NoCorrections:
		return nil, nil
	case c.Corrections != "":
		return scrape.LoadCorrections(c.Corrections)
	default:
		return scrape.DefaultCorrections, nil
	}
}
