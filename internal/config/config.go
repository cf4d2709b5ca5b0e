package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const (
	EnvCurrency    = "TIPKART_CURRENCY"
	EnvTaxRate     = "TIPKART_TAX_RATE"
	EnvLogLevel    = "TIPKART_LOG_LEVEL"
	EnvCatalogPath = "TIPKART_CATALOG_PATH"
)

type Config struct {
	Currency currency.Unit
	TaxRate  decimal.Decimal
	LogLevel string
	// CatalogPath points at a seeded sqlite catalog. Empty means the
	// embedded in-memory catalog.
	CatalogPath string
}

type fileConfig struct {
	Currency string `yaml:"currency"`
	TaxRate  string `yaml:"tax_rate"`
	LogLevel string `yaml:"log_level"`
	Catalog  struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
}

func Default() Config {
	return Config{
		Currency: currency.INR,
		TaxRate:  decimal.RequireFromString("0.18"),
		LogLevel: "info",
	}
}

// Load reads the YAML file at path, if any, on top of the defaults and then
// applies TIPKART_* environment overrides.
func Load(path string) (Config, error) {
	raw := fileConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}

		if err := decode(bytes.NewReader(data), &raw); err != nil {
			return Config{}, fmt.Errorf("decode: %w", err)
		}
	}

	overrideFromEnv(&raw)

	cfg, err := mapFileToConfig(raw)
	if err != nil {
		return Config{}, fmt.Errorf("mapFileToConfig: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate[%s] is negative", c.TaxRate)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level[%s] is not valid", c.LogLevel)
	}
	return nil
}

func decode(r io.Reader, raw *fileConfig) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(raw)
	if errors.Is(err, io.EOF) {
		// empty file
		return nil
	}
	return err
}

func overrideFromEnv(raw *fileConfig) {
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		raw.Currency = v
	}
	if v, ok := os.LookupEnv(EnvTaxRate); ok {
		raw.TaxRate = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		raw.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCatalogPath); ok {
		raw.Catalog.Path = v
	}
}

func mapFileToConfig(raw fileConfig) (Config, error) {
	cfg := Default()

	if raw.Currency != "" {
		unit, err := currency.ParseISO(raw.Currency)
		if err != nil {
			return Config{}, fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
		}
		cfg.Currency = unit
	}

	if raw.TaxRate != "" {
		rate, err := decimal.NewFromString(raw.TaxRate)
		if err != nil {
			return Config{}, fmt.Errorf("tax rate[%s] is not valid: %w", raw.TaxRate, err)
		}
		cfg.TaxRate = rate
	}

	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}

	cfg.CatalogPath = raw.Catalog.Path

	return cfg, nil
}
