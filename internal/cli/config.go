package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/izouxv/goShamir/random"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GOSHAMIR"

// Config holds global CLI configuration
type Config struct {
	// OutputFormat controls output formatting (text, json)
	OutputFormat string `mapstructure:"output"`

	// Verbose enables debug logging
	Verbose bool `mapstructure:"verbose"`

	// Provider selects the coefficient source (crypto, hkdf, math)
	Provider string `mapstructure:"provider"`

	// Seed feeds the hkdf (passphrase) and math (integer) providers
	Seed string `mapstructure:"seed"`

	// BoundBits sets the coefficient bound to 2^BoundBits
	BoundBits uint `mapstructure:"bound_bits"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
		Provider:     "crypto",
		BoundBits:    256,
	}
}

// loadConfig layers defaults, an optional config file, GOSHAMIR_* environment
// variables and explicitly set flags, in increasing priority.
func loadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := NewConfig()
	v.SetDefault("output", def.OutputFormat)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("provider", def.Provider)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("bound_bits", def.BoundBits)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	for _, name := range []string{"output", "verbose", "provider", "seed", "bound-bits"} {
		if f := flags.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.OutputFormat {
	case string(OutputFormatText), string(OutputFormatJSON):
	default:
		return fmt.Errorf("unknown output format: %s", c.OutputFormat)
	}
	if c.BoundBits == 0 {
		return errors.New("bound_bits must be positive")
	}
	return nil
}

// NewDealer builds a shamir.Dealer from the provider settings.
func (c *Config) NewDealer() (*shamir.Dealer, error) {
	var p random.Provider
	switch c.Provider {
	case "crypto":
		p = random.NewCryptoProvider()
	case "hkdf":
		if c.Seed == "" {
			return nil, errors.New("the hkdf provider requires a seed")
		}
		var err error
		p, err = random.NewHKDFProvider(utils.SeedFromPassphrase(c.Seed), []byte("goshamir"))
		if err != nil {
			return nil, err
		}
	case "math":
		seed, err := strconv.ParseInt(c.Seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("the math provider requires an integer seed: %w", err)
		}
		p = random.NewMathProvider(seed)
	default:
		return nil, fmt.Errorf("unknown provider: %s", c.Provider)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), c.BoundBits)
	return shamir.NewDealer(shamir.WithProvider(p), shamir.WithBound(bound)), nil
}

// NewLogger returns a text slog logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
