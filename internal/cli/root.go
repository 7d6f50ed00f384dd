// Package cli implements the goshamir command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	configFile string
	cfg        *Config
	log        *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	def := NewConfig()

	rootCmd := &cobra.Command{
		Use:   "goshamir",
		Short: "Threshold secret sharing with exact rational reconstruction",
		Long: `goshamir splits an integer secret into N shares so that any T of them
reconstruct it exactly, using Lagrange interpolation over fractions.

Configuration is read from --config (YAML, JSON or TOML) and GOSHAMIR_*
environment variables; flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.NewLogger(cmd.ErrOrStderr())
			a.log.Debug("configuration loaded",
				"provider", cfg.Provider,
				"bound_bits", cfg.BoundBits,
				"output", cfg.OutputFormat)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file")
	pf.StringP("output", "o", def.OutputFormat, "output format (text, json)")
	pf.BoolP("verbose", "v", def.Verbose, "verbose output")
	pf.String("provider", def.Provider, "coefficient randomness (crypto, hkdf, math)")
	pf.String("seed", def.Seed, "seed for the hkdf or math provider")
	pf.Uint("bound-bits", def.BoundBits, "random coefficients are drawn below 2^bound-bits")

	rootCmd.AddCommand(
		newSplitCmd(a),
		newCombineCmd(a),
		newSealCmd(a),
		newUnsealCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)).Error("command failed", slog.Any("error", err))
	}
	return err
}
