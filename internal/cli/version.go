package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information (injected at build time via -ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version":    Version,
				"commit":     GitCommit,
				"go_version": runtime.Version(),
			}
			return NewPrinter(a.cfg.OutputFormat, cmd.OutOrStdout()).Print(info,
				fmt.Sprintf("goshamir version %s", Version),
				fmt.Sprintf("Git commit: %s", GitCommit),
				fmt.Sprintf("Go version: %s", runtime.Version()))
		},
	}
}
