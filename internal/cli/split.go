package cli

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/shamir"
	"github.com/spf13/cobra"
)

type splitResult struct {
	Threshold int      `json:"threshold"`
	Total     int      `json:"total"`
	Shares    []string `json:"shares"`
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		secretText string
		n, t       int
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Example: `  goshamir split --secret 8878244378 -n 5 -t 3
  goshamir split --secret 320 -n 10 -t 6 --provider hkdf --seed "demo"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, ok := new(big.Int).SetString(secretText, 10)
			if !ok {
				return fmt.Errorf("invalid secret %q: expected a decimal integer", secretText)
			}
			dealer, err := a.cfg.NewDealer()
			if err != nil {
				return err
			}
			shares, err := dealer.GenerateShares(secret, n, t)
			if err != nil {
				return err
			}
			a.log.Debug("generated shares", "total", n, "threshold", t, "provider", a.cfg.Provider)

			res := splitResult{Threshold: t, Total: n, Shares: make([]string, len(shares))}
			for i, s := range shares {
				res.Shares[i] = s.String()
			}
			return NewPrinter(a.cfg.OutputFormat, cmd.OutOrStdout()).Print(res, res.Shares...)
		},
	}
	cmd.Flags().StringVar(&secretText, "secret", "", "secret to split (non-negative decimal integer)")
	cmd.Flags().IntVarP(&n, "total", "n", 5, "number of shares to create")
	cmd.Flags().IntVarP(&t, "threshold", "t", 3, "shares required to reconstruct")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

type combineResult struct {
	Secret string `json:"secret"`
	Used   int    `json:"used"`
}

func newCombineCmd(a *app) *cobra.Command {
	var t int
	cmd := &cobra.Command{
		Use:     "combine x:y [x:y...]",
		Short:   "Reconstruct a secret from shares",
		Example: `  goshamir combine -t 2 1:15 2:25`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares := make([]*shamir.Share, len(args))
			for i, arg := range args {
				s, err := shamir.ParseShare(arg)
				if err != nil {
					return err
				}
				shares[i] = s
			}
			threshold := t
			if threshold == 0 {
				threshold = len(shares)
			}
			secret, err := shamir.Combine(shares, threshold)
			if err != nil {
				return err
			}
			a.log.Debug("reconstructed secret", "supplied", len(shares), "threshold", threshold)

			res := combineResult{Secret: secret.String(), Used: threshold}
			return NewPrinter(a.cfg.OutputFormat, cmd.OutOrStdout()).Print(res, res.Secret)
		},
	}
	cmd.Flags().IntVarP(&t, "threshold", "t", 0, "threshold (default: number of shares given)")
	return cmd
}
