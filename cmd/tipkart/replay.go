package main

import (
	"fmt"
	"os"

	"github.com/nikolayk812/tipkart/internal/pricing"
	"github.com/nikolayk812/tipkart/internal/storefront"
	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <session.yaml>",
		Short: "Replay a recorded shopping session",
		Long: `Runs a YAML list of shopper actions against a fresh cart and checkout,
printing the cart after every step.

Actions: login, logout, add, remove, update, clear, shipping, payment, place.

Example session:
  steps:
    - add: {product: 1, quantity: 2}
    - update: {product: 1, quantity: 0}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open: %w", err)
			}
			defer f.Close()

			script, err := storefront.LoadScript(f)
			if err != nil {
				return fmt.Errorf("storefront.LoadScript: %w", err)
			}

			src, release, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer release()

			session := storefront.NewSession(src, pricing.NewTaxPolicy(a.cfg.TaxRate), a.cfg.Currency, a.logger)
			defer session.Close()

			out := cmd.OutOrStdout()
			err = storefront.Replay(ctx, session, script, func(r storefront.StepResult) {
				fmt.Fprintln(out, renderStep(r))
				if r.Order != nil {
					fmt.Fprintln(out, renderOrder(*r.Order))
				}
			})
			if err != nil {
				return fmt.Errorf("storefront.Replay: %w", err)
			}

			if cart := session.Cart.Snapshot(); !cart.IsEmpty() {
				fmt.Fprintln(out, renderCart(cart, session.Summary()))
			}
			return nil
		},
	}
}
