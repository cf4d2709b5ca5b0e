package main

import (
	"fmt"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/spf13/cobra"
)

func newHomeCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show shop categories and featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, release, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer release()

			featured, err := catalog.Featured(ctx, src, limit)
			if err != nil {
				return fmt.Errorf("catalog.Featured: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCategories(catalog.Categories))
			fmt.Fprintln(out, titleStyle.Render("Featured Products"))
			if len(featured) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No products found"))
				return nil
			}
			fmt.Fprintln(out, renderProducts(featured))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", catalog.FeaturedCount, "Number of featured products")

	return cmd
}
