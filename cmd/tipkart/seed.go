package main

import (
	"fmt"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <db-path>",
		Short: "Write the embedded product list into a sqlite catalog",
		Long: `Creates or updates a sqlite catalog file with the embedded products.
Point catalog_path (or TIPKART_CATALOG_PATH) at the file to browse it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			products, err := catalog.DefaultProducts()
			if err != nil {
				return fmt.Errorf("catalog.DefaultProducts: %w", err)
			}

			conn, err := repository.Open(ctx, path)
			if err != nil {
				return fmt.Errorf("repository.Open: %w", err)
			}
			defer a.closeDB(conn)

			n, err := repository.SeedCatalog(ctx, conn, products)
			if err != nil {
				return fmt.Errorf("repository.SeedCatalog: %w", err)
			}

			a.logger.Info("catalog seeded", zap.String("path", path), zap.Int("products", n))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products into %s\n", n, path)
			return nil
		},
	}
}
