package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/config"
	"github.com/nikolayk812/tipkart/internal/logging"
	"github.com/nikolayk812/tipkart/internal/port"
	"github.com/nikolayk812/tipkart/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tipkart",
		Short: "tipkart - storefront catalog, cart and checkout from the terminal",
		Long: `tipkart browses the product catalog, replays recorded shopping sessions
through the cart and checkout, and tracks orders.

The catalog is the embedded product list unless catalog_path points at a
sqlite file created with "tipkart seed".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level, overrides the config file")

	rootCmd.AddCommand(newHomeCmd(a))
	rootCmd.AddCommand(newProductsCmd(a))
	rootCmd.AddCommand(newProductCmd(a))
	rootCmd.AddCommand(newTrackCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newSeedCmd(a))

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// openCatalog returns the configured catalog and a func releasing it.
func (a *app) openCatalog(ctx context.Context) (port.ProductCatalog, func(), error) {
	if a.cfg.CatalogPath == "" {
		products, err := catalog.Default()
		if err != nil {
			return nil, nil, fmt.Errorf("catalog.Default: %w", err)
		}
		return products, func() {}, nil
	}

	conn, err := repository.Open(ctx, a.cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("repository.Open: %w", err)
	}
	a.logger.Debug("catalog opened", zap.String("path", a.cfg.CatalogPath))

	return repository.NewCatalog(conn), func() { a.closeDB(conn) }, nil
}

func (a *app) closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		a.logger.Warn("conn.Close", zap.Error(err))
	}
}
