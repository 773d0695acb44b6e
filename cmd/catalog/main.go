package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/pkg/logger"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Read-only product catalog service",
		Long: `catalog serves a product collection over HTTP and gRPC and lets you
query it from the command line:
- serve: start the HTTP and gRPC servers
- list: filter the catalog and print the matches as JSON
- show: print one product by id
- seed: load the sample catalog into PostgreSQL
- views: count product-viewed events from Kafka`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newViewsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initializes the global logger on out
func bootstrap(out io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.InitWithWriter(out, cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	return cfg, nil
}
