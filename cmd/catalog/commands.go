package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/pkg/logger"
)

// listFlags maps list flags onto criteria fields. Values go through
// Criteria.With, so they follow the same rules as HTTP query parameters.
var listFlags = []struct {
	name  string
	field domain.Field
	usage string
}{
	{"category", domain.FieldCategory, "case-insensitive category substring"},
	{"company", domain.FieldCompany, "case-insensitive company substring"},
	{"min-rating", domain.FieldMinRating, "minimum rating (0 means no minimum)"},
	{"min-price", domain.FieldMinPrice, "minimum price, inclusive"},
	{"max-price", domain.FieldMaxPrice, "maximum price, inclusive"},
	{"availability", domain.FieldAvailability, "case-insensitive availability substring"},
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter the catalog and print the matches as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			criteria := domain.DefaultCriteria()
			for _, f := range listFlags {
				if cmd.Flags().Changed(f.name) {
					value, _ := cmd.Flags().GetString(f.name)
					criteria = criteria.With(f.field, value)
				}
			}

			return runList(cmd, cfg, criteria)
		},
	}

	for _, f := range listFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	return cmd
}

func runList(cmd *cobra.Command, cfg *config.Config, criteria domain.Criteria) error {
	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	result, err := query.NewListProductsHandler(repo).Handle(cmd.Context(), query.ListProductsQuery{Criteria: criteria})
	if err != nil {
		return err
	}

	logger.Logger.Debug().
		Int("total", result.Total).
		Int("matched", result.Matched).
		Msg("Catalog filtered")

	return writeJSON(cmd.OutOrStdout(), result)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one product by its exact id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			repo, closeRepo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			// Command line lookups are not customer views
			h := query.NewGetProductHandler(repo, query.NopViewPublisher{})
			product, err := h.Handle(cmd.Context(), query.GetProductQuery{ID: args[0]})
			if errors.Is(err, domain.ErrProductNotFound) {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), product)
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into PostgreSQL",
		Long:  `Creates the products table if needed and upserts the built-in sample records. Requires DATA_SOURCE=postgres.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.DataSource != config.DataSourcePostgres {
				return fmt.Errorf("seed requires DATA_SOURCE=%s, got %q", config.DataSourcePostgres, cfg.DataSource)
			}

			repo, closeDB, err := openGormRepository(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			products := repository.SampleProducts()
			if err := repo.Upsert(cmd.Context(), products); err != nil {
				return err
			}

			logger.Logger.Info().Int("products", len(products)).Msg("Catalog seeded")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", len(products))
			return nil
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
