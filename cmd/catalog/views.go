package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/catalog/popularity"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

func newViewsCmd() *cobra.Command {
	var (
		groupID string
		top     int
	)

	cmd := &cobra.Command{
		Use:   "views",
		Short: "Count product-viewed events until interrupted, then print the most viewed products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(cfg.KafkaBrokers) == 0 {
				return errors.New("views requires KAFKA_BROKERS")
			}

			consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, groupID, []string{kafka.TopicProductViewed})
			if err != nil {
				return err
			}
			defer consumer.Close()

			counter := popularity.NewCounter(prometheus.DefaultRegisterer)
			consumer.RegisterHandler(kafka.EventTypeProductViewed, counter.Handle)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := consumer.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()

			logger.Logger.Info().Msg("Stopping view counter")
			return writeJSON(cmd.OutOrStdout(), counter.Top(top))
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "catalog-views", "Kafka consumer group id")
	cmd.Flags().IntVar(&top, "top", 10, "number of products to print (0 prints all)")
	return cmd
}

