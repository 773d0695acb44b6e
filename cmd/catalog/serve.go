package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	_ "github.com/tair/product-catalog/docs"
	"github.com/tair/product-catalog/internal/catalog"
	grpcDelivery "github.com/tair/product-catalog/internal/catalog/delivery/grpc"
	httpDelivery "github.com/tair/product-catalog/internal/catalog/delivery/http"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
	"github.com/tair/product-catalog/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("data_source", cfg.DataSource).
		Msg("Starting product catalog")

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Tracing disabled")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
				}
			}()
		}
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	publisher, closePublisher := openPublisher(cfg)
	defer closePublisher()

	reg := prometheus.DefaultRegisterer

	handler, err := catalog.InitializeHTTPHandler(repo, publisher, reg)
	if err != nil {
		return err
	}
	if client := openRedis(cmd.Context(), cfg); client != nil {
		defer client.Close()
		cacheCfg := httpDelivery.DefaultCacheConfig()
		cacheCfg.DefaultTTL = cfg.CacheTTL
		handler.UseCache(httpDelivery.CacheMiddleware(client, cacheCfg))

		if cfg.RateLimitRequests > 0 {
			limiter := httpDelivery.NewRateLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow)
			handler.UseRateLimit(limiter.Middleware)
			logger.Logger.Info().
				Int("requests", cfg.RateLimitRequests).
				Dur("window", cfg.RateLimitWindow).
				Msg("Rate limiting enabled")
		}
	}

	catalogServer, err := catalog.InitializeGRPCServer(repo, publisher)
	if err != nil {
		return err
	}
	grpcServer := grpcDelivery.NewServer(catalogServer, grpcDelivery.NewMetrics(reg))

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		logger.Logger.Info().Str("port", cfg.GRPCPort).Msg("gRPC server started")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-quit:
		logger.Logger.Info().Str("signal", sig.String()).Msg("Shutting down servers...")
	case serveErr = <-errCh:
		logger.Logger.Error().Err(serveErr).Msg("Server failed, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()

	return serveErr
}

func newRouter(handler *httpDelivery.ProductHandler) http.Handler {
	mwCfg := httpDelivery.DefaultMiddlewareConfig()

	router := mux.NewRouter()
	httpDelivery.RegisterMiddlewares(router, mwCfg)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	httpDelivery.RegisterSwaggerDocs(router, httpDelivery.NewSwaggerHandler())

	return httpDelivery.SetupCORS(mwCfg)(router)
}

// openPublisher returns a Kafka publisher, or a no-op one when no brokers
// are configured or Kafka is unreachable.
func openPublisher(cfg *config.Config) (query.ViewPublisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, product view events disabled")
		return query.NopViewPublisher{}, func() {}
	}

	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, product view events disabled")
		return query.NopViewPublisher{}, func() {}
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka publisher")
		}
	}
}

// openRedis returns nil when caching is disabled or Redis does not answer
func openRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Logger.Info().Msg("REDIS_ADDR not set, response cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, response cache disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().
		Str("addr", cfg.RedisAddr).
		Dur("ttl", cfg.CacheTTL).
		Msg("Response cache enabled")
	return client
}
