package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL time.Duration
	KeyPrefix  string
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL: 5 * time.Minute,
		KeyPrefix:  "catalog:cache:",
	}
}

// bodyRecorder tees the response body so it can be stored after the handler returns
type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (b *bodyRecorder) WriteHeader(code int) {
	b.statusCode = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *bodyRecorder) Write(p []byte) (int, error) {
	b.body.Write(p)
	return b.ResponseWriter.Write(p)
}

// CacheMiddleware caches successful GET responses in Redis.
// A nil client or any Redis failure falls through to the handler.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if redisClient == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey := generateCacheKey(config.KeyPrefix, r)

			cached, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(ctx).
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write(cached)
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn(ctx).Err(err).Str("cache_key", cacheKey).Msg("Cache lookup failed")
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.statusCode != http.StatusOK {
				return
			}
			if err := redisClient.Set(ctx, cacheKey, rec.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Warn(ctx).
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Debug(ctx).
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", config.DefaultTTL).
				Int("size", rec.body.Len()).
				Msg("Response cached")
		})
	}
}

// generateCacheKey hashes the path and the normalised criteria, so
// equivalent queries ("rating=0" vs none, parameter order) share an entry.
func generateCacheKey(prefix string, r *http.Request) string {
	normalized := domain.ParseCriteria(r.URL.Query()).Values().Encode()
	hash := sha256.Sum256([]byte(r.URL.Path + "?" + normalized))
	return prefix + hex.EncodeToString(hash[:])
}
