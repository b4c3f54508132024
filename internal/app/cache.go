package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vilyaua/AI-01/internal/adapter/cache"
	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/config"
)

// withReplyCache puts the configured reply cache in front of gen. The
// returned close func is never nil.
func withReplyCache(ctx context.Context, cfg config.CacheConfig, gen llm.Generator, logger *slog.Logger) (llm.Generator, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.CacheMemory:
		m, err := cache.NewMemory(cfg.MaxEntries, cfg.TTL)
		if err != nil {
			return nil, noop, fmt.Errorf("app: reply cache: %w", err)
		}
		logger.Info("reply cache enabled", slog.String("backend", cfg.Backend), slog.Int64("max_entries", cfg.MaxEntries))
		return llm.NewCached(gen, m, logger), func() { _ = m.Close() }, nil
	case config.CacheRedis:
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("app: reply cache: %w", err)
		}
		logger.Info("reply cache enabled", slog.String("backend", cfg.Backend), slog.String("addr", cfg.RedisAddr))
		return llm.NewCached(gen, r, logger), func() { _ = r.Close() }, nil
	default:
		return gen, noop, nil
	}
}
