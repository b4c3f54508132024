package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	conjugationrepo "github.com/vilyaua/AI-01/internal/adapter/postgres/conjugation"
	evaluationrepo "github.com/vilyaua/AI-01/internal/adapter/postgres/evaluation"
	learnerrepo "github.com/vilyaua/AI-01/internal/adapter/postgres/learner"
	vocabularyrepo "github.com/vilyaua/AI-01/internal/adapter/postgres/vocabulary"
	"github.com/vilyaua/AI-01/internal/adapter/provider/extract"
	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/config"
	"github.com/vilyaua/AI-01/internal/service/enrichment"
	"github.com/vilyaua/AI-01/internal/service/learner"
	"github.com/vilyaua/AI-01/internal/service/learning"
	"github.com/vilyaua/AI-01/internal/service/vocabulary"
	"github.com/vilyaua/AI-01/internal/transport/middleware"
	"github.com/vilyaua/AI-01/internal/transport/rest"
	"github.com/vilyaua/AI-01/migrations"
)

// Run is the serve entry point. It loads configuration, connects to the
// database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("llm_enabled", cfg.LLM.Enabled()),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, appName)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	handler, stop, err := NewHandler(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer stop()

	return serve(ctx, cfg.Server, handler, logger)
}

// NewHandler wires repositories, providers and services into the HTTP
// handler. The returned stop func releases background resources.
func NewHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	learners := learnerrepo.New(pool)
	entries := vocabularyrepo.New(pool)
	conjugations := conjugationrepo.New(pool)
	evaluations := evaluationrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	gen, err := llm.New(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("app: text generation: %w", err)
	}
	closeCache := func() {}
	if gen == nil {
		logger.Warn("no generation credential configured, using deterministic fallbacks")
	} else {
		gen, closeCache, err = withReplyCache(ctx, cfg.Cache, gen, logger)
		if err != nil {
			return nil, nil, err
		}
	}
	enrichSvc := enrichment.NewService(logger, gen)

	vocabSvc := vocabulary.NewService(logger, learners, entries, conjugations, enrichSvc, txm)
	imageEx, audioEx := extract.New(*cfg, logger)
	if imageEx != nil {
		vocabSvc.SetImageExtractor(imageEx)
	}
	if audioEx != nil {
		vocabSvc.SetAudioExtractor(audioEx)
	}

	learnerSvc := learner.NewService(logger, learners)
	learningSvc := learning.NewService(logger, learners, entries, evaluations, enrichSvc, txm)

	var limit middleware.Middleware
	stop := closeCache
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
		stop = func() {
			rl.Stop()
			closeCache()
		}
	}
	mw := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)

	handler := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, Version, rest.Capabilities{
			Generation: gen != nil,
			Extraction: imageEx != nil,
		}),
		Learner:    rest.NewLearnerHandler(learnerSvc, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabSvc, logger, cfg.Server.MaxUploadBytes),
		Learning:   rest.NewLearningHandler(learningSvc, logger),
	}, mw)

	return handler, stop, nil
}

func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("app: listen: %w", err)
	}
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn, migrations.FS, logger)
	if err != nil {
		return fmt.Errorf("app: migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("app: migrate up: %w", err)
	}
	return nil
}
