// @title           Job Records API
// @version         1.0
// @description     Password-authenticated job record keeping.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jobledger/records-api/internal/api"
	"github.com/jobledger/records-api/internal/api/handler"
	"github.com/jobledger/records-api/internal/core/service"
	mongostore "github.com/jobledger/records-api/internal/infrastructure/db/mongo"
	redisstore "github.com/jobledger/records-api/internal/infrastructure/db/redis"
	"github.com/jobledger/records-api/internal/infrastructure/password"
	"github.com/jobledger/records-api/internal/infrastructure/queue"
	"github.com/jobledger/records-api/internal/infrastructure/token"
	"github.com/jobledger/records-api/internal/pkg/config"
	"github.com/jobledger/records-api/pkg/logger"
)

const (
	shutdownTimeout   = 30 * time.Second
	auditDrainTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "records-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "records-api",
	})

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	hasher, err := password.New(password.Config{
		Algorithm:       password.Algorithm(cfg.Auth.PasswordAlgorithm),
		BcryptCost:      cfg.Auth.BcryptCost,
		Argon2Time:      cfg.Auth.Argon2Time,
		Argon2MemoryKiB: cfg.Auth.Argon2MemoryKiB,
		Argon2Threads:   cfg.Auth.Argon2Threads,
	})
	if err != nil {
		return err
	}
	tokens, err := token.NewJWTService([]byte(cfg.Auth.JWTSecret), token.WithIssuer(cfg.Auth.JWTIssuer))
	if err != nil {
		return err
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	auditor := queue.NewDispatcher(cfg.Audit.Workers, mongostore.NewAuthEventRepository(db), logger.Component("audit"))
	auditor.Start(workerCtx)

	authService := service.NewAuthService(
		mongostore.NewCredentialStore(db),
		hasher,
		tokens,
		cfg.Auth.TokenTTL,
		logger.Component("auth"),
		service.WithLoginThrottle(redisstore.NewLoginThrottle(rdb, cfg.Auth.LoginMaxFailures, cfg.Auth.LoginFailureWindow)),
		service.WithAuditor(auditor),
	)
	jobService := service.NewJobService(mongostore.NewJobRepository(db), logger.Component("jobs"))

	router := api.NewRouter(api.Deps{
		AuthService: authService,
		JobService:  jobService,
		Checks: map[string]handler.DependencyCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		Logger:            logger.Component("http"),
		RateLimitRPS:      cfg.RateLimit.RPS,
		RateLimitBurst:    cfg.RateLimit.Burst,
		AllowedOrigins:    trimAll(cfg.CORSAllowedOrigins),
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("API server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server listen: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), auditDrainTimeout)
	defer cancelDrain()
	if err := auditor.Shutdown(drainCtx); err != nil {
		log.Warn().Err(err).Msg("audit events left unwritten")
	}

	log.Info().Msg("API server stopped gracefully")
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
