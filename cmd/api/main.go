// @title                       Ghibli Catalog API
// @version                     1.0.0
// @description                 User administration and a role-gated proxy to the Studio Ghibli catalog.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/api"
	"github.com/ghiblihub/catalog-api/internal/api/handler"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
	"github.com/ghiblihub/catalog-api/internal/core/service"
	"github.com/ghiblihub/catalog-api/internal/infrastructure/catalog"
	"github.com/ghiblihub/catalog-api/internal/infrastructure/config"
	mongostore "github.com/ghiblihub/catalog-api/internal/infrastructure/db/mongo"
	"github.com/ghiblihub/catalog-api/internal/infrastructure/db/postgres"
	redisstore "github.com/ghiblihub/catalog-api/internal/infrastructure/db/redis"
	"github.com/ghiblihub/catalog-api/internal/infrastructure/token"
	"github.com/ghiblihub/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: cfg.AppName,
		Version: cfg.APIVersion,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// store bundles the repositories of the selected driver.
type store struct {
	users ports.UserRepository
	roles ports.RoleRepository
	ping  handler.HealthCheck
	close func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
		return &store{
			users: mongostore.NewUserRepository(db),
			roles: mongostore.NewRoleRepository(db),
			ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: client.Disconnect,
		}, nil

	default:
		pgCfg := postgres.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			Name:     cfg.Database.Name,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			SSLMode:  cfg.Database.SSLMode,
			Debug:    cfg.Database.Debug,
		}
		if err := postgres.Migrate(pgCfg, log); err != nil {
			return nil, err
		}
		db, sqlDB, err := postgres.Connect(ctx, pgCfg, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", pgCfg.Host).Str("database", pgCfg.Name).Msg("connected to postgres")
		return &store{
			users: postgres.NewUserRepository(db),
			roles: postgres.NewRoleRepository(db),
			ping:  sqlDB.PingContext,
			close: func(context.Context) error { return sqlDB.Close() },
		}, nil
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	tokens, err := token.NewService(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL())
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	seeder := service.NewSeeder(st.users, st.roles, service.AdminAccount{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}, log)
	if err := seeder.Seed(ctx); err != nil {
		return err
	}

	checks := map[string]handler.HealthCheck{cfg.StoreDriver: st.ping}

	var limiter api.LoginLimiter
	if cfg.Redis.Enabled {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		limiter = redisstore.NewLoginLimiter(rdb, cfg.Redis.LoginLimit, cfg.Redis.LoginWindow)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Int("limit", cfg.Redis.LoginLimit).Msg("login rate limiting enabled")
	}

	source := catalog.NewClient(catalog.Config{BaseURL: cfg.Ghibli.BaseURL, Timeout: cfg.Ghibli.Timeout})

	e := api.NewRouter(api.Dependencies{
		Log:          log,
		CORSOrigins:  cfg.CORSOrigins,
		Tokens:       tokens,
		Auth:         service.NewAuthService(st.users, tokens, log),
		Users:        service.NewUserService(st.users, st.roles, log),
		Catalog:      service.NewCatalogService(source, log),
		LoginLimiter: limiter,
		HealthChecks: checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
