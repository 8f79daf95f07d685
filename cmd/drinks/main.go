package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/mwhite7112/woodpantry-drinks/internal/api"
	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
	"github.com/mwhite7112/woodpantry-drinks/internal/config"
	"github.com/mwhite7112/woodpantry-drinks/internal/db"
	"github.com/mwhite7112/woodpantry-drinks/internal/logging"
	"github.com/mwhite7112/woodpantry-drinks/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	sqlDB, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(sqlDB); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	source := cocktaildb.NewBreakerClient(
		cocktaildb.NewClient(cfg.CocktailDB.URL, cfg.CocktailDB.Timeout),
		cocktaildb.BreakerConfig{
			MaxFailures: cfg.Breaker.MaxFailures,
			OpenTimeout: cfg.Breaker.OpenTimeout,
		},
	)

	queries := db.New(sqlDB)
	svc := service.New(queries, source, cfg.SuggestThreshold)
	handler := api.NewRouter(svc, cfg.CORSOrigins...)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("drinks service listening", "addr", srv.Addr, "cocktaildb", cfg.CocktailDB.URL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("drinks service stopped")
}
