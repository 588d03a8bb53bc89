package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	"github.com/BruksfildServices01/farmergpt/internal/config"
	dbpkg "github.com/BruksfildServices01/farmergpt/internal/db"
	"github.com/BruksfildServices01/farmergpt/internal/llm"
	"github.com/BruksfildServices01/farmergpt/internal/reporting"
	"github.com/BruksfildServices01/farmergpt/internal/routes"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	reporter := reporting.New(cfg, log)
	defer reporter.Flush(2 * time.Second)

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	denylist, closeDenylist := newDenylist(cfg, db, log)
	defer closeDenylist()

	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	var chatClient llm.Client
	if cfg.LLMAPIKey != "" {
		chatClient = llm.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, httpClient)
	} else {
		log.Info("LLM_API_KEY not set, chatbot will use canned responses")
	}
	if cfg.WeatherAPIKey == "" {
		log.Info("WEATHER_API_KEY not set, weather endpoint will answer 503")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:         db,
		Config:     cfg,
		Log:        log,
		Reporter:   reporter,
		Audit:      dispatcher,
		Denylist:   denylist,
		LLM:        chatClient,
		HTTPClient: httpClient,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}

	dispatcher.Close()
}

// newDenylist prefers Redis and falls back to the SQL table, which is purged
// hourly of entries past their token expiry.
func newDenylist(cfg *config.Config, db *gorm.DB, log *slog.Logger) (token.Denylist, func()) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid REDIS_URL, using database denylist", "error", err)
		} else {
			rdb := redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := rdb.Ping(ctx).Err()
			cancel()

			if err == nil {
				log.Info("token denylist backed by redis")
				return token.NewRedisDenylist(rdb), func() { _ = rdb.Close() }
			}

			log.Error("redis unreachable, using database denylist", "error", err)
			_ = rdb.Close()
		}
	}

	list := token.NewGormDenylist(db)
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				n, err := list.Purge(ctx)
				cancel()
				if err != nil {
					log.Error("denylist purge failed", "error", err)
					continue
				}
				if n > 0 {
					log.Info("denylist purged", "removed", n)
				}
			case <-stop:
				return
			}
		}
	}()

	return list, func() { close(stop) }
}
