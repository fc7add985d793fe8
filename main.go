package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/agrosmart-advisor/server/internal/advisor/crops"
	"github.com/agrosmart-advisor/server/internal/advisor/market"
	"github.com/agrosmart-advisor/server/internal/advisor/model"
	"github.com/agrosmart-advisor/server/internal/advisor/search"
	"github.com/agrosmart-advisor/server/internal/advisor/weather"
	"github.com/agrosmart-advisor/server/internal/core"
	"github.com/agrosmart-advisor/server/internal/session"
	"github.com/agrosmart-advisor/server/internal/web"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
	pkgredis "github.com/agrosmart-advisor/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the advisor,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`
	HTTPAddr    string           `envconfig:"HTTP_ADDR" default:":5000"`

	// Infrastructure
	Redis pkgredis.Config

	// Features
	Session model.SessionConfig
	Weather model.WeatherConfig
	Market  model.MarketConfig
	Advisor model.AdvisorModelConfig
	Crops   model.CropsConfig
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment})
	logx.Debug().
		Bool("redis", cfg.Redis.Enabled()).
		Str("market_commodity", cfg.Market.Commodity).
		Dur("market_cache_ttl", cfg.Market.CacheTTL).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		client, err := cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise redis client")
		}
		defer client.Close()
		rdb = client
		logx.Info().Msg("connected to redis")
	} else {
		logx.Warn().Msg("REDIS_URL not set, sessions and market cache are kept in memory")
	}

	deps, err := buildDeps(ctx, cfg, rdb)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise advisor")
	}

	router, err := web.NewRouter(deps)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("http server failed")
		}
	}()

	logx.Info().
		Str("addr", cfg.HTTPAddr).
		Str("environment", cfg.Environment.String()).
		Bool("ai_search", cfg.Advisor.Enabled()).
		Msg("agrosmart advisor started")

	<-ctx.Done()
	logx.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	logx.Info().Msg("agrosmart advisor stopped cleanly")
}

// buildDeps wires the advisor services. rdb may be nil, in which case the
// session store and market cache live in process memory.
func buildDeps(ctx context.Context, cfg AppConfig, rdb *redis.Client) (web.Deps, error) {
	catalog, err := crops.LoadCatalog(cfg.Crops.DataPath)
	if err != nil {
		return web.Deps{}, err
	}

	marketClient := market.NewClient(cfg.Market)

	var (
		sessions session.Store
		slot     market.Slot
	)
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
		slot = market.NewRedisSlot(rdb, marketClient.Commodity(), cfg.Market.CacheTTL)
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		slot = market.NewMemorySlot()
	}

	var answerer search.Answerer
	if cfg.Advisor.Enabled() {
		a, err := search.NewGeminiAnswerer(ctx, cfg.Advisor)
		if err != nil {
			return web.Deps{}, err
		}
		answerer = a
	}

	if cfg.Session.Secret == "dev-secret-key" && cfg.Environment.IsProduction() {
		logx.Warn().Msg("SESSION_SECRET is the development default")
	}

	return web.Deps{
		Environment: cfg.Environment,
		Sessions:    sessions,
		Session:     cfg.Session,
		Weather:     weather.NewClient(cfg.Weather),
		Market:      market.NewCache(marketClient, slot, cfg.Market.CacheTTL),
		Crops:       catalog,
		Search:      search.NewService(answerer),
	}, nil
}
