package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"sedrouting/internal/documents"
	"sedrouting/internal/journal"
	"sedrouting/internal/journal/metrics"
	"sedrouting/internal/platform/config"
	"sedrouting/internal/platform/httpserver"
	"sedrouting/internal/platform/kafka/consumer"
	"sedrouting/internal/platform/logger"
	platformredis "sedrouting/internal/platform/redis"
	"sedrouting/internal/registry/adapters/rest"
	"sedrouting/internal/routing"
	"sedrouting/internal/routing/store"
	httptransport "sedrouting/internal/transport/http"
)

// main wires high-level dependencies, runs the event consumer next to the
// ops HTTP server, and keeps the lifecycle small. Business logic lives in
// the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis setup failed", "error", err)
		os.Exit(1)
	}

	tokens := rest.NewTokenProvider(cfg.Upstream.TokenURL, cfg.Upstream.ClientID, cfg.Upstream.ClientSecret, nil)

	var fetcher documents.Fetcher = documents.NewHTTPFetcher(cfg.Upstream.DocumentAPI, tokens)
	fetcher = documents.NewCached(fetcher, redisClient, cfg.DocumentCacheTTL, log)

	persons := rest.NewPersonClient(cfg.Upstream.PersonAPI, tokens)
	legacy := rest.NewLegacyCaseClient(cfg.Upstream.LegacyCaseAPI, tokens)
	override := rest.NewOrgUnitClient(cfg.Upstream.OrgUnitAPI, tokens)

	var decisions store.Store = store.NewInMemory()
	var db *sql.DB
	if cfg.Postgres.DSN != "" {
		db, err = sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres setup failed", "error", err)
			os.Exit(1)
		}
		pg := store.NewPostgres(db)
		if err := pg.Migrate(context.Background()); err != nil {
			log.Error("decision log migration failed", "error", err)
			os.Exit(1)
		}
		decisions = pg
	}

	engine := routing.New(override, log)
	service := journal.New(fetcher, persons, legacy, engine, decisions, metrics.New(), log, cfg.LookupTimeout)
	handler := journal.NewTopicHandler(service, log, cfg.Kafka.TopicReceived, cfg.Kafka.TopicSent)

	kafkaConsumer, err := consumer.New(cfg.Kafka, handler, log)
	if err != nil {
		log.Error("kafka setup failed", "error", err)
		os.Exit(1)
	}

	checks := map[string]httptransport.HealthChecker{"kafka": kafkaConsumer}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	router := httptransport.NewRouter(httptransport.NewHandler(decisions, checks, log))
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "error", err)
			stop()
		}
	}()

	log.Info("sedrouting started",
		"addr", cfg.Addr,
		"topics", []string{cfg.Kafka.TopicReceived, cfg.Kafka.TopicSent},
		"group", cfg.Kafka.Group,
	)

	if err := kafkaConsumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	kafkaConsumer.Close()
	if redisClient != nil {
		redisClient.Close()
	}
	if db != nil {
		db.Close()
	}
}
