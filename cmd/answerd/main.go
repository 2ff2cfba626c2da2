package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/condense"
	"github.com/websage/answerd/pkg/config"
	"github.com/websage/answerd/pkg/httpapi"
	"github.com/websage/answerd/pkg/llm"
	"github.com/websage/answerd/pkg/mcpapi"
	"github.com/websage/answerd/pkg/rag"
	"github.com/websage/answerd/pkg/scrape"
	"github.com/websage/answerd/pkg/search"
)

// Version is filled at build time with the -X linker flag.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	listen := flag.String("listen", "", "listen address override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "answerd: %v\n", err)
		os.Exit(1)
	}
	cfg = cfg.ApplyEnv()
	if *listen != "" {
		cfg.Listen = *listen
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "answerd: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := llm.NewRegistry(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build provider registry")
	}

	searchRouter := search.NewRouter(cfg.Search, log)
	fetcher := scrape.NewFetcher(cfg.Scrape, log)
	condenser := condense.New(cfg.Condense, log)
	pipeline := rag.NewPipeline(cfg.RAG, searchRouter, fetcher, condenser, registry, log)
	mcpServer := mcpapi.NewServer(pipeline, searchRouter, Version)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	httpapi.SetupRouter(engine, pipeline, mcpapi.Handler(mcpServer), log)

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("listen", cfg.Listen).Str("version", Version).Msg("answerd started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout)
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
