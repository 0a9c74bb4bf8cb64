package main

import (
	"context"
	_ "embed"
	"flag"
	"os"
	"strings"

	"xmrtdash/pkg/cache"
	"xmrtdash/pkg/config"
	"xmrtdash/pkg/log"
	"xmrtdash/pkg/orchestrator"
	"xmrtdash/pkg/probe"
	"xmrtdash/pkg/provider"
	"xmrtdash/pkg/server"
	"xmrtdash/pkg/status"
)

//go:embed VERSION
var Version string

func main() {
	// Initialize logger first
	_ = log.Logger

	configFile := flag.String("config", "", "Optional yaml config file path")
	webDir := flag.String("web", "web", "Web assets directory path")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		log.SetDebugMode()
	}

	if _, err := os.Stat(*webDir); os.IsNotExist(err) {
		log.Fatal().Str("web_dir", *webDir).Msg("Web directory does not exist")
	}

	ctx := context.Background()

	// Redis is optional: the dashboard runs without it and reports the
	// cache as disconnected.
	var pinger cache.Pinger
	redisCache, err := cache.Connect(ctx, cfg.RedisAddr())
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr()).Msg("Redis connection failed")
	} else {
		pinger = redisCache
		defer func() {
			if closeErr := redisCache.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("Failed to close Redis connection")
			}
		}()
	}

	backends := status.Backends{
		AgentAPIURL: cfg.AgentAPIURL,
		MeshAPIURL:  cfg.MeshAPIURL,
	}

	aggregator, err := status.New(ctx, backends, probe.New(0), pinger, provider.SystemClock{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build status aggregator")
	}

	orch := orchestrator.New(cfg.AgentAPIURL)

	dash := server.New(*webDir, strings.TrimSpace(Version), aggregator, orch, provider.SystemClock{})

	if err := dash.Start(cfg.ListenAddr()); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}
