package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kprsnt/brandscore/internal/adapter/cli"
	"github.com/kprsnt/brandscore/internal/adapter/httpapi"
	"github.com/kprsnt/brandscore/internal/adapter/llm"
	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/kprsnt/brandscore/internal/adapter/observability"
	"github.com/kprsnt/brandscore/internal/cache"
	"github.com/kprsnt/brandscore/internal/config"
	"github.com/kprsnt/brandscore/internal/ratelimit"
	"github.com/kprsnt/brandscore/internal/usecase/check"
	"github.com/kprsnt/brandscore/internal/version"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return
		}
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	loaded, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "brandscore",
		EnvPrefix:   "BRANDSCORE",
	})
	if err != nil {
		return err
	}
	cfg := &loaded

	logger := observability.NewLoggerFromConfig(cfg.Observability.Logging)

	var (
		metrics        llmhttp.Metrics
		metricsHandler http.Handler
	)
	if cfg.Observability.Metrics.Enabled {
		prom := observability.NewPrometheusMetrics()
		metrics = prom
		metricsHandler = prom.Handler()
	} else {
		metrics = llmhttp.NewDefaultMetrics()
	}

	providers := llm.BuildProviders(cfg, logger, metrics)

	orchestratorOpts := []check.Option{
		check.WithTimeout(cfg.Server.QueryTimeoutDuration()),
	}
	if logger != nil {
		orchestratorOpts = append(orchestratorOpts, check.WithLogger(logger))
	}
	orchestrator := check.NewOrchestrator(providers, orchestratorOpts...)
	service := check.NewService(orchestrator)

	limiter := ratelimit.New(
		cache.New[ratelimit.State](cfg.RateLimit.MaxClients, cfg.RateLimit.WindowDuration()),
		cfg.RateLimit.Requests,
		cfg.RateLimit.WindowDuration(),
	)

	var results *cache.Cache[check.Result]
	if cfg.Cache.Enabled {
		results = cache.New[check.Result](cfg.Cache.MaxSize, cfg.Cache.TTLDuration())
	}

	providerStatus := make(map[string]bool, len(cfg.Providers))
	for name, providerCfg := range cfg.Providers {
		if name == "static" {
			if providerCfg.Enabled {
				providerStatus[name] = true
			}
			continue
		}
		providerStatus[name] = providerCfg.Configured()
	}

	server := httpapi.NewServer(httpapi.Options{
		Config:         cfg,
		Service:        service,
		Limiter:        limiter,
		Results:        results,
		ProviderStatus: providerStatus,
		Logger:         logger,
		MetricsHandler: metricsHandler,
	})

	root := cli.NewRootCommand(cli.Dependencies{
		Checker:   service,
		RunServer: server.Run,
		Version:   version.Version,
	})

	return root.ExecuteContext(ctx)
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home+"/.config/brandscore")
	}
	return paths
}
