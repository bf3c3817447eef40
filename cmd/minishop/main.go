package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/internal/admin"
	"MiniShop/internal/config"
	"MiniShop/internal/platform"
	"MiniShop/pkg/kit"
)

const service = "minishop"

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}

// run wires the session and optional admin listener and returns the exit code.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "logger: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()

	s := platform.NewSession(stdout)
	s.Log = log
	s.Metrics = platform.NewMetrics(reg)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	if cfg.AdminAddr != "" {
		h := admin.NewHandler(
			admin.Deps{Catalog: s.Catalog, Orders: s.Orders},
			admin.HTTPDeps{
				Log:            log,
				Registry:       reg,
				MetricsEnabled: cfg.MetricsEnabled,
				MetricsToken:   cfg.MetricsToken,
			},
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := kit.RunHTTPServer(ctx, cfg.AdminAddr, h, log); err != nil {
				log.Error("admin server stopped", zap.Error(err))
			}
		}()
	}

	err = s.Run(ctx, stdin)
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("session failed", zap.Error(err))
		return 1
	}
	return 0
}
