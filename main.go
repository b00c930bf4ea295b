package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/soar/padmap/internal/config"
	"github.com/soar/padmap/internal/hub"
	"github.com/soar/padmap/internal/input"
	"github.com/soar/padmap/internal/poller"
	"github.com/soar/padmap/internal/sdlinput"
	"github.com/soar/padmap/internal/server"
	"github.com/soar/padmap/internal/tray"
)

// Cross-platform signal handling: os.Interrupt covers Ctrl+C on
// Windows and SIGINT on Unix.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	configPath := pflag.String("config", "", "configuration file path")
	listen := pflag.String("listen", "", "listen address (overrides config)")
	mappingsPath := pflag.String("mappings", "", "mapping definition path (overrides config)")
	platformName := pflag.String("platform", "", "mapping platform: windows, linux or macos (overrides config)")
	pflag.Parse()

	boot, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal("failed to load config", zap.Error(err))
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *mappingsPath != "" {
		cfg.Mappings = *mappingsPath
	}
	if *platformName != "" {
		cfg.Platform = *platformName
	}

	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = lvl
	} else {
		boot.Warn("unknown log level, using info", zap.String("log_level", cfg.LogLevel))
	}
	logger, err := zcfg.Build()
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	// Resolve the mapping platform: explicit configuration wins,
	// otherwise the running OS.
	var platform input.Platform
	if cfg.Platform != "" {
		p, ok := input.PlatformByName(cfg.Platform)
		if !ok {
			logger.Fatal("unknown platform", zap.String("platform", cfg.Platform))
		}
		platform = p
	} else {
		p, ok := input.PlatformForGOOS(runtime.GOOS)
		if !ok {
			logger.Warn("unsupported OS, using linux mapping columns", zap.String("goos", runtime.GOOS))
		}
		platform = p
	}

	// Load the mapping tables: an external definition if configured,
	// the embedded default otherwise. A malformed definition is fatal
	// here; nothing may run on a half-built table.
	var tables *input.TableSet
	if cfg.Mappings != "" {
		tables, err = input.LoadDefinition(cfg.Mappings)
	} else {
		tables, err = input.ParseDefinition(bytes.NewReader(defaultMappings))
	}
	if err != nil {
		logger.Fatal("failed to load mapping definition", zap.Error(err))
	}

	pins, err := cfg.SlotPins()
	if err != nil {
		logger.Fatal("invalid slot pins", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := sdlinput.New(logger.Named("sdl"), pins)
	engine := input.NewEngine(tables, platform, backend)
	p := poller.New(engine, backend, logger.Named("poller"))

	h := hub.NewHub(logger.Named("hub"))
	go h.Run()

	broadcaster := hub.NewBroadcaster(h, p.Changes(), logger.Named("broadcast"))
	go broadcaster.Run()

	srv := server.New(h, broadcaster, p, cfg.Listen, logger.Named("http"))
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	// Reload the tables when the external definition is edited. A
	// failed reload keeps the previously installed tables.
	if cfg.Mappings != "" {
		err := config.WatchFile(ctx, cfg.Mappings, logger.Named("watch"), func() {
			ts, err := input.LoadDefinition(cfg.Mappings)
			if err != nil {
				logger.Warn("mapping reload failed, keeping previous tables", zap.Error(err))
				return
			}
			engine.SetTables(ts)
			logger.Info("mapping tables reloaded", zap.String("path", cfg.Mappings))
		})
		if err != nil {
			logger.Warn("cannot watch mapping definition", zap.Error(err))
		}
	}

	logger.Info("padmap started",
		zap.String("listen", cfg.Listen),
		zap.Stringer("platform", platform))

	shutdownRequested := make(chan struct{})
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(viewerURL(cfg.Listen), logger.Named("tray"), func() {
				close(shutdownRequested)
			})
			t.Run()
		}()
	}

	// Signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	pollerDone := make(chan struct{})
	pollerErrCh := make(chan error, 1)
	go func() {
		if err := p.Run(ctx); err != nil {
			pollerErrCh <- err
		}
		close(pollerDone)
	}()

	select {
	case <-sigCh:
		logger.Info("shutting down")
		cancel()
	case <-shutdownRequested:
		logger.Info("shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		logger.Error("HTTP server error", zap.Error(err))
		cancel()
	case err := <-pollerErrCh:
		logger.Error("poller error", zap.Error(err))
		cancel()
	}

	<-pollerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("padmap stopped")
}

// viewerURL derives a browsable URL from the listen address.
func viewerURL(listen string) string {
	if strings.HasPrefix(listen, ":") {
		return "http://localhost" + listen
	}
	return "http://" + listen
}
