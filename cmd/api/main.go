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

	"go.uber.org/zap"

	"github.com/pennantrace/sandlot/internal/app"
	"github.com/pennantrace/sandlot/internal/config"
	"github.com/pennantrace/sandlot/internal/observability"
	"github.com/pennantrace/sandlot/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zlog := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = zlog.Sync() }()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.SlogLevel(cfg.LogLevel),
	}))

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		zlog.Fatal("init uptrace", zap.Error(err))
	}

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		zlog.Fatal("init pyroscope", zap.Error(err))
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		zlog.Fatal("start pprof server", zap.Error(err))
	}

	srv, cleanup, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		zlog.Fatal("build app", zap.Error(err))
	}

	go func() {
		zlog.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("http server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
	cleanup()

	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		zlog.Error("stop pprof server", zap.Error(err))
	}
	if err := stopProfiler(); err != nil {
		zlog.Error("stop profiler", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		zlog.Error("shutdown tracing", zap.Error(err))
	}

	zlog.Info("http server stopped")
}
