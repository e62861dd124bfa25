package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/history"
	"github.com/goodnatureofminers/auction-history/internal/bootstrap"
	"github.com/goodnatureofminers/auction-history/internal/metrics"
	"github.com/goodnatureofminers/auction-history/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var config struct {
	Addr           string        `long:"addr" env:"AUCTION_HISTORY_ADDR" description:"http listen addr" default:":8001"`
	SessionIdleTTL time.Duration `long:"session-idle-ttl" env:"AUCTION_HISTORY_SESSION_IDLE_TTL" description:"idle time after which an open session is released" default:"30m"`

	Walker bootstrap.WalkerOptions `group:"Walker"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	walker, client, err := bootstrap.NewWalker(config.Walker, logger)
	if err != nil {
		logger.Fatal("Failed to init walker", zap.Error(err))
	}

	registry, err := history.NewRegistry(walker, metrics.NewSessionRegistry(config.Walker.Network), config.SessionIdleTTL, logger)
	if err != nil {
		logger.Fatal("Failed to init session registry", zap.Error(err))
	}
	registry.Start()
	defer registry.Stop()
	metrics.RegisterOpenSessions(config.Walker.Network, registry.Len)

	mux := http.NewServeMux()
	transport.NewHistoryHandler(registry, client, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
