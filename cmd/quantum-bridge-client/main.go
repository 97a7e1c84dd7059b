package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"golang.org/x/sync/errgroup"

	clientconfig "github.com/quantumauth-io/quantum-bridge-client/cmd/quantum-bridge-client/config"
	"github.com/quantumauth-io/quantum-bridge-client/internal/constants"
	clienthttp "github.com/quantumauth-io/quantum-bridge-client/internal/http"
	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
	"github.com/quantumauth-io/quantum-bridge-client/internal/navigator"
	"github.com/quantumauth-io/quantum-bridge-client/internal/session"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	log.Info(constants.AppName,
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(constants.DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error("failed to load .env", "error", err)
	}

	cfg, err := clientconfig.Load()
	if err != nil {
		log.Fatal("failed to parse config", "error", err)
	}
	if err = cfg.ApplyEnv(); err != nil {
		log.Fatal("invalid environment overrides", "error", err)
	}
	if err = cfg.Normalize(); err != nil {
		log.Fatal("invalid config", "error", err)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		log.Fatal("invalid bridge tables", "error", err)
	}

	nav, err := navigator.NewURLNavigator(cfg.ClientSettings.StepOneURL)
	if err != nil {
		log.Fatal("invalid step one url", "error", err)
	}

	metrics.Register()

	evm, coinset := wallet.NewEVMProvider(), wallet.NewCoinsetProvider()
	sessions := session.NewManager(cat, evm, coinset)
	defer sessions.Shutdown()

	handler := clienthttp.NewServer(sessions, nav, evm, coinset, cfg.ClientSettings.UIAllowedOrigins)

	addr := net.JoinHostPort(cfg.ClientSettings.LocalHost, cfg.ClientSettings.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "http server shutdown")
		}
		log.Info("HTTP server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
	}
}
