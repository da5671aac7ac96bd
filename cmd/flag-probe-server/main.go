package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finflags/flag-probe/internal/config"
	"github.com/finflags/flag-probe/internal/rules"
	"github.com/finflags/flag-probe/internal/server"
	"github.com/finflags/flag-probe/pkg/constants"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	addrOverride := flag.String("addr", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}
	if *addrOverride != "" {
		cfg.Address = *addrOverride
	}

	logger, err := config.BuildLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	evaluator := rules.NewEvaluator(logger, cfg.Thresholds)
	handler := server.NewHandler(logger, evaluator, cfg.BodySizeBytes(), version)

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("addr", srv.Addr),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case <-shutdown:
		logger.Info("shutdown initiated",
			zap.String("op", "main"),
		)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
			_ = srv.Close()
		}
	}
}
