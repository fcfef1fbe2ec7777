package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldops/cmd"
	"fieldops/internal/pkg/logger"

	"github.com/sethvargo/go-envconfig"
)

func main() {
	if err := run(); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure writes err to the log and to w. The log is disabled when run
// failed before the logger was initialized, so w always gets a copy.
func reportFailure(w io.Writer, err error) {
	log := logger.Get()
	log.Error().Err(err).Msg("fieldops stopped")
	_, _ = fmt.Fprintln(w, "fieldops:", err)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.LoadDotEnv(".env"); err != nil {
		return err
	}
	config, err := cmd.LoadConfig(ctx, envconfig.OsLookuper())
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   config.LogLevel,
		Pretty:  config.LogPretty,
		Service: "fieldops",
	})

	db, err := cmd.OpenDatabase(ctx, config, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	app := cmd.NewCompositionRoot(config, db)
	e, err := app.CreateRouter(log)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", config.HTTPPort).Str("env", config.Env).Msg("http server listening")
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
