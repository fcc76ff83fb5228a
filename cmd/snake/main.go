// Package main is the entry point for termsnake.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"

	"github.com/samdwyer/termsnake/internal/config"
	"github.com/samdwyer/termsnake/internal/game"
	"github.com/samdwyer/termsnake/internal/telemetry"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "termsnake must be run in an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// From here on the terminal belongs to the game, so logs go to a file or nowhere.
	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg.ApplyOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var tracer trace.Tracer = telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			tracer = telemetry.Tracer("game")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(game.Config{Seed: cfg.Seed, Tracer: tracer})
	if err != nil {
		log.WithError(err).Error("failed to initialize game")
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}
