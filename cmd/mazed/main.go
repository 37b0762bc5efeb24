// Command mazed serves mazes over HTTP and streams live generation over
// WebSocket. Settings come from MAZE_* environment variables or a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		l := logging.New(os.Stderr, "info")
		l.Fatal().Err(err).Msg("mazed failed")
	}
}

// run loads the configuration and serves until ctx is cancelled.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mazed", flag.ContinueOnError)
	envfile := fs.String("env", ".env", "optional dotenv file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envfile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.New(stdout, cfg.LogLevel)

	return server.New(cfg, logger).Run(ctx)
}
