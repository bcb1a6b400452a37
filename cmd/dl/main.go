package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/preston-bernstein/nba-stats-dl/internal/config"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/runner"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_DL_RUN") == "1" {
		return
	}
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if err := config.LoadDotEnv(); err != nil {
		_, _ = fmt.Fprintf(stderr, "load .env: %v\n", err)
		return 2
	}
	cfg := config.Load()
	opts, err := config.ParseDLFlags(args, &cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nba-stats-dl",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(cfg, logger)
	err = r.Run(ctx, func(ctx context.Context) error {
		return r.DL(ctx, opts)
	})
	return runner.ExitCode(err, logger)
}
