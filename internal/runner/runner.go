// Package runner wires configuration, telemetry and upstream clients into the batch jobs
// run by the command-line programs.
package runner

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-stats-dl/internal/config"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
	"github.com/preston-bernstein/nba-stats-dl/internal/retry"
)

var metricsSetup = metrics.Setup

// Runner owns the telemetry around one batch run.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a runner, setting up metrics export when enabled.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	return newWithMetrics(cfg, logger, nil)
}

func newWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Recorder exposes the metrics recorder shared by the run.
func (r *Runner) Recorder() *metrics.Recorder {
	return r.metrics
}

// Run executes job with the metrics endpoint up, then flushes telemetry. The job's context
// carries a logger tagged with a fresh run id. The job's error is returned unchanged.
func (r *Runner) Run(ctx context.Context, job func(context.Context) error) error {
	logger := r.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, uuid.NewString()))
	}
	ctx = logging.WithContext(ctx, logger)

	r.startMetrics(logger)
	start := time.Now()
	err := job(ctx)
	duration := slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds())
	if err != nil {
		logging.Error(logger, "run failed", err, duration)
	} else {
		logging.Info(logger, "run complete", duration)
	}
	r.shutdown(logger)
	return err
}

func (r *Runner) startMetrics(logger *slog.Logger) {
	if r.metricsServer == nil {
		return
	}
	launchServer("metrics", r.metricsServer, logger)
}

func (r *Runner) shutdown(logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}
	if r.metricsServer != nil {
		if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics server shutdown failed", "error", err)
		}
	}
}

// ExitCode maps a run result to a process exit status.
func ExitCode(err error, logger *slog.Logger) int {
	if err == nil {
		return 0
	}
	if rl, ok := retry.AsRetryLimitExceeded(err); ok {
		logging.Error(logger, "giving up on stats.nba.com", rl.Err,
			slog.String(logging.FieldOperation, rl.Operation),
			slog.Int(logging.FieldAttempt, rl.Attempts),
		)
	}
	return 1
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
				IdleTimeout:       idleTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
