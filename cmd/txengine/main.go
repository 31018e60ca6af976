package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/txengine/internal/adapter/ingest"
	"github.com/simaogato/txengine/internal/adapter/metrics"
	"github.com/simaogato/txengine/internal/adapter/render"
	"github.com/simaogato/txengine/internal/adapter/repository/memory"
	"github.com/simaogato/txengine/internal/config"
	"github.com/simaogato/txengine/internal/logging"
	"github.com/simaogato/txengine/internal/usecase/processor"
	"github.com/simaogato/txengine/internal/usecase/report"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(1)
	}

	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// 2. Process the whole stream, then report
	err = run(ctx, os.Args[1], os.Stdout, cfg, logger)
	stop()
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run processes every event in inputPath and writes the account listing to out.
// Nothing is written to out unless the entire input was consumed successfully.
func run(ctx context.Context, inputPath string, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	renderer, err := render.New(cfg.ReportFormat)
	if err != nil {
		return err
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	// Initialize tables and the processor that owns them
	accountRepo := memory.NewAccountRepository()
	depositRepo := memory.NewDepositRepository()
	recorder := metrics.NewRecorder()

	txProcessor := processor.NewProcessor(accountRepo, depositRepo,
		processor.WithLogger(logger),
		processor.WithRecorder(recorder),
		processor.WithStrictTransactionIDs(cfg.StrictTransactionIDs),
	)

	start := time.Now()
	processed, err := txProcessor.Run(ctx, ingest.NewCSVReader(bufio.NewReader(file)))
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", inputPath, err)
	}

	reportService := report.NewReportService(accountRepo)
	totals := reportService.Totals()
	recorder.ObserveLedger(totals, depositRepo.Len())

	if cfg.MetricsFile != "" {
		if err := recorder.WriteToTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(out)
	if err := renderer.Render(w, reportService.Accounts()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("run complete",
		zap.Int("events", processed),
		zap.Int("clients", totals.Clients),
		zap.Int("locked", totals.Locked),
		zap.Stringer("total", totals.Total),
		zap.Int("deposits_retained", depositRepo.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
