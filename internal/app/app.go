package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/payment-engine/internal/config"
	"github.com/GlebRadaev/payment-engine/internal/engine"
	"github.com/GlebRadaev/payment-engine/internal/ledger"
	"github.com/GlebRadaev/payment-engine/internal/processor"
	"github.com/GlebRadaev/payment-engine/internal/registry"
	"github.com/GlebRadaev/payment-engine/internal/report"
	"github.com/GlebRadaev/payment-engine/pkg/logger"
)

type Application struct {
	cfg *config.Config
	out io.Writer
}

func New() *Application {
	return &Application{out: os.Stdout}
}

// Run processes the configured transactions file end to end and writes the
// final account snapshot. The engine loop stops when ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	a.cfg = cfg

	if err := logger.Init(cfg.LogLvl); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	file, err := os.Open(cfg.FilePath)
	if err != nil {
		zap.L().Error("open transactions file failed: ", zap.Error(err))
		return fmt.Errorf("can't open transactions file: %w", err)
	}
	defer file.Close()

	accounts := ledger.New()
	operations := registry.New()
	eng := engine.New(processor.New(accounts, operations))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(ctx, file)
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("processing failed: ", zap.Error(err))
		return fmt.Errorf("can't process transactions: %w", err)
	}

	if err := report.Write(a.out, accounts.Snapshot()); err != nil {
		return fmt.Errorf("can't write account snapshot: %w", err)
	}

	zap.L().Info("all records processed", zap.String("file", cfg.FilePath))
	return nil
}
