package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/payment-engine/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := app.New()
	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Can't run payment engine")
		zap.L().Fatal("Can't run payment engine: ", zap.Error(err))
	}
}
