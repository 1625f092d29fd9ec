// cmd/zoo-intake/main.go
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"zoo-intake/internal/common/config"
	"zoo-intake/internal/common/logger"
	"zoo-intake/internal/intake"
)

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting zoo intake", map[string]interface{}{
		"namePool": cfg.Files.NamePool,
		"arrivals": cfg.Files.Arrivals,
		"report":   cfg.Files.Report,
	})

	pipeline := intake.New(cfg, log, os.Stdout)
	if _, err := pipeline.Run(context.Background()); err != nil {
		zapLog.Error("intake run failed", zap.Error(err))
		os.Exit(1)
	}
}
