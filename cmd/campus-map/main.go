package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-map/common/logger"
	"campus-map/internal/config"
	"campus-map/internal/service"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting campus-map", zap.Strings("scenarios", cfg.Campus.Scenarios))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.NewCampusService(cfg, log, os.Stdout)
	if err := svc.Run(ctx); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("Campus walk-through error", zap.Error(e))
		}
		log.Sync()
		os.Exit(1)
	}

	log.Info("Campus walk-through complete")
}
