package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"majesty-server/internal/engine"
	"majesty-server/internal/server"
	"majesty-server/internal/version"
	"majesty-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Deck seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Majesty...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}
	// Флаг важнее окружения
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit deck seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using deck seed: %d", cfg.Seed)
	}

	// 2. Инициализация ядра
	service, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Service init error:", err)
	}
	service.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(service, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}
