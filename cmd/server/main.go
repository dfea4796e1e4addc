package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"mansion-server/internal/engine"
	"mansion-server/internal/server"
	"mansion-server/internal/version"
	"mansion-server/pkg/logger"
	"mansion-server/pkg/mansion"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var port string
	flag.StringVar(&port, "port", "", "listen port (default $MANSION_PORT or 3001)")
	flag.Parse()

	if port == "" {
		port = os.Getenv("MANSION_PORT")
	}
	if port == "" {
		port = "3001"
	}

	logger.Log.Info("Starting Mansion server...")
	logger.Log.Info(version.String())

	// 2. Инициализация ядра: карта строится один раз и дальше только читается
	world := mansion.Build()
	cfg := engine.NewConfig()

	gameService := engine.NewService(cfg, world)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()
	logger.Log.Info("Done.")
}
