package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mansion-server/internal/agent"
	"mansion-server/internal/catalog"
	"mansion-server/internal/client"
	"mansion-server/pkg/logger"
	"mansion-server/pkg/mansion"
)

func init() {
	logger.Init()
}

// Бот-посетитель: подключается к серверу как обычный клиент и слоняется
// между выложенными товарами. Полезен для нагрузочных прогонов и чтобы
// пространство не выглядело пустым.
func main() {
	var (
		url  string
		name string
		feed string
	)
	flag.StringVar(&url, "url", "ws://localhost:3001/ws", "server websocket URL")
	flag.StringVar(&name, "name", "", "bot display name (default bot-<pid>)")
	flag.StringVar(&feed, "feed", "", "optional CSV deals feed; bot walks between placed products")
	flag.Parse()

	if name == "" {
		name = fmt.Sprintf("bot-%d", os.Getpid())
	}

	world := mansion.Build()

	// Если задан фид, бот ходит по позициям товаров; иначе — по всей карте.
	var targets []mansion.Point
	if feed != "" {
		deals, err := catalog.LoadFeedFile(feed)
		if err != nil {
			logger.Log.Fatal("Failed to load feed:", err)
		}
		placed := mansion.PlaceProducts(catalog.Items(deals))
		for _, p := range placed {
			targets = append(targets, mansion.Point{X: p.X, Y: p.Y})
		}
		logger.Log.Infof("Placed %d products from %d deals", len(placed), len(deals))
	}

	cl := client.New(url, client.Options{})
	bot := agent.New(name, cl, world, targets, time.Now().UnixNano())

	ctx, cancel := context.WithCancel(context.Background())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
	}()

	logger.Log.Infof("Bot %s heading to %s", name, url)
	bot.Run(ctx)
}
