package main

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/saimerit/monopoly-game/app/controllers"
	"github.com/saimerit/monopoly-game/app/engine"
	"github.com/saimerit/monopoly-game/app/service"
	"github.com/saimerit/monopoly-game/pkg/routes"
	"github.com/saimerit/monopoly-game/platform/board"
	"github.com/saimerit/monopoly-game/platform/cache"
	"github.com/saimerit/monopoly-game/platform/config"
	"github.com/saimerit/monopoly-game/platform/database"
	"github.com/saimerit/monopoly-game/platform/logging"
	"github.com/saimerit/monopoly-game/platform/queries"
	socket "github.com/saimerit/monopoly-game/platform/sockets"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	log := logging.For("main")

	pool := cache.CreateRedisPool(cfg.RedisURL)
	defer pool.Close()

	db := database.PostgreSQLConnection(cfg)
	defer db.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.CreateSchema(ctx, db); err != nil {
		log.WithError(err).Fatal("failed to prepare database")
	}
	cancel()

	eng := engine.New(board.MustLoad(), engine.WithAuctionWindow(cfg.AuctionWindow), engine.WithLogger(logging.For("engine")))
	svc := service.New(eng, cache.NewRedisStore(pool, cfg.StoreRetries), queries.NewRegistry(db))
	defer svc.Close()

	sockets, err := socket.NewServer(svc, cfg.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("failed to create socket server")
	}
	svc.SetBroadcaster(sockets)
	go func() {
		if err := sockets.Serve(cfg.SocketAddr, cfg.CORSOrigins); err != nil {
			log.WithError(err).Fatal("socket server stopped")
		}
	}()

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.CORSOrigins, ",")}))

	protected := routes.Protected(cfg.JWTSecret)
	routes.AuthRoutes(app, controllers.NewAuthController(cfg.JWTSecret), protected)
	routes.GameRoutes(app, controllers.NewGameController(svc), protected)

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
