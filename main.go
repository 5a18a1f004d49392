package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"namur_backend/internals/configs"
	database "namur_backend/internals/databases"
	"namur_backend/internals/features/ads/scheduler"
	notificationService "namur_backend/internals/features/notifications/service"
	"namur_backend/internals/helpers/oss"
	"namur_backend/internals/middlewares"
	"namur_backend/internals/route"

	helper "namur_backend/internals/helpers"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	app := fiber.New(fiber.Config{
		AppName:      "Namur Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app)
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	push, err := notificationService.NewPushService(context.Background())
	if err != nil {
		log.Printf("[WARN] push notifications disabled: %v", err)
		push = &notificationService.PushService{}
	}

	stopSweeper := make(chan struct{})
	sweeper := scheduler.NewSweeper(database.DB, configs.AppTimezone, func(keys []string) map[string]error {
		return oss.DeleteManyENV(keys, 0)
	})
	go sweeper.Start(stopSweeper)

	route.SetupRoutes(app, database.DB, push)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[INFO] shutting down")
		close(stopSweeper)
		if err := app.Shutdown(); err != nil {
			log.Printf("[ERROR] shutdown: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("[INFO] listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[ERROR] server stopped: %v", err)
	}
}
