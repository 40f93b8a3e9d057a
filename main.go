package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"coursehub_backend/internals/configs"
	database "coursehub_backend/internals/databases"
	cache "coursehub_backend/internals/helpers/cache"
	"coursehub_backend/internals/middlewares"
	"coursehub_backend/internals/route"
	"coursehub_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnv("AUTO_MIGRATE", "true") == "true" {
		database.MigrateAll()
	}
	if configs.GetEnv("SEED_ON_BOOT", "false") == "true" {
		seeds.Run(database.DB)
	}

	redisCache := cache.New(configs.RedisAddr, configs.RedisPassword)

	app := fiber.New(fiber.Config{
		AppName:     "CourseHub Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// file upload (cover blog dsb) disajikan statik
	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
	app.Static("/uploads", uploadDir)

	route.SetupRoutes(app, database.DB, redisCache)

	// graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutdown signal diterima, menutup server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown err: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 CourseHub backend listen di :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}
}
