package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon_zero/broker"
	"carbon_zero/cache"
	"carbon_zero/config"
	"carbon_zero/database"
	"carbon_zero/handler"
	"carbon_zero/helper"
	"carbon_zero/realtime"
	"carbon_zero/router"
	"carbon_zero/scheduler"
	"carbon_zero/service"
	"carbon_zero/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: cfg.CorsOrigins != "*",
		MaxAge:           600,
	}))

	database.ConnectDB(cfg)

	var deps service.Deps
	mailer := utils.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	if mailer.Enabled() {
		deps.Mailer = mailer
	}

	var hub *realtime.Hub
	rdb, err := cache.NewRedis(context.Background(), cfg)
	if err != nil {
		log.Printf("Redis disabled: %v", err)
	} else if rdb != nil {
		defer rdb.Close()
		hub = realtime.NewHub(rdb)
		deps.Notifier = hub
		deps.Cache = cache.NewCarbonTotals(rdb)
	}

	if cfg.RabbitURL != "" {
		publisher, err := broker.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("RabbitMQ disabled: %v", err)
		} else {
			defer publisher.Close()
			deps.Publisher = publisher
		}
	}

	cld, err := helper.InitCloudinary(cfg)
	if err != nil {
		log.Printf("Cloudinary disabled: %v", err)
	} else if cld != nil {
		deps.Uploader = helper.CertificateUploader{Cld: cld}
	}

	services := service.New(database.DB, deps)
	handler.Init(services, hub, cfg)

	if cfg.EnableJobs {
		jobs, err := scheduler.Start(database.DB, services.Bookings, time.Local)
		if err != nil {
			log.Fatal(err)
		}
		defer jobs.Stop()
	}

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
