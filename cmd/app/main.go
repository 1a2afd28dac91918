package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/safatanc/admin-console/injector"
	"github.com/safatanc/admin-console/internal/app/pkg"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"github.com/sirupsen/logrus"
)

func main() {
	config := infrastructures.LoadConfig()
	infrastructures.ConfigureLogger(config)

	app, err := injector.InitializeApplication(config)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Fiber configuration
	router := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: pkg.ErrorHandler,
	})

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        300,
	}))

	app.RegisterRoutes(router)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logrus.Info("shutting down")
		if err := router.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.Errorf("shutdown: %v", err)
		}
	}()

	if err := router.Listen(":" + config.APP_PORT); err != nil {
		logrus.Fatal(err)
	}
}
