package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"search-funnel/interfaces/api/handlers"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/interfaces/api/routes"
	websocketHandler "search-funnel/interfaces/api/websocket"
	"search-funnel/pkg/config"
	"search-funnel/pkg/di"
	"search-funnel/pkg/logger"
)

// @title Search Funnel API
// @version 1.0
// @description Content funnel: blogs, related searches, sponsored results, email capture and the admin console.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Dir, cfg.Log.Console); err != nil {
		fmt.Printf("Warning: Failed to initialize logger: %v\n", err)
	}
	logger.Startup("logger_init", "Logger initialized", map[string]interface{}{"dir": cfg.Log.Dir})

	// Initialize DI container
	container := di.NewContainer(cfg)
	if err := container.Initialize(); err != nil {
		logger.StartupError("container_init_failed", "Failed to initialize container", err, nil)
		os.Exit(1)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
	})

	// Setup middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(&cfg.App))

	// Create handlers from services
	h := handlers.NewHandlers(container.GetHandlerServices(), container.GetHandlerInfrastructure(), cfg)
	wsHandler := websocketHandler.NewWebSocketHandler(container.Hub)

	// Setup routes
	routes.SetupRoutes(app, h, wsHandler, cfg)

	setupGracefulShutdown(app, container)

	port := cfg.App.Port
	logger.Startup("server_starting", "Server starting", map[string]interface{}{
		"port":        port,
		"environment": cfg.App.Env,
		"site":        cfg.App.BaseURL,
		"health":      fmt.Sprintf("http://localhost:%s/health", port),
		"admin_api":   fmt.Sprintf("http://localhost:%s/api/v1/admin", port),
		"swagger":     fmt.Sprintf("http://localhost:%s/swagger/index.html", port),
		"docs":        fmt.Sprintf("http://localhost:%s/docs", port),
		"websocket":   fmt.Sprintf("ws://localhost:%s/ws/analytics", port),
	})

	if err := app.Listen(":" + port); err != nil {
		logger.StartupError("server_failed", "Server failed to start", err, nil)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Startup("shutdown_started", "Gracefully shutting down", nil)

		// Stop accepting requests before the tracking queue is drained
		if err := app.Shutdown(); err != nil {
			logger.StartupError("server_shutdown_failed", "Error stopping server", err, nil)
		}

		if err := container.Cleanup(); err != nil {
			logger.StartupError("cleanup_failed", "Error during cleanup", err, nil)
		}

		logger.Startup("shutdown_complete", "Shutdown complete", nil)
		logger.Close()
		os.Exit(0)
	}()
}
