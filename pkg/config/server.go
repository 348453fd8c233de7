// Package config assembles the two protocol surfaces of the RealTutor AI
// backend: the synchronous HTTP API and the WebSocket channel. They run as
// independent listeners and share nothing but the tutor service, whose
// response cache carries its own lock.
package config

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/api"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/config"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/tutor"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/ws"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server represents a RealTutor AI backend instance.
type Server struct {
	config *config.Config
	app    *fiber.App
	wsSrv  *ws.Server
}

// NewServer creates a new Server instance with the given configuration.
// The cfg parameter is required and must not be nil.
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		panic("config cannot be nil - use config.LoadFromFile() or config.Default() to create config")
	}
	return &Server{config: cfg}
}

// Run starts both surfaces and blocks until shutdown.
func (s *Server) Run() error {
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogLevel(s.config)

	tutorService, err := tutor.NewService(s.config)
	if err != nil {
		return err
	}

	s.app = createFiberApp(s.config)
	setupMiddleware(s.app, s.config)
	setupRoutes(s.app, s.config, tutorService)

	s.wsSrv = ws.NewServer(":"+s.config.Server.WebSocketPort, tutorService)

	httpAddr := ":" + s.config.Server.HTTPPort

	fmt.Printf("RealTutor AI backend starting\n")
	fmt.Printf("   HTTP:      http://localhost%s\n", httpAddr)
	fmt.Printf("   WebSocket: ws://localhost:%s\n", s.config.Server.WebSocketPort)
	fmt.Printf("   Go version: %s, GOMAXPROCS: %d\n", runtime.Version(), runtime.GOMAXPROCS(0))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	serverErrChan := make(chan error, 2)
	go func() {
		if err := s.app.Listen(httpAddr); err != nil {
			serverErrChan <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		if err := s.wsSrv.ListenAndServe(); err != nil {
			serverErrChan <- fmt.Errorf("websocket server: %w", err)
		}
	}()

	select {
	case sig := <-sigChan:
		fiberlog.Infof("Received signal: %v. Starting graceful shutdown...", sig)
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wsSrv.Shutdown(shutdownCtx); err != nil {
		fiberlog.Errorf("WebSocket shutdown error: %v", err)
	}
	if err := s.app.ShutdownWithTimeout(30 * time.Second); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	fiberlog.Info("Server shutdown completed successfully")
	return nil
}

func createFiberApp(cfg *config.Config) *fiber.App {
	isProd := cfg.IsProduction()

	return fiber.New(fiber.Config{
		AppName:           "RealTutor AI Backend v1.0",
		EnablePrintRoutes: !isProd,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       5 * time.Minute,
		CaseSensitive:     true,
		ServerHeader:      "RealTutorAI",
	})
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	isProd := cfg.IsProduction()

	// Recover middleware (must be first): a single bad request must never
	// take down the HTTP worker.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !isProd,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:               300,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if isProd {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency} ${bytesSent}b\n",
			Output: os.Stdout,
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
			Output: os.Stdout,
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
		MaxAge:       86400,
	}))
}

func setupRoutes(app *fiber.App, cfg *config.Config, tutorService *tutor.Service) {
	statusHandler := api.NewStatusHandler(cfg)
	tutorHandler := api.NewTutorHandler(tutorService)

	app.Get("/", statusHandler.Root)
	app.Get("/status", statusHandler.Status)
	app.Get("/health", statusHandler.Health)
	app.Post("/generate", tutorHandler.Generate)
	app.Post("/analyze", tutorHandler.Analyze)
}

func setupLogLevel(cfg *config.Config) {
	logLevel := cfg.GetNormalizedLogLevel()

	switch logLevel {
	case "trace":
		fiberlog.SetLevel(fiberlog.LevelTrace)
	case "debug":
		fiberlog.SetLevel(fiberlog.LevelDebug)
	case "info", "":
		fiberlog.SetLevel(fiberlog.LevelInfo)
	case "warn", "warning":
		fiberlog.SetLevel(fiberlog.LevelWarn)
	case "error":
		fiberlog.SetLevel(fiberlog.LevelError)
	default:
		fiberlog.SetLevel(fiberlog.LevelInfo)
		fiberlog.Warnf("Unknown log level '%s', defaulting to 'info'", logLevel)
	}
}
