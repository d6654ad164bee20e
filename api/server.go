package api

import (
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CristiGvl/picoArch/internal/config"
	"github.com/CristiGvl/picoArch/internal/platform"
	"github.com/CristiGvl/picoArch/internal/settings"
	"github.com/CristiGvl/picoArch/internal/system"
)

// SettingsStore is the part of the settings store the API needs
type SettingsStore interface {
	Get(name string) string
	Set(name, value string) error
	Delete(name string) error
}

// Server represents the API server
type Server struct {
	app            *fiber.App
	systemReader   system.Reader
	settings       SettingsStore
	requestTimeout time.Duration
}

// NewServer creates a new API server backed by the native system reader and
// the settings backend selected in c
func NewServer(c config.ApiConfiguration, backend settings.Backend) *Server {
	return newServer(c, system.NewReader(), settings.New(backend))
}

func newServer(c config.ApiConfiguration, reader system.Reader, store SettingsStore) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           c.ReadTimeout,
		WriteTimeout:          c.WriteTimeout,
		IdleTimeout:           c.IdleTimeout,
		ServerHeader:          "picoArch",
		AppName:               "picoArch v1.0",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "${status} ${method} ${path} ${latency}\n",
		Output: accessLog{},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	server := &Server{
		app:            app,
		systemReader:   reader,
		settings:       store,
		requestTimeout: c.RequestTimeout,
	}
	if server.requestTimeout <= 0 {
		server.requestTimeout = 10 * time.Second
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// System information endpoints
	api.Get("/system", s.getSystem)

	// Settings endpoints
	api.Get("/settings/:name", s.getSetting)
	api.Put("/settings/:name", s.setSetting)
	api.Delete("/settings/:name", s.deleteSetting)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// accessLog hands fiber's access lines to the apex handler so they follow
// the configured log format.
type accessLog struct{}

func (accessLog) Write(p []byte) (int, error) {
	log.WithField("component", "api").Info(strings.TrimSpace(string(p)))
	return len(p), nil
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}

// errorHandler renders errors the same way the handlers do
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
