// Package server builds the fiber application and runs it until shutdown.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/transport/http/middleware"
	handlers_fiber "github.com/username/vacation-hub/internal/transport/http/server/handlers-fiber"
)

// Server is the HTTP API server
type Server struct {
	app    *fiber.App
	cfg    config.ServerConfig
	logger *zap.Logger
}

// New creates the fiber app with middlewares and routes
func New(cfg *config.Config, svc handlers_fiber.Service, logger *zap.Logger) *Server {
	log := logger.Named("http")

	app := fiber.New(fiber.Config{
		AppName:               "vacation-hub",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.PasswordGate(cfg.Auth.LoginPassword, "/healthz"))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	handlers_fiber.NewHandler(log, svc).Register(app)

	return &Server{app: app, cfg: cfg.Server, logger: log}
}

// App exposes the fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.cfg.Addr()))
		errCh <- s.app.Listen(s.cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.cfg.GetShutdownTimeout()
	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		s.logger.Warn("server shutdown timeout", zap.Error(err))
		return err
	}
	return nil
}
