// Package httpapi exposes the registry over HTTP/JSON using fiber.
// Three routes: list, create, delete. Everything else is middleware.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dpetrovs/registro/internal/logging"
	"github.com/dpetrovs/registro/internal/server/models"
)

// UserService is the business-logic surface the HTTP layer depends on.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, name string, age int, email string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	address string
	users   UserService
	logger  logging.Logger
}

func NewServer(address string, logger logging.Logger, users UserService) *Server {
	return &Server{
		address: address,
		logger:  logger.With("module", "httpapi"),
		users:   users,
	}
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(s.requestLogger)

	app.Get("/users", s.handleListUsers)
	app.Post("/users", s.handleCreateUser)
	app.Delete("/users/:id", s.handleDeleteUser)

	return app
}

// Run serves until ctx is cancelled, then shuts the listener down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return app.Listen(s.address)
}
