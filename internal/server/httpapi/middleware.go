package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestLogger tags every request with a generated id and logs the
// method, path, status, and duration once the handler chain finishes.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("X-Request-Id", requestID)

	err := c.Next()

	s.logger.Info(c.UserContext(), "request",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)

	return err
}
