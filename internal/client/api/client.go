// Package api is the client's transport layer for the registry service.
// The Client interface keeps the CLI testable; the HTTP implementation maps
// wire-level outcomes onto the shared sentinel errors.
package api

import (
	"context"

	"github.com/dpetrovs/registro/internal/client/models"
)

type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, name string, age int, email string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
