package users

import (
	"context"

	"github.com/dpetrovs/registro/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
