// Package services contains server-side business logic. UserService owns the
// registry rules: field presence, error classification, and delegation to
// the users repository.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dpetrovs/registro/internal/common"
	"github.com/dpetrovs/registro/internal/logging"
	"github.com/dpetrovs/registro/internal/server/models"
	"github.com/dpetrovs/registro/internal/server/repositories/users"
)

// UserService is stateless: every call stands alone and all state lives in
// the store. Store errors never escape unclassified: each one maps to a
// sentinel from the common package before crossing the boundary.
type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger.With("module", "user_service"),
	}
}

// List returns all registry records, newest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing users failed", "error", err.Error())
		return nil, common.ErrUnavailable
	}
	return result, nil
}

// Create registers a user. Name and email must be non-empty; age only has
// to be present, which the transport layer guarantees before calling here
// (an age of 0 is present, not missing; the range check is the client's).
func (s *UserService) Create(ctx context.Context, name string, age int, email string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, common.ErrValidation
	}

	user := &models.User{Name: name, Age: age, Email: email}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		s.logger.Error(ctx, "creating user failed", "email", email, "error", err.Error())
		return nil, common.ErrUnavailable
	}

	s.logger.Info(ctx, "user registered", "id", created.ID, "email", created.Email)
	return created, nil
}

// Delete removes the record with the given id. A missing id is an error,
// not a silent success: deleting the same id twice reports ErrNotFound on
// the second call.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		s.logger.Error(ctx, "deleting user failed", "id", id, "error", err.Error())
		return common.ErrUnavailable
	}

	s.logger.Info(ctx, "user deleted", "id", id)
	return nil
}
