package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/registro/internal/common"
	"github.com/dpetrovs/registro/internal/logging"
	"github.com/dpetrovs/registro/internal/server/models"
	"github.com/dpetrovs/registro/internal/server/repositories/users"
)

func newTestService(repo users.Repository) *UserService {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewUserService(repo, logger)
}

type fakeUsersRepo struct {
	listOut []models.User
	listErr error

	createOut *models.User
	createErr error

	deleteErr error

	createCalls int
	deleteCalls int
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	u.RegisteredAt = time.Now()
	return u, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.deleteErr
}

func TestList_ReturnsUsers(t *testing.T) {
	repo := &fakeUsersRepo{listOut: []models.User{
		{ID: 2, Name: "Bora Kim", Age: 27, Email: "bora@example.com"},
		{ID: 1, Name: "Ana Ruiz", Age: 30, Email: "ana@example.com"},
	}}
	s := newTestService(repo)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestList_StoreError_MapsToUnavailable(t *testing.T) {
	repo := &fakeUsersRepo{listErr: errors.New("connection refused")}
	s := newTestService(repo)

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestCreate_Success_ReturnsPopulatedRecord(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newTestService(repo)

	got, err := s.Create(context.Background(), "Ana Ruiz", 30, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Ana Ruiz", got.Name)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.False(t, got.RegisteredAt.IsZero())
}

func TestCreate_EmptyFields_RejectedBeforeStore(t *testing.T) {
	tests := []struct {
		name  string
		uname string
		email string
	}{
		{name: "empty name", uname: "", email: "ana@example.com"},
		{name: "blank name", uname: "   ", email: "ana@example.com"},
		{name: "empty email", uname: "Ana Ruiz", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUsersRepo{}
			s := newTestService(repo)

			_, err := s.Create(context.Background(), tt.uname, 30, tt.email)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Zero(t, repo.createCalls, "store must not be reached")
		})
	}
}

func TestCreate_AgeZero_IsPresentNotMissing(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newTestService(repo)

	got, err := s.Create(context.Background(), "Ana Ruiz", 0, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Age)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreate_DuplicateEmail_Passthrough(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrDuplicateEmail}
	s := newTestService(repo)

	_, err := s.Create(context.Background(), "Ana Ruiz", 30, "ana@example.com")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestCreate_StoreError_MapsToUnavailable(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	s := newTestService(repo)

	_, err := s.Create(context.Background(), "Ana Ruiz", 30, "ana@example.com")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDelete_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newTestService(repo)

	require.NoError(t, s.Delete(context.Background(), 1))
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDelete_NotFound_Passthrough(t *testing.T) {
	repo := &fakeUsersRepo{deleteErr: common.ErrNotFound}
	s := newTestService(repo)

	err := s.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_StoreError_MapsToUnavailable(t *testing.T) {
	repo := &fakeUsersRepo{deleteErr: errors.New("db down")}
	s := newTestService(repo)

	err := s.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

// memoryRepo is a tiny in-memory stand-in for the store that mimics its two
// contractual behaviors: the unique email constraint and monotonically
// increasing, never-reused ids.
type memoryRepo struct {
	nextID int64
	users  []models.User
}

func (m *memoryRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for i := len(m.users) - 1; i >= 0; i-- {
		out = append(out, m.users[i])
	}
	return out, nil
}

func (m *memoryRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.RegisteredAt = time.Now()
	m.users = append(m.users, *u)
	return u, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id int64) error {
	for i, existing := range m.users {
		if existing.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func TestScenario_CreateDuplicateDeleteDelete(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	s := newTestService(repo)

	// create A
	a, err := s.Create(ctx, "A", 20, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	// create B with the same email fails, list still has one record
	_, err = s.Create(ctx, "B", 21, "a@x.com")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// delete id=1 succeeds, list is empty
	require.NoError(t, s.Delete(ctx, 1))

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// second delete of the same id is NotFound, never a second success
	err = s.Delete(ctx, 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestScenario_OrderingIsDescending(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	s := newTestService(repo)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := s.Create(ctx, "U", 20, email)
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}
}
