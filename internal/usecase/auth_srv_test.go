package usecase

import (
	"context"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"
	"lounge-booking/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	repository.UserRepository
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func newAuthService(users *fakeUserRepo) AuthService {
	repo := &repository.Repository{User: users}
	return NewAuthService(repo, token.NewManager("test-secret", 1), zap.NewNop())
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("stores email lowercased", func(t *testing.T) {
		users := &fakeUserRepo{}
		svc := newAuthService(users)

		resp, err := svc.Register(context.Background(), &request.RegisterRequest{
			Name:     "Alice",
			Email:    "Alice@Example.COM",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.Len(t, users.users, 1)
		assert.Equal(t, "alice@example.com", users.users[0].Email)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("rejects case variant of registered email", func(t *testing.T) {
		users := &fakeUserRepo{}
		svc := newAuthService(users)

		_, err := svc.Register(context.Background(), &request.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), &request.RegisterRequest{
			Name:     "Alice Again",
			Email:    "ALICE@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrConflict)
		assert.Len(t, users.users, 1)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("accepts case variant of email", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "Bob@Example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "bob@example.com", resp.User.Email)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "bob@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		users.users[0].IsActive = false
		defer func() { users.users[0].IsActive = true }()

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "bob@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrInactiveAccount)
	})
}

func TestAuthServiceRegisterTrimsEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Carol",
		Email:    "  Carol@Example.com  ",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.Len(t, users.users, 1)
	assert.Equal(t, "carol@example.com", users.users[0].Email)
}
