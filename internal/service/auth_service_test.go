package service

import (
	"context"
	"testing"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users []*entity.User
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byUsername, ok := spec.(specification.ByUsername); ok {
			for _, u := range r.users {
				if u.Username == byUsername.Username {
					return u, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestAuthService(t *testing.T, username, password string) IAuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	factory := &stubUowFactory{uow: &stubUnitOfWork{
		users: &fakeUserRepository{users: []*entity.User{
			{Id: uuid.New(), Username: username, PasswordHash: string(hash)},
		}},
	}}
	return NewAuthService(factory, 24, noopLogger{})
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, "admin", "secret123")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Username)
	assert.NotEmpty(t, res.Token)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "admin", "secret123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLoginUnknownUserSameError(t *testing.T) {
	svc := newTestAuthService(t, "admin", "secret123")

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	_, badPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	// Credential probing must not be able to tell the two cases apart.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, badPassErr)
}
