package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/auth"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestUser(t *testing.T, id, email, password string, active bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		FirstName:    "Ana",
		LastName:     "Garcia",
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		Active:       active,
	}
}

func newTestAuthService(repo *fakeUserRepo) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(nil, repo, jwtService), jwtService
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"user-1": newTestUser(t, "user-1", "ana@example.com", "password123", true),
	}}
	svc, _ := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, string(user.RoleEmployee), resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"user-1": newTestUser(t, "user-1", "ana@example.com", "password123", true),
	}}
	svc, _ := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	svc, _ := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	// Same error as a wrong password, so accounts cannot be enumerated.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"user-1": newTestUser(t, "user-1", "ana@example.com", "password123", false),
	}}
	svc, _ := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestLogin_Validation(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	svc, _ := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	svc, jwtService := newTestAuthService(repo)

	token, _, err := jwtService.GenerateAccessToken("user-1", "ana@example.com", user.RoleEmployee)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.True(t, jwtService.IsTokenRevoked(token))

	assert.ErrorIs(t, svc.Logout(context.Background(), ""), auth.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"user-1": newTestUser(t, "user-1", "ana@example.com", "password123", true),
	}}
	svc, jwtService := newTestAuthService(repo)

	token, _, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "access",
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	resp, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "Ana", resp.FirstName)
}
