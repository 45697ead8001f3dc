package service

import (
	"context"
	"testing"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/config"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:            "test_secret",
		JWTExpirationMinutes: 30,
	}
	users := memory.NewUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}))
	return NewAuthService(users, cfg), cfg
}

func TestLoginIssuesSignedToken(t *testing.T) {
	svc, cfg := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp.Time, time.Minute)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})
	require.EqualError(t, err, "Incorrect username or password")

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "admin"})
	require.EqualError(t, err, "Incorrect username or password")
}

func TestGetUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.GetUser(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
	assert.False(t, user.Disabled)

	_, err = svc.GetUser(context.Background(), "ghost")
	assert.Error(t, err)
}
