package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-checkin/internal/auth"
	autherrors "go-checkin/internal/auth/errors"
	authMock "go-checkin/internal/auth/mock"
	"go-checkin/internal/domain"
	"go-checkin/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	service := auth.NewService(mockRepo, testSecret, 12*time.Hour, auth.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	mockUser := &auth.User{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: string(pw),
		Role:     domain.RoleEmployee,
		IsActive: true,
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		resp, err := service.Login(ctx, mockUser.Email, password)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, now.Add(12*time.Hour).Unix(), resp.ExpiresAt)
		assert.Equal(t, domain.Identity{ID: "ana@example.com", Name: "Ana", Role: "EMPLOYEE"}, resp.Identity)

		identity, err := service.Verify(ctx, resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.Identity, identity)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Inactive User", func(t *testing.T) {
		inactive := *mockUser
		inactive.IsActive = false
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(&inactive, nil)

		_, err := service.Login(ctx, mockUser.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Store Down", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(nil, errors.New("connection reset by peer"))

		_, err := service.Login(ctx, mockUser.Email, password)
		assert.ErrorIs(t, err, apperror.ErrUpstreamUnavailable)
	})
}

func TestService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuedAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	sign := func(secret string, method jwt.SigningMethod, claims auth.Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	validClaims := auth.Claims{
		Role: domain.RoleHR,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "hr@example.com",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}

	clock := issuedAt
	service := auth.NewService(authMock.NewMockRepository(ctrl), testSecret, time.Hour, auth.WithClock(func() time.Time { return clock }))

	t.Run("valid", func(t *testing.T) {
		identity, err := service.Verify(context.Background(), sign(testSecret, jwt.SigningMethodHS256, validClaims))
		require.NoError(t, err)
		assert.Equal(t, "hr@example.com", identity.ID)
		assert.Equal(t, domain.RoleHR, identity.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := service.Verify(context.Background(), sign("other-secret", jwt.SigningMethodHS256, validClaims))
		assert.ErrorIs(t, err, autherrors.ErrAuthInvalid)
	})

	t.Run("other algorithm", func(t *testing.T) {
		_, err := service.Verify(context.Background(), sign(testSecret, jwt.SigningMethodHS512, validClaims))
		assert.ErrorIs(t, err, autherrors.ErrAuthInvalid)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims
		claims.Subject = ""
		_, err := service.Verify(context.Background(), sign(testSecret, jwt.SigningMethodHS256, claims))
		assert.ErrorIs(t, err, autherrors.ErrAuthInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.Verify(context.Background(), "not-a-jwt")
		assert.Equal(t, 401, apperror.ToHTTP(err).Status)
	})

	t.Run("expired", func(t *testing.T) {
		clock = issuedAt.Add(2 * time.Hour)
		defer func() { clock = issuedAt }()

		_, err := service.Verify(context.Background(), sign(testSecret, jwt.SigningMethodHS256, validClaims))
		assert.ErrorIs(t, err, autherrors.ErrAuthInvalid)
	})
}
