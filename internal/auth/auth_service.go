package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-checkin/internal/auth/errors"
	"go-checkin/internal/domain"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTypeBearer = "Bearer"

// Claims carried by an access token. Subject is the identity punches are
// recorded under.
type Claims struct {
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Verify(ctx context.Context, credential string) (domain.Identity, error)
}

type service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

type ServiceOption func(*service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, secret string, ttl time.Duration, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: zap.L().Named("auth.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	// 1. Ambil user
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("login user lookup failed", zap.Error(err))
		return LoginResponse{}, apperror.Upstream(err)
	}
	if !user.IsActive {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	identity := domain.Identity{ID: user.Email, Name: user.Name, Role: user.Role}

	// 3. Generate token
	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(identity, expiresAt)
	if err != nil {
		log.Error("sign access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt.Unix(),
		Identity:    identity,
	}, nil
}

// Verify checks signature and expiry only; it does not hit the user store.
func (s *service) Verify(ctx context.Context, credential string) (domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		contextutil.GetLogger(ctx, s.logger).Debug("credential rejected", zap.Error(err))
		return domain.Identity{}, autherrors.ErrAuthInvalid
	}

	if strings.TrimSpace(claims.Subject) == "" || claims.Role == "" {
		return domain.Identity{}, autherrors.ErrAuthInvalid
	}

	return domain.Identity{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

func (s *service) generateToken(identity domain.Identity, expiresAt time.Time) (string, error) {
	claims := Claims{
		Role: identity.Role,
		Name: identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
