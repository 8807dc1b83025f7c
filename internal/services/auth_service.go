package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/security"
)

const (
	purposeAccess = "access"
	purposeVerify = "email_verify"

	// verifyTokenTTL bounds how long an emailed verification link stays valid.
	verifyTokenTTL = time.Hour
)

// Claims is the JWT payload for both access and verification tokens; Purpose
// keeps the two from being interchangeable.
type Claims struct {
	UserID  uint   `json:"uid"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// AuthService issues and consumes tokens and authenticates credentials.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	IssueAccessToken(u *models.User) (dto.LoginResponse, error)
	IssueVerificationToken(u *models.User) (string, error)
	ParseToken(raw string) (*Claims, error)
	VerifyEmail(ctx context.Context, token string) error
}

type authService struct {
	users       repository.UserRepository
	secret      []byte
	tokenExpiry time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenExpiry time.Duration) AuthService {
	return &authService{users: users, secret: []byte(secret), tokenExpiry: tokenExpiry}
}

// Login authenticates email+password. Unknown email and wrong password fail
// identically so the response does not leak which one was wrong.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	var zero dto.LoginResponse
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return zero, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
		}
		return zero, err
	}
	if !security.CheckPassword(u.Password, req.Password) {
		return zero, appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}
	return s.IssueAccessToken(u)
}

func (s *authService) IssueAccessToken(u *models.User) (dto.LoginResponse, error) {
	raw, err := s.sign(u, purposeAccess, s.tokenExpiry)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{
		Username:    u.Email,
		Roles:       []string{string(u.Role)},
		AccessToken: raw,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenExpiry.Seconds()),
	}, nil
}

func (s *authService) IssueVerificationToken(u *models.User) (string, error) {
	return s.sign(u, purposeVerify, verifyTokenTTL)
}

func (s *authService) sign(u *models.User, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  u.ID,
		Role:    string(u.Role),
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token")
	}
	return raw, nil
}

// ParseToken validates signature and expiry and returns the claims.
func (s *authService) ParseToken(raw string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErr.Newf(appErr.CodeUnauthorized, "unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErr.Wrap(err, appErr.CodeUnauthorized, "invalid token")
	}
	return &claims, nil
}

// VerifyEmail consumes an emailed verification token and flips the account to
// verified. Access tokens are rejected here even though they share a secret.
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.ParseToken(token)
	if err != nil {
		return err
	}
	if claims.Purpose != purposeVerify {
		return appErr.New(appErr.CodeUnauthorized, "token is not a verification token")
	}
	return s.users.MarkVerified(ctx, claims.UserID)
}
