package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/security"
)

func testUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)
	return &models.User{ID: 3, Email: "ana@dev.io", Password: hash, Role: models.RoleUser}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mockUserRepo)
	u := testUser(t)
	repo.On("GetByEmail", mock.Anything, "ana@dev.io").Return(u, nil)

	svc := NewAuthService(repo, "test-secret", time.Hour)
	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@dev.io", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, "ana@dev.io", session.Username)
	require.Equal(t, "Bearer", session.TokenType)
	require.EqualValues(t, 3600, session.ExpiresIn)

	claims, err := svc.ParseToken(session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uint(3), claims.UserID)
	require.Equal(t, "access", claims.Purpose)
	require.Equal(t, "ana@dev.io", claims.Subject)
}

func TestLoginFailsIdentically(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ana@dev.io").Return(testUser(t), nil)
	repo.On("GetByEmail", mock.Anything, "ghost@dev.io").
		Return(nil, appErr.New(appErr.CodeNotFound, "user not found"))

	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, badPass := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@dev.io", Password: "wrong"})
	_, badEmail := svc.Login(context.Background(), dto.LoginRequest{Email: "ghost@dev.io", Password: "wrong"})

	require.True(t, appErr.IsCode(badPass, appErr.CodeUnauthorized))
	require.True(t, appErr.IsCode(badEmail, appErr.CodeUnauthorized))
	require.Equal(t, badPass.Error(), badEmail.Error())
}

func TestVerifyEmailConsumesToken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("MarkVerified", mock.Anything, uint(3)).Return(nil)

	svc := NewAuthService(repo, "test-secret", time.Hour)
	token, err := svc.IssueVerificationToken(testUser(t))
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(context.Background(), token))
	repo.AssertExpectations(t)
}

func TestVerifyEmailRejectsAccessToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	session, err := svc.IssueAccessToken(testUser(t))
	require.NoError(t, err)

	err = svc.VerifyEmail(context.Background(), session.AccessToken)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
	repo.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), "test-secret", time.Hour)
	_, err := svc.ParseToken("not.a.token")
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewAuthService(new(mockUserRepo), "secret-a", time.Hour)
	verifier := NewAuthService(new(mockUserRepo), "secret-b", time.Hour)

	session, err := issuer.IssueAccessToken(testUser(t))
	require.NoError(t, err)

	_, err = verifier.ParseToken(session.AccessToken)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}
