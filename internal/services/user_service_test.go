package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/queue/tasks"
	"github.com/comcode/blog-engine/internal/repository"
	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/security"
)

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if v := args.Get(0); v != nil {
		return v.(*asynq.TaskInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func newUserService(repo repository.UserRepository, queue TaskEnqueuer) UserService {
	auth := NewAuthService(repo, "test-secret", time.Hour)
	return NewUserService(repo, auth, queue)
}

func TestPrepareForWrite(t *testing.T) {
	t.Run("hashes raw password and fills defaults", func(t *testing.T) {
		u := &models.User{Password: "raw-secret"}
		require.NoError(t, prepareForWrite(u))
		require.True(t, security.IsHash(u.Password))
		require.Equal(t, models.ProviderLocal, u.Provider)
		require.Equal(t, models.RoleUser, u.Role)
	})

	t.Run("does not re-hash a stored hash", func(t *testing.T) {
		u := &models.User{Password: "raw-secret"}
		require.NoError(t, prepareForWrite(u))
		once := u.Password
		require.NoError(t, prepareForWrite(u))
		require.Equal(t, once, u.Password)
	})

	t.Run("keeps explicit provider and role", func(t *testing.T) {
		u := &models.User{Provider: models.ProviderGoogle, Role: models.RoleAdmin}
		require.NoError(t, prepareForWrite(u))
		require.Equal(t, models.ProviderGoogle, u.Provider)
		require.Equal(t, models.RoleAdmin, u.Role)
	})
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	queue := new(mockEnqueuer)
	repo.On("ExistsByEmail", mock.Anything, "ana@dev.io").Return(true, nil)

	svc := newUserService(repo, queue)
	_, err := svc.Signup(context.Background(), dto.UserDTO{Name: "Ana", Email: "ana@dev.io", Slug: "ana", Password: "secret-pw"})
	require.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	queue.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestSignupQueuesOneVerificationEmail(t *testing.T) {
	repo := new(mockUserRepo)
	queue := new(mockEnqueuer)

	repo.On("ExistsByEmail", mock.Anything, "ana@dev.io").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return security.IsHash(u.Password) && !u.Verified
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 7
	}).Return(nil)
	queue.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		if task.Type() != tasks.TypeVerificationEmail {
			return false
		}
		var p tasks.VerificationEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return false
		}
		return p.UserID == 7 && p.Email == "ana@dev.io" && p.Token != ""
	})).Return(nil, nil).Once()

	svc := newUserService(repo, queue)
	session, err := svc.Signup(context.Background(), dto.UserDTO{Name: "Ana", Email: "ana@dev.io", Slug: "ana", Password: "secret-pw"})
	require.NoError(t, err)
	require.Equal(t, "Bearer", session.TokenType)
	require.NotEmpty(t, session.AccessToken)
	require.Equal(t, []string{"user"}, session.Roles)
	queue.AssertExpectations(t)
	queue.AssertNumberOfCalls(t, "EnqueueContext", 1)
}

func TestSignupSurvivesQueueOutage(t *testing.T) {
	repo := new(mockUserRepo)
	queue := new(mockEnqueuer)

	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	queue.On("EnqueueContext", mock.Anything, mock.Anything).
		Return(nil, appErr.New(appErr.CodeUnavailable, "redis down"))

	svc := newUserService(repo, queue)
	session, err := svc.Signup(context.Background(), dto.UserDTO{Name: "Ana", Email: "ana@dev.io", Slug: "ana", Password: "secret-pw"})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
}

func TestUserSaveHashesPassword(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return security.IsHash(u.Password)
	})).Return(nil)

	svc := newUserService(repo, new(mockEnqueuer))
	out, err := svc.Save(context.Background(), dto.UserDTO{Name: "Ana", Email: "ana@dev.io", Slug: "ana", Password: "secret-pw"})
	require.NoError(t, err)
	require.Empty(t, out.Password)
	repo.AssertExpectations(t)
}

func TestUserPatchRehashesNewPassword(t *testing.T) {
	repo := new(mockUserRepo)
	stored, err := security.HashPassword("old-pass")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Name: "Ana", Email: "ana@dev.io", Password: stored, Provider: models.ProviderLocal, Role: models.RoleUser}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return security.IsHash(u.Password) && security.CheckPassword(u.Password, "new-pass")
	})).Return(nil)

	svc := newUserService(repo, new(mockEnqueuer))
	newPass := "new-pass"
	_, err = svc.Patch(context.Background(), 1, dto.UserPatch{Password: &newPass})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserSearchPredicate(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Page", mock.Anything, mock.MatchedBy(func(p *repository.Predicate) bool {
		return p != nil &&
			p.SQL == "(lower(unaccent(name)) LIKE ?) AND (email = ?)" &&
			len(p.Args) == 2
	}), mock.Anything).Return(&repository.PageResult[models.User]{Items: []*models.User{}, Page: 0, Size: 10}, nil)

	svc := newUserService(repo, new(mockEnqueuer))
	_, err := svc.Search(context.Background(), "João", "joao@dev.io", repository.DefaultPageable())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserSearchEmptyParamsMatchesAll(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Page", mock.Anything, (*repository.Predicate)(nil), mock.Anything).
		Return(&repository.PageResult[models.User]{Items: []*models.User{}, Page: 0, Size: 10}, nil)

	svc := newUserService(repo, new(mockEnqueuer))
	_, err := svc.Search(context.Background(), "", "", repository.DefaultPageable())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
