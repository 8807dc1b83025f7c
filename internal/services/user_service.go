package services

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/queue/tasks"
	"github.com/comcode/blog-engine/internal/repository"
	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/logger"
	"github.com/comcode/blog-engine/pkg/security"
)

// TaskEnqueuer dispatches background tasks. *asynq.Client satisfies it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// UserService layers credential hygiene, signup and search on top of user
// CRUD. Every write path funnels through prepareForWrite so raw passwords
// never reach the repository.
type UserService interface {
	CrudService[models.User, dto.UserDTO, dto.UserPatch]
	Signup(ctx context.Context, d dto.UserDTO) (dto.LoginResponse, error)
	Search(ctx context.Context, name, email string, pageable repository.Pageable) (*Page[dto.UserDTO], error)
}

type userService struct {
	CrudService[models.User, dto.UserDTO, dto.UserPatch]
	repo   repository.UserRepository
	mapper mapper.UserMapper
	auth   AuthService
	queue  TaskEnqueuer
}

func NewUserService(repo repository.UserRepository, auth AuthService, queue TaskEnqueuer) UserService {
	m := mapper.NewUserMapper()
	return &userService{
		CrudService: NewCrudService[models.User, dto.UserDTO, dto.UserPatch](repo, m, "user"),
		repo:        repo,
		mapper:      m,
		auth:        auth,
		queue:       queue,
	}
}

// prepareForWrite hashes the password unless it already is a bcrypt hash and
// fills in provider/role defaults. Safe to call repeatedly.
func prepareForWrite(u *models.User) error {
	if u.Password != "" && !security.IsHash(u.Password) {
		hashed, err := security.HashPassword(u.Password)
		if err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "hash password")
		}
		u.Password = hashed
	}
	if u.Provider == "" {
		u.Provider = models.ProviderLocal
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	return nil
}

func (s *userService) Save(ctx context.Context, d dto.UserDTO) (dto.UserDTO, error) {
	var zero dto.UserDTO
	e := s.mapper.ToEntity(d)
	if err := prepareForWrite(e); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(e), nil
}

func (s *userService) SaveAll(ctx context.Context, ds []dto.UserDTO) ([]dto.UserDTO, error) {
	entities := mapper.MapSlice(ds, s.mapper.ToEntity)
	for _, e := range entities {
		if err := prepareForWrite(e); err != nil {
			return nil, err
		}
	}
	if err := s.repo.CreateAll(ctx, entities); err != nil {
		return nil, err
	}
	return mapper.MapSlice(entities, s.mapper.ToDTO), nil
}

func (s *userService) Update(ctx context.Context, id uint, d dto.UserDTO) (dto.UserDTO, error) {
	var zero dto.UserDTO
	e := s.mapper.ToEntity(d)
	e.ID = id
	if err := prepareForWrite(e); err != nil {
		return zero, err
	}
	err := s.repo.Transaction(ctx, func(r repository.Repository[models.User]) error {
		ok, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return appErr.NotFound("user", id)
		}
		return r.Save(ctx, e)
	})
	if err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(e), nil
}

func (s *userService) Patch(ctx context.Context, id uint, p dto.UserPatch) (dto.UserDTO, error) {
	var zero dto.UserDTO
	var out dto.UserDTO
	err := s.repo.Transaction(ctx, func(r repository.Repository[models.User]) error {
		e, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		s.mapper.Patch(p, e)
		if err := prepareForWrite(e); err != nil {
			return err
		}
		if err := r.Save(ctx, e); err != nil {
			return err
		}
		out = s.mapper.ToDTO(e)
		return nil
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}

// Signup registers a local account, returns a ready-to-use session and
// queues exactly one verification email.
func (s *userService) Signup(ctx context.Context, d dto.UserDTO) (dto.LoginResponse, error) {
	var zero dto.LoginResponse

	taken, err := s.repo.ExistsByEmail(ctx, d.Email)
	if err != nil {
		return zero, err
	}
	if taken {
		return zero, appErr.Newf(appErr.CodeAlreadyExists, "email %s is already registered", d.Email)
	}

	e := s.mapper.ToEntity(d)
	e.ID = 0
	e.Verified = false
	if err := prepareForWrite(e); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return zero, err
	}

	session, err := s.auth.IssueAccessToken(e)
	if err != nil {
		return zero, err
	}

	verifyToken, err := s.auth.IssueVerificationToken(e)
	if err != nil {
		return zero, err
	}
	task, err := tasks.NewVerificationEmailTask(tasks.VerificationEmailPayload{
		UserID: e.ID,
		Email:  e.Email,
		Name:   e.Name,
		Token:  verifyToken,
	})
	if err != nil {
		return zero, appErr.Wrap(err, appErr.CodeInternal, "build verification email task")
	}
	// Signup already succeeded; a queue hiccup must not roll the account back.
	if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
		logger.L().Error("enqueue verification email failed",
			zap.Uint("user_id", e.ID),
			zap.Error(err),
		)
	}

	return session, nil
}

// Search filters users by accent-insensitive name match and exact email.
// Empty parameters are ignored; both empty pages through all users.
func (s *userService) Search(ctx context.Context, name, email string, pageable repository.Pageable) (*Page[dto.UserDTO], error) {
	var frags []*repository.Predicate
	if name != "" {
		frags = append(frags, repository.UnaccentLike("name", name))
	}
	if email != "" {
		frags = append(frags, repository.FieldEquals("email", &email))
	}
	return s.FindBySpecification(ctx, repository.And(frags...), pageable)
}
