package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

type mockRepo[E any] struct {
	mock.Mock
}

func (m *mockRepo[E]) Create(ctx context.Context, e *E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepo[E]) CreateAll(ctx context.Context, es []*E) error {
	return m.Called(ctx, es).Error(0)
}

func (m *mockRepo[E]) FindByID(ctx context.Context, id uint) (*E, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*E), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[E]) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo[E]) Save(ctx context.Context, e *E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepo[E]) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo[E]) DeleteAll(ctx context.Context, es []*E) error {
	return m.Called(ctx, es).Error(0)
}

func (m *mockRepo[E]) List(ctx context.Context) ([]*E, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*E), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[E]) Page(ctx context.Context, pred *repository.Predicate, pageable repository.Pageable) (*repository.PageResult[E], error) {
	args := m.Called(ctx, pred, pageable)
	if v := args.Get(0); v != nil {
		return v.(*repository.PageResult[E]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[E]) WithTx(tx *gorm.DB) repository.Repository[E] { return m }

// Transaction runs fn against the mock itself so expectations set on the
// mock cover in-transaction calls too.
func (m *mockRepo[E]) Transaction(ctx context.Context, fn func(repository.Repository[E]) error) error {
	return fn(m)
}

type mockUserRepo struct {
	mockRepo[models.User]
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) MarkVerified(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepo struct {
	mockRepo[models.Comment]
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if v := args.Get(0); v != nil {
		return v.([]*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) DeleteSubtree(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
