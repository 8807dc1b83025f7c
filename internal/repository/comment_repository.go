package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/comcode/blog-engine/internal/models"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

type CommentRepository interface {
	Repository[models.Comment]
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	DeleteSubtree(ctx context.Context, id uint) error
}

type commentRepository struct {
	Repository[models.Comment]
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{Repository: NewRepository[models.Comment](db, "comment", "Author"), db: db}
}

// ListByPost returns every comment of a post ordered by id, with authors
// preloaded. The service assembles the reply tree from parent ids.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	out := []*models.Comment{}
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list comments by post failed")
	}
	return out, nil
}

// DeleteSubtree removes a comment and every transitive reply in one
// transaction using a recursive CTE.
func (r *commentRepository) DeleteSubtree(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			WITH RECURSIVE subtree AS (
				SELECT id FROM comments WHERE id = ?
				UNION ALL
				SELECT c.id FROM comments c JOIN subtree s ON c.parent_id = s.id
			)
			DELETE FROM comments WHERE id IN (SELECT id FROM subtree)`, id)
		if res.Error != nil {
			return appErr.Wrap(res.Error, appErr.CodeInternal, "delete comment subtree failed")
		}
		if res.RowsAffected == 0 {
			return appErr.NotFound("comment", id)
		}
		return nil
	})
}
