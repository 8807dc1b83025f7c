package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/comcode/blog-engine/internal/models"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

type PostRepository interface {
	Repository[models.Post]
	ReplaceTechnologies(ctx context.Context, post *models.Post, techs []models.Technology) error
	CountByCollection(ctx context.Context, collectionID uint) (int64, error)
}

type postRepository struct {
	Repository[models.Post]
	db *gorm.DB
}

// NewPostRepository preloads Technologies on reads; the DTO exposes the tag
// set, so a read without it would silently report an untagged post.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{Repository: NewRepository[models.Post](db, "post", "Technologies"), db: db}
}

// ReplaceTechnologies rewrites the post's technology associations.
func (r *postRepository) ReplaceTechnologies(ctx context.Context, post *models.Post, techs []models.Technology) error {
	if err := r.db.WithContext(ctx).Model(post).Association("Technologies").Replace(techs); err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "replace post technologies failed")
	}
	return nil
}

func (r *postRepository) CountByCollection(ctx context.Context, collectionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("collection_id = ?", collectionID).Count(&count).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count posts by collection failed")
	}
	return count, nil
}

// TaggedWithAny filters posts carrying at least one of the given technology
// ids, expressed as a subquery so it composes with other predicates.
func TaggedWithAny(technologyIDs []uint) *Predicate {
	if len(technologyIDs) == 0 {
		return nil
	}
	return &Predicate{
		SQL:  "id IN (SELECT post_id FROM post_technologies WHERE technology_id IN ?)",
		Args: []any{technologyIDs},
	}
}
