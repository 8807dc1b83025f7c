package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/comcode/blog-engine/internal/models"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

type UserRepository interface {
	Repository[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	MarkVerified(ctx context.Context, id uint) error
}

type userRepository struct {
	Repository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{Repository: NewRepository[models.User](db, "user"), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "user not found")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return &u, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check email failed")
	}
	return count > 0, nil
}

func (r *userRepository) MarkVerified(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("verified", true)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "mark user verified failed")
	}
	if res.RowsAffected == 0 {
		return appErr.NotFound("user", id)
	}
	return nil
}
