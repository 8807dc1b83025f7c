package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormtests "gorm.io/gorm/utils/tests"

	"github.com/comcode/blog-engine/internal/models"
)

func openStub(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormtests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestReadAppliesDeclaredPreloads(t *testing.T) {
	repo := NewRepository[models.Post](openStub(t), "post", "Technologies").(*baseRepository[models.Post])
	tx := repo.read(context.Background())
	require.Contains(t, tx.Statement.Preloads, "Technologies")
}

func TestReadWithoutPreloads(t *testing.T) {
	repo := NewRepository[models.Media](openStub(t), "media").(*baseRepository[models.Media])
	tx := repo.read(context.Background())
	require.Empty(t, tx.Statement.Preloads)
}

// Posts expose their tag set on every read, so the post repository must
// declare the Technologies preload; a bare row fetch would make tagged posts
// come back untagged.
func TestPostRepositoryPreloadsTechnologies(t *testing.T) {
	repo := NewPostRepository(openStub(t)).(*postRepository)
	base := repo.Repository.(*baseRepository[models.Post])
	tx := base.read(context.Background())
	require.Contains(t, tx.Statement.Preloads, "Technologies")
}

func TestCommentRepositoryPreloadsAuthor(t *testing.T) {
	repo := NewCommentRepository(openStub(t)).(*commentRepository)
	base := repo.Repository.(*baseRepository[models.Comment])
	tx := base.read(context.Background())
	require.Contains(t, tx.Statement.Preloads, "Author")
}

func TestWithTxKeepsPreloads(t *testing.T) {
	db := openStub(t)
	repo := NewRepository[models.Technology](db, "technology", "Icon")
	bound := repo.WithTx(db).(*baseRepository[models.Technology])
	tx := bound.read(context.Background())
	require.Contains(t, tx.Statement.Preloads, "Icon")
}
