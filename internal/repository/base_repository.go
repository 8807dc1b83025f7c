package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	appErr "github.com/comcode/blog-engine/pkg/errors"
)

// Repository defines the CRUD and query operations shared by all resources.
type Repository[E any] interface {
	Create(ctx context.Context, entity *E) error
	CreateAll(ctx context.Context, entities []*E) error
	FindByID(ctx context.Context, id uint) (*E, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, entity *E) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context, entities []*E) error
	List(ctx context.Context) ([]*E, error)
	Page(ctx context.Context, pred *Predicate, pageable Pageable) (*PageResult[E], error)

	// WithTx returns a repository bound to the given transaction handle so
	// multi-step service operations can share one transaction.
	WithTx(tx *gorm.DB) Repository[E]

	// Transaction runs fn against a transaction-bound repository and commits
	// when fn returns nil.
	Transaction(ctx context.Context, fn func(Repository[E]) error) error
}

type baseRepository[E any] struct {
	db       *gorm.DB
	entity   string
	preloads []string
}

// NewRepository builds a GORM-backed Repository. The entity name only feeds
// error messages. Preloads name the associations loaded on every read so
// DTO mapping always sees complete rows; writes are unaffected.
func NewRepository[E any](db *gorm.DB, entity string, preloads ...string) Repository[E] {
	return &baseRepository[E]{db: db, entity: entity, preloads: preloads}
}

func (r *baseRepository[E]) WithTx(tx *gorm.DB) Repository[E] {
	return &baseRepository[E]{db: tx, entity: r.entity, preloads: r.preloads}
}

func (r *baseRepository[E]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// read starts a query with the declared preloads applied.
func (r *baseRepository[E]) read(ctx context.Context) *gorm.DB {
	return r.withPreloads(r.db.WithContext(ctx))
}

func (r *baseRepository[E]) Transaction(ctx context.Context, fn func(Repository[E]) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

func (r *baseRepository[E]) Create(ctx context.Context, entity *E) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.translate(err, "create")
	}
	return nil
}

// CreateAll persists the batch in a single transaction, all-or-nothing.
func (r *baseRepository[E]) CreateAll(ctx context.Context, entities []*E) error {
	if len(entities) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entities).Error
	})
	if err != nil {
		return r.translate(err, "create batch")
	}
	return nil
}

func (r *baseRepository[E]) FindByID(ctx context.Context, id uint) (*E, error) {
	var entity E
	if err := r.read(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.NotFound(r.entity, id)
		}
		return nil, r.translate(err, "find")
	}
	return &entity, nil
}

func (r *baseRepository[E]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	var entity E
	if err := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.translate(err, "exists")
	}
	return count > 0, nil
}

func (r *baseRepository[E]) Save(ctx context.Context, entity *E) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return r.translate(err, "save")
	}
	return nil
}

func (r *baseRepository[E]) Delete(ctx context.Context, id uint) error {
	var entity E
	res := r.db.WithContext(ctx).Delete(&entity, "id = ?", id)
	if res.Error != nil {
		return r.translate(res.Error, "delete")
	}
	if res.RowsAffected == 0 {
		return appErr.NotFound(r.entity, id)
	}
	return nil
}

// DeleteAll removes the given rows without per-element existence checks.
func (r *baseRepository[E]) DeleteAll(ctx context.Context, entities []*E) error {
	if len(entities) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(entities).Error
	})
	if err != nil {
		return r.translate(err, "delete batch")
	}
	return nil
}

// List returns every row, unpaged. Callers accept unbounded result size.
func (r *baseRepository[E]) List(ctx context.Context) ([]*E, error) {
	out := []*E{}
	if err := r.read(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, r.translate(err, "list")
	}
	return out, nil
}

// Page runs a filtered, ordered, windowed query. A nil predicate matches all
// rows; total always counts the filtered set, not the window.
func (r *baseRepository[E]) Page(ctx context.Context, pred *Predicate, pageable Pageable) (*PageResult[E], error) {
	var entity E
	q := r.db.WithContext(ctx).Model(&entity)
	if pred != nil {
		q = q.Where(pred.SQL, pred.Args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, r.translate(err, "count")
	}

	sort := pageable.Sort
	if sort == "" {
		sort = "id ASC"
	}
	items := []*E{}
	if err := r.withPreloads(q).Order(sort).Offset(pageable.Offset()).Limit(pageable.Size).Find(&items).Error; err != nil {
		return nil, r.translate(err, "page")
	}

	return &PageResult[E]{Items: items, Total: total, Page: pageable.Page, Size: pageable.Size}, nil
}

// translate maps GORM's translated driver errors onto the AppError taxonomy.
// Anything unrecognized propagates as internal for the boundary to report.
func (r *baseRepository[E]) translate(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return appErr.Wrap(err, appErr.CodeAlreadyExists, r.entity+" already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return appErr.Wrap(err, appErr.CodeConflict, op+" "+r.entity+" violates referential integrity")
	default:
		return appErr.Wrap(err, appErr.CodeInternal, op+" "+r.entity+" failed")
	}
}
