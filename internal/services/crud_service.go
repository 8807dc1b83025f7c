// Package services holds the business layer: generic CRUD orchestration plus
// per-resource rules layered on top of it.
package services

import (
	"context"

	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

// Page is a window of DTOs plus paging metadata, mirroring the repository's
// PageResult after mapping.
type Page[D any] struct {
	Items []D   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// CrudService exposes DTO-level CRUD for one resource. Update and Patch fail
// with a not-found error when the target row does not exist.
type CrudService[E, D, P any] interface {
	Save(ctx context.Context, d D) (D, error)
	SaveAll(ctx context.Context, ds []D) ([]D, error)
	Update(ctx context.Context, id uint, d D) (D, error)
	Patch(ctx context.Context, id uint, p P) (D, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context, ds []D) error
	GetByID(ctx context.Context, id uint) (D, error)
	List(ctx context.Context) ([]D, error)
	PageSorted(ctx context.Context, pageable repository.Pageable) (*Page[D], error)
	FindBySpecification(ctx context.Context, pred *repository.Predicate, pageable repository.Pageable) (*Page[D], error)
}

type crudService[E, D, P any] struct {
	repo   repository.Repository[E]
	mapper mapper.EntityMapper[D, P, E]
	entity string
}

// NewCrudService wires a repository and a mapper into a CrudService. The
// entity name only feeds error messages.
func NewCrudService[E, D, P any](repo repository.Repository[E], m mapper.EntityMapper[D, P, E], entity string) CrudService[E, D, P] {
	return &crudService[E, D, P]{repo: repo, mapper: m, entity: entity}
}

func (s *crudService[E, D, P]) Save(ctx context.Context, d D) (D, error) {
	var zero D
	e := s.mapper.ToEntity(d)
	if err := s.repo.Create(ctx, e); err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(e), nil
}

func (s *crudService[E, D, P]) SaveAll(ctx context.Context, ds []D) ([]D, error) {
	entities := mapper.MapSlice(ds, s.mapper.ToEntity)
	if err := s.repo.CreateAll(ctx, entities); err != nil {
		return nil, err
	}
	return mapper.MapSlice(entities, s.mapper.ToDTO), nil
}

// Update persists d as the full new state of row id. The path id wins over
// any id carried in the body.
func (s *crudService[E, D, P]) Update(ctx context.Context, id uint, d D) (D, error) {
	var zero D
	e := s.mapper.ToEntity(d)
	if ident, ok := any(e).(models.Identifiable); ok {
		ident.SetID(id)
	}
	err := s.repo.Transaction(ctx, func(r repository.Repository[E]) error {
		ok, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return appErr.NotFound(s.entity, id)
		}
		return r.Save(ctx, e)
	})
	if err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(e), nil
}

// Patch loads the current row, applies the non-nil fields of p and saves the
// result.
func (s *crudService[E, D, P]) Patch(ctx context.Context, id uint, p P) (D, error) {
	var zero D
	var out D
	err := s.repo.Transaction(ctx, func(r repository.Repository[E]) error {
		e, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		s.mapper.Patch(p, e)
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

func (s *crudService[E, D, P]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *crudService[E, D, P]) DeleteAll(ctx context.Context, ds []D) error {
	return s.repo.DeleteAll(ctx, mapper.MapSlice(ds, s.mapper.ToEntity))
}

func (s *crudService[E, D, P]) GetByID(ctx context.Context, id uint) (D, error) {
	var zero D
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.mapper.ToDTO(e), nil
}

// List maps the unbounded listing in parallel; mappers are pure so per-item
// goroutines are safe.
func (s *crudService[E, D, P]) List(ctx context.Context) ([]D, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.MapSliceParallel(entities, s.mapper.ToDTO), nil
}

func (s *crudService[E, D, P]) PageSorted(ctx context.Context, pageable repository.Pageable) (*Page[D], error) {
	return s.FindBySpecification(ctx, nil, pageable)
}

// FindBySpecification pages through the rows matching pred; a nil predicate
// matches everything.
func (s *crudService[E, D, P]) FindBySpecification(ctx context.Context, pred *repository.Predicate, pageable repository.Pageable) (*Page[D], error) {
	res, err := s.repo.Page(ctx, pred, pageable)
	if err != nil {
		return nil, err
	}
	return &Page[D]{
		Items: mapper.MapSlice(res.Items, s.mapper.ToDTO),
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
	}, nil
}
