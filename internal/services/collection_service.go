package services

import (
	"context"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

// CollectionService enriches collection DTOs with their member-post count on
// every read path.
type CollectionService interface {
	CrudService[models.Collection, dto.CollectionDTO, dto.CollectionPatch]
}

type collectionService struct {
	CrudService[models.Collection, dto.CollectionDTO, dto.CollectionPatch]
	posts repository.PostRepository
}

func NewCollectionService(repo repository.Repository[models.Collection], posts repository.PostRepository) CollectionService {
	return &collectionService{
		CrudService: NewCrudService[models.Collection, dto.CollectionDTO, dto.CollectionPatch](repo, mapper.NewCollectionMapper(), "collection"),
		posts:       posts,
	}
}

func (s *collectionService) withCount(ctx context.Context, d dto.CollectionDTO) (dto.CollectionDTO, error) {
	count, err := s.posts.CountByCollection(ctx, d.ID)
	if err != nil {
		return d, err
	}
	d.Posts = count
	return d, nil
}

func (s *collectionService) withCounts(ctx context.Context, ds []dto.CollectionDTO) ([]dto.CollectionDTO, error) {
	for i := range ds {
		enriched, err := s.withCount(ctx, ds[i])
		if err != nil {
			return nil, err
		}
		ds[i] = enriched
	}
	return ds, nil
}

func (s *collectionService) GetByID(ctx context.Context, id uint) (dto.CollectionDTO, error) {
	d, err := s.CrudService.GetByID(ctx, id)
	if err != nil {
		return d, err
	}
	return s.withCount(ctx, d)
}

func (s *collectionService) List(ctx context.Context) ([]dto.CollectionDTO, error) {
	ds, err := s.CrudService.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, ds)
}

func (s *collectionService) PageSorted(ctx context.Context, pageable repository.Pageable) (*Page[dto.CollectionDTO], error) {
	return s.FindBySpecification(ctx, nil, pageable)
}

func (s *collectionService) FindBySpecification(ctx context.Context, pred *repository.Predicate, pageable repository.Pageable) (*Page[dto.CollectionDTO], error) {
	page, err := s.CrudService.FindBySpecification(ctx, pred, pageable)
	if err != nil {
		return nil, err
	}
	if page.Items, err = s.withCounts(ctx, page.Items); err != nil {
		return nil, err
	}
	return page, nil
}
