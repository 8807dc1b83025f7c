package services

import (
	"context"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

// PostSearch bundles the optional post search filters. Zero values mean
// "no filter" and compose into an open query.
type PostSearch struct {
	Query         string
	Status        *models.PostStatus
	AuthorID      *uint
	CollectionID  *uint
	TechnologyIDs []uint
}

type PostService interface {
	CrudService[models.Post, dto.PostDTO, dto.PostPatch]
	Search(ctx context.Context, params PostSearch, pageable repository.Pageable) (*Page[dto.PostDTO], error)
}

type postService struct {
	CrudService[models.Post, dto.PostDTO, dto.PostPatch]
	repo   repository.PostRepository
	mapper mapper.PostMapper
}

func NewPostService(repo repository.PostRepository) PostService {
	m := mapper.NewPostMapper()
	return &postService{
		CrudService: NewCrudService[models.Post, dto.PostDTO, dto.PostPatch](repo, m, "post"),
		repo:        repo,
		mapper:      m,
	}
}

// Update replaces the technology associations explicitly; a bare row save
// would leave stale join rows behind.
func (s *postService) Update(ctx context.Context, id uint, d dto.PostDTO) (dto.PostDTO, error) {
	out, err := s.CrudService.Update(ctx, id, d)
	if err != nil {
		return out, err
	}
	e := s.mapper.ToEntity(d)
	e.ID = id
	if err := s.repo.ReplaceTechnologies(ctx, e, e.Technologies); err != nil {
		return dto.PostDTO{}, err
	}
	return s.mapper.ToDTO(e), nil
}

func (s *postService) Patch(ctx context.Context, id uint, p dto.PostPatch) (dto.PostDTO, error) {
	out, err := s.CrudService.Patch(ctx, id, p)
	if err != nil {
		return out, err
	}
	if p.TechnologyIDs == nil {
		return out, nil
	}
	techs := make([]models.Technology, 0, len(p.TechnologyIDs))
	for _, tid := range p.TechnologyIDs {
		techs = append(techs, models.Technology{ID: tid})
	}
	if err := s.repo.ReplaceTechnologies(ctx, &models.Post{ID: id}, techs); err != nil {
		return dto.PostDTO{}, err
	}
	out.TechnologyIDs = p.TechnologyIDs
	return out, nil
}

// Search combines an accent-insensitive text match over title/summary with
// exact filters on status, author, collection and technology tags.
func (s *postService) Search(ctx context.Context, params PostSearch, pageable repository.Pageable) (*Page[dto.PostDTO], error) {
	var frags []*repository.Predicate
	if params.Query != "" {
		frags = append(frags, repository.Or(
			repository.UnaccentLike("meta_title", params.Query),
			repository.UnaccentLike("summary", params.Query),
		))
	}
	frags = append(frags,
		repository.FieldEquals("status", params.Status),
		repository.RelatedIDEquals("author_id", params.AuthorID),
		repository.RelatedIDEquals("collection_id", params.CollectionID),
		repository.TaggedWithAny(params.TechnologyIDs),
	)
	return s.FindBySpecification(ctx, repository.And(frags...), pageable)
}
