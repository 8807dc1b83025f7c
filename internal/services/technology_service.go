package services

import (
	"context"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

// TechnologyService adds fuzzy name search to technology CRUD.
type TechnologyService interface {
	CrudService[models.Technology, dto.TechnologyDTO, dto.TechnologyPatch]
	SearchByName(ctx context.Context, name string, pageable repository.Pageable) (*Page[dto.TechnologyDTO], error)
}

type technologyService struct {
	CrudService[models.Technology, dto.TechnologyDTO, dto.TechnologyPatch]
}

func NewTechnologyService(repo repository.Repository[models.Technology]) TechnologyService {
	return &technologyService{
		CrudService: NewCrudService[models.Technology, dto.TechnologyDTO, dto.TechnologyPatch](repo, mapper.NewTechnologyMapper(), "technology"),
	}
}

// SearchByName matches names by trigram word similarity, tolerating typos and
// accents. A blank name pages through everything.
func (s *technologyService) SearchByName(ctx context.Context, name string, pageable repository.Pageable) (*Page[dto.TechnologyDTO], error) {
	return s.FindBySpecification(ctx, repository.WordSimilarityDefault("name", name), pageable)
}
