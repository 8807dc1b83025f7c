package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

// CollectionMapper leaves the posts count at zero; the collection service
// fills it in from the post repository.
type CollectionMapper struct{}

func NewCollectionMapper() CollectionMapper { return CollectionMapper{} }

func (CollectionMapper) ToEntity(d dto.CollectionDTO) *models.Collection {
	return &models.Collection{
		ID:       d.ID,
		AuthorID: d.AuthorID,
		Title:    d.Title,
		Slug:     d.Slug,
	}
}

func (CollectionMapper) ToDTO(e *models.Collection) dto.CollectionDTO {
	return dto.CollectionDTO{
		ID:       e.ID,
		AuthorID: e.AuthorID,
		Title:    e.Title,
		Slug:     e.Slug,
	}
}

func (CollectionMapper) Patch(p dto.CollectionPatch, e *models.Collection) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
}
