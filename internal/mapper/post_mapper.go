package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

// PostMapper translates technology id refs into association stubs so GORM
// writes the join rows; replacing associations on update is the service's job.
type PostMapper struct{}

func NewPostMapper() PostMapper { return PostMapper{} }

func (PostMapper) ToEntity(d dto.PostDTO) *models.Post {
	techs := make([]models.Technology, 0, len(d.TechnologyIDs))
	for _, id := range d.TechnologyIDs {
		techs = append(techs, models.Technology{ID: id})
	}
	return &models.Post{
		ID:              d.ID,
		AuthorID:        d.AuthorID,
		CollectionID:    d.CollectionID,
		Technologies:    techs,
		Slug:            d.Slug,
		Summary:         d.Summary,
		Content:         d.Content,
		ContentHTML:     d.ContentHTML,
		Status:          d.Status,
		PublishedAt:     d.PublishedAt,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		CanonicalURL:    d.CanonicalURL,
		ViewsCount:      d.ViewsCount,
		LikesCount:      d.LikesCount,
	}
}

func (PostMapper) ToDTO(e *models.Post) dto.PostDTO {
	ids := make([]uint, 0, len(e.Technologies))
	for _, t := range e.Technologies {
		ids = append(ids, t.ID)
	}
	return dto.PostDTO{
		ID:              e.ID,
		AuthorID:        e.AuthorID,
		CollectionID:    e.CollectionID,
		TechnologyIDs:   ids,
		Slug:            e.Slug,
		Summary:         e.Summary,
		Content:         e.Content,
		ContentHTML:     e.ContentHTML,
		Status:          e.Status,
		PublishedAt:     e.PublishedAt,
		MetaTitle:       e.MetaTitle,
		MetaDescription: e.MetaDescription,
		CanonicalURL:    e.CanonicalURL,
		ViewsCount:      e.ViewsCount,
		LikesCount:      e.LikesCount,
	}
}

func (PostMapper) Patch(p dto.PostPatch, e *models.Post) {
	if p.CollectionID != nil {
		e.CollectionID = p.CollectionID
	}
	if p.TechnologyIDs != nil {
		techs := make([]models.Technology, 0, len(p.TechnologyIDs))
		for _, id := range p.TechnologyIDs {
			techs = append(techs, models.Technology{ID: id})
		}
		e.Technologies = techs
	}
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
	if p.Summary != nil {
		e.Summary = *p.Summary
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.ContentHTML != nil {
		e.ContentHTML = *p.ContentHTML
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.PublishedAt != nil {
		e.PublishedAt = *p.PublishedAt
	}
	if p.MetaTitle != nil {
		e.MetaTitle = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		e.MetaDescription = *p.MetaDescription
	}
	if p.CanonicalURL != nil {
		e.CanonicalURL = p.CanonicalURL
	}
}
