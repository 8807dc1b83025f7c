package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

type TechnologyMapper struct {
	media MediaMapper
}

func NewTechnologyMapper() TechnologyMapper { return TechnologyMapper{} }

func (TechnologyMapper) ToEntity(d dto.TechnologyDTO) *models.Technology {
	return &models.Technology{
		ID:     d.ID,
		Name:   d.Name,
		Type:   d.Type,
		IconID: d.IconID,
	}
}

func (m TechnologyMapper) ToDTO(e *models.Technology) dto.TechnologyDTO {
	d := dto.TechnologyDTO{
		ID:     e.ID,
		Name:   e.Name,
		Type:   e.Type,
		IconID: e.IconID,
	}
	if e.Icon != nil {
		icon := m.media.ToDTO(e.Icon)
		d.Icon = &icon
	}
	return d
}

func (TechnologyMapper) Patch(p dto.TechnologyPatch, e *models.Technology) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.IconID != nil {
		e.IconID = p.IconID
	}
}
