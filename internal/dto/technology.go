package dto

import "github.com/comcode/blog-engine/internal/models"

type TechnologyDTO struct {
	ID     uint            `json:"id,omitempty"`
	Name   string          `json:"name" validate:"required"`
	Type   models.TechType `json:"type" validate:"required,oneof=language framework library database tool"`
	IconID *uint           `json:"icon_id,omitempty"`
	Icon   *MediaDTO       `json:"icon,omitempty"`
}

type TechnologyPatch struct {
	Name   *string          `json:"name,omitempty"`
	Type   *models.TechType `json:"type,omitempty" validate:"omitempty,oneof=language framework library database tool"`
	IconID *uint            `json:"icon_id,omitempty"`
}
