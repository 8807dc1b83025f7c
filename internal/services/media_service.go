package services

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

// MediaService is plain CRUD over stored media descriptors.
type MediaService interface {
	CrudService[models.Media, dto.MediaDTO, dto.MediaPatch]
}

func NewMediaService(repo repository.Repository[models.Media]) MediaService {
	return NewCrudService[models.Media, dto.MediaDTO, dto.MediaPatch](repo, mapper.NewMediaMapper(), "media")
}
