package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

type MediaMapper struct{}

func NewMediaMapper() MediaMapper { return MediaMapper{} }

func (MediaMapper) ToEntity(d dto.MediaDTO) *models.Media {
	return &models.Media{
		ID:       d.ID,
		URL:      d.URL,
		FileName: d.FileName,
		Size:     d.Size,
		MimeType: d.MimeType,
	}
}

func (MediaMapper) ToDTO(e *models.Media) dto.MediaDTO {
	return dto.MediaDTO{
		ID:       e.ID,
		URL:      e.URL,
		FileName: e.FileName,
		Size:     e.Size,
		MimeType: e.MimeType,
	}
}

func (MediaMapper) Patch(p dto.MediaPatch, e *models.Media) {
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.FileName != nil {
		e.FileName = *p.FileName
	}
	if p.Size != nil {
		e.Size = *p.Size
	}
	if p.MimeType != nil {
		e.MimeType = *p.MimeType
	}
}
