package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

type CommentMapper struct {
	users UserMapper
}

func NewCommentMapper() CommentMapper { return CommentMapper{} }

func (CommentMapper) ToEntity(d dto.CommentDTO) *models.Comment {
	return &models.Comment{
		ID:       d.ID,
		Content:  d.Content,
		AuthorID: d.AuthorID,
		PostID:   d.PostID,
		ParentID: d.ParentID,
	}
}

func (m CommentMapper) ToDTO(e *models.Comment) dto.CommentDTO {
	d := dto.CommentDTO{
		ID:       e.ID,
		Content:  e.Content,
		AuthorID: e.AuthorID,
		PostID:   e.PostID,
		ParentID: e.ParentID,
	}
	if e.Author != nil {
		author := m.users.ToDTO(e.Author)
		d.Author = &author
	}
	return d
}

func (CommentMapper) Patch(p dto.CommentPatch, e *models.Comment) {
	if p.Content != nil {
		e.Content = *p.Content
	}
}
