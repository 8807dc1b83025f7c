package dto

import (
	"time"

	"github.com/comcode/blog-engine/internal/models"
)

// PostDTO is the wire shape of a post. Technologies are referenced by id.
type PostDTO struct {
	ID              uint              `json:"id,omitempty"`
	AuthorID        uint              `json:"author_id" validate:"required"`
	CollectionID    *uint             `json:"collection_id,omitempty"`
	TechnologyIDs   []uint            `json:"technology_ids"`
	Slug            string            `json:"slug" validate:"required"`
	Summary         string            `json:"summary" validate:"required"`
	Content         string            `json:"content" validate:"required"`
	ContentHTML     string            `json:"content_html" validate:"required"`
	Status          models.PostStatus `json:"status" validate:"required,oneof=draft published archived"`
	PublishedAt     time.Time         `json:"published_at"`
	MetaTitle       string            `json:"meta_title" validate:"required"`
	MetaDescription string            `json:"meta_description" validate:"required"`
	CanonicalURL    *string           `json:"canonical_url,omitempty"`
	ViewsCount      uint              `json:"views_count"`
	LikesCount      uint              `json:"likes_count"`
}

type PostPatch struct {
	CollectionID    *uint              `json:"collection_id,omitempty"`
	TechnologyIDs   []uint             `json:"technology_ids,omitempty"`
	Slug            *string            `json:"slug,omitempty"`
	Summary         *string            `json:"summary,omitempty"`
	Content         *string            `json:"content,omitempty"`
	ContentHTML     *string            `json:"content_html,omitempty"`
	Status          *models.PostStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	PublishedAt     *time.Time         `json:"published_at,omitempty"`
	MetaTitle       *string            `json:"meta_title,omitempty"`
	MetaDescription *string            `json:"meta_description,omitempty"`
	CanonicalURL    *string            `json:"canonical_url,omitempty"`
}
