package models

import "time"

// PostStatus is the publication lifecycle state of a post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

// Post is an article authored by a user, optionally grouped into a collection
// and tagged with technologies.
type Post struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	AuthorID     uint         `gorm:"not null;index" json:"author_id"`
	Author       *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CollectionID *uint        `gorm:"index" json:"collection_id,omitempty"`
	Collection   *Collection  `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Technologies []Technology `gorm:"many2many:post_technologies" json:"technologies,omitempty"`

	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Summary     string     `gorm:"not null" json:"summary"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	ContentHTML string     `gorm:"type:text;not null" json:"content_html"`
	Status      PostStatus `gorm:"type:varchar(16);not null" json:"status"`
	PublishedAt time.Time  `gorm:"not null" json:"published_at"`

	MetaTitle       string  `gorm:"not null" json:"meta_title"`
	MetaDescription string  `gorm:"not null" json:"meta_description"`
	CanonicalURL    *string `json:"canonical_url,omitempty"`

	ViewsCount uint `gorm:"not null;default:0" json:"views_count"`
	LikesCount uint `gorm:"not null;default:0" json:"likes_count"`
	AuditModel
}
