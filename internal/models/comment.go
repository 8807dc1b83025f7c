package models

// Comment is a node in the per-post discussion tree: ParentID is nil for
// top-level comments, replies are looked up by parent id and ordered by id.
// Subtree removal is an explicit repository operation, not a cascade
// annotation.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
	AuditModel
}
