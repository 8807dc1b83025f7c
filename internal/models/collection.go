package models

// Collection groups posts by a single author. Member posts are derived by
// query over Post.CollectionID, not stored here.
type Collection struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title    string `gorm:"not null" json:"title"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	AuditModel
}
