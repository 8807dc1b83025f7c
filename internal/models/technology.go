package models

// TechType categorizes a technology tag.
type TechType string

const (
	TechLanguage  TechType = "language"
	TechFramework TechType = "framework"
	TechLibrary   TechType = "library"
	TechDatabase  TechType = "database"
	TechTool      TechType = "tool"
)

// Technology is a tag applied to posts, optionally carrying an icon.
type Technology struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	Name   string   `gorm:"not null" json:"name"`
	Type   TechType `gorm:"type:varchar(16);not null" json:"type"`
	IconID *uint    `json:"icon_id,omitempty"`
	Icon   *Media   `gorm:"foreignKey:IconID" json:"icon,omitempty"`
	AuditModel
}
