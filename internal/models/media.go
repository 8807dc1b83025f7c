package models

// Media is an uploaded asset referenced by URL.
type Media struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	URL      string `gorm:"not null" json:"url"`
	FileName string `gorm:"not null" json:"file_name"`
	Size     int64  `gorm:"not null" json:"size"`
	MimeType string `gorm:"not null" json:"mime_type"`
	AuditModel
}
